package driver

import (
	"errors"

	"stylint/internal/fix"
	"stylint/internal/rules"
)

// FixResult carries the lint findings together with the fix outcome for one
// in-memory buffer. Bag already includes the fix-skipped findings.
type FixResult struct {
	CheckResult
	Fix *fix.Result
}

// FixBytes lints an in-memory buffer and applies the auto-applicable fixes
// to it. A second FixBytes over the output is the idempotence check: it must
// apply nothing.
func FixBytes(name string, content []byte, st rules.Settings, maxDiagnostics int) *FixResult {
	cr := CheckBytes(name, content, st, maxDiagnostics)
	return applyFixes(cr)
}

// FixFile lints a file and applies fixes on disk through fix.Apply, which
// preserves the file's mode, line endings and BOM. With dryRun the outcome
// is computed but nothing is written.
func FixFile(path string, st rules.Settings, maxDiagnostics int, dryRun bool) (*CheckResult, *fix.ApplyResult, error) {
	cr, err := Check(path, st, maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	ar, err := fix.Apply(cr.FileSet, cr.Bag.Items(), dryRun)
	if err != nil && !errors.Is(err, fix.ErrNoFixes) {
		return cr, ar, err
	}
	for _, d := range ar.Skipped {
		cr.Bag.Add(d)
	}
	cr.Bag.Sort()
	return cr, ar, nil
}

func applyFixes(cr *CheckResult) *FixResult {
	res := fix.ApplyText(cr.File.Content, cr.Bag.Items())
	for _, d := range res.Skipped {
		cr.Bag.Add(d)
	}
	cr.Bag.Sort()
	return &FixResult{CheckResult: *cr, Fix: res}
}
