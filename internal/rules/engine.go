package rules

import (
	"golang.org/x/sync/errgroup"

	"stylint/internal/diag"
	"stylint/internal/source"
	"stylint/internal/token"
)

// Settings selects and tunes rules for one evaluation run. Zero value means
// all rules at their defaults.
type Settings struct {
	// Disabled turns individual rules off by id.
	Disabled map[string]bool
	// Severity overrides the default severity per rule id.
	Severity map[string]diag.Severity
	// NoFix strips auto-fix suggestions from a rule's findings.
	NoFix map[string]bool
	// Options carries the shared language parameters.
	Options Options
}

// ruleReporter applies per-rule severity overrides and fix stripping before
// forwarding to the merged sink.
type ruleReporter struct {
	next     diag.Reporter
	sev      diag.Severity
	override bool
	strip    bool
}

func (r ruleReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	if r.override {
		sev = r.sev
	}
	if r.strip {
		fixes = nil
	}
	r.next.Report(code, sev, primary, msg, notes, fixes)
}

// Evaluate runs every enabled rule over the token stream and returns the
// merged, sorted findings. Rules share the token slice and layout read-only
// and write into private bags, so they run concurrently; the stable sort at
// the end makes the result independent of completion order.
func Evaluate(file *source.File, tokens []token.Token, st Settings, maxDiagnostics int) *diag.Bag {
	layout := BuildLayout(tokens)

	enabled := make([]Rule, 0, len(registry))
	for _, r := range registry {
		if st.Disabled[r.ID()] {
			continue
		}
		enabled = append(enabled, r)
	}

	bags := make([]*diag.Bag, len(enabled))
	var g errgroup.Group
	for i, r := range enabled {
		i, r := i, r
		g.Go(func() error {
			bag := diag.NewBag(maxDiagnostics)
			rep := ruleReporter{next: diag.BagReporter{Bag: bag}}
			if sev, ok := st.Severity[r.ID()]; ok {
				rep.sev = sev
				rep.override = true
			}
			if st.NoFix[r.ID()] {
				rep.strip = true
			}
			r.Check(NewContext(file, tokens, layout, st.Options, rep))
			bags[i] = bag
			return nil
		})
	}
	// rules cannot fail; the group only orders the joins
	_ = g.Wait()

	merged := diag.NewBag(maxDiagnostics)
	for _, bag := range bags {
		merged.Merge(bag)
	}
	merged.Sort()
	return merged
}
