package fix

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"stylint/internal/diag"
	"stylint/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	Code          diag.Code
	Message       string
	Applicability diag.FixApplicability
	EditCount     int
}

// Result aggregates the outcome of applying fixes to a single buffer.
// Skipped holds FIX-class diagnostics describing fixes that could not be
// applied; they are meant to be merged back into the run's findings.
type Result struct {
	Output  []byte
	Applied []AppliedFix
	Skipped []diag.Diagnostic
}

// Changed reports whether the output differs from the input.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// ApplyText applies the auto-applicable fixes carried by diagnostics to
// content and returns the rewritten buffer. All edit spans refer to the
// original content; accepted edits are replayed in a single left-to-right
// pass. A fix whose edits overlap an already accepted fix is skipped whole,
// as is a fix whose OldText guard no longer matches the buffer. Fixes marked
// for manual review are never applied.
func ApplyText(content []byte, diagnostics []diag.Diagnostic) *Result {
	result := &Result{
		Applied: make([]AppliedFix, 0),
		Skipped: make([]diag.Diagnostic, 0),
	}

	candidates := gatherCandidates(diagnostics)
	sortCandidates(candidates)

	var claimed []diag.TextEdit
	var accepted []diag.TextEdit
	for _, cand := range candidates {
		if reason := guardMismatch(content, cand.fix.Edits); reason != "" {
			result.Skipped = append(result.Skipped, diag.NewWarning(
				diag.FixSkippedGuard, cand.diag.Primary,
				fmt.Sprintf("fix %q not applied: %s", cand.fix.Title, reason)))
			continue
		}
		if conflictsWithClaimed(claimed, cand.fix.Edits) {
			result.Skipped = append(result.Skipped, diag.NewWarning(
				diag.FixSkippedOverlap, cand.diag.Primary,
				fmt.Sprintf("fix %q overlaps an earlier fix and was not applied", cand.fix.Title)))
			continue
		}
		claimed = append(claimed, cand.fix.Edits...)
		accepted = append(accepted, cand.fix.Edits...)
		result.Applied = append(result.Applied, AppliedFix{
			ID:            cand.fix.ID,
			Title:         cand.fix.Title,
			Code:          cand.diag.Code,
			Message:       cand.diag.Message,
			Applicability: cand.fix.Applicability,
			EditCount:     len(cand.fix.Edits),
		})
	}

	result.Output = replay(content, accepted)
	return result
}

// gatherCandidates picks at most one applicable fix per diagnostic: the
// preferred one when marked, otherwise the first that is not manual-review
// and has edits. Each candidate carries its insertion order so the later
// sort stays deterministic for same-position fixes.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	order := 0
	for _, d := range diagnostics {
		fix, ok := chooseFix(d)
		if !ok {
			continue
		}
		if fix.ID == "" {
			fix.ID = fmt.Sprintf("%s-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start)
		}
		cands = append(cands, candidate{diag: d, fix: fix, order: order})
		order++
	}
	return cands
}

func chooseFix(d diag.Diagnostic) (diag.Fix, bool) {
	var fallback *diag.Fix
	for i := range d.Fixes {
		f := &d.Fixes[i]
		if f.Applicability == diag.FixApplicabilityManualReview || len(f.Edits) == 0 {
			continue
		}
		if f.IsPreferred {
			return *f, true
		}
		if fallback == nil {
			fallback = f
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return diag.Fix{}, false
}

// sortCandidates orders candidates by the position of their first edit so
// the apply pass runs left to right and earlier fixes win overlaps.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		si, sj := firstEditStart(cands[i].fix), firstEditStart(cands[j].fix)
		if si != sj {
			return si < sj
		}
		return cands[i].order < cands[j].order
	})
}

func firstEditStart(f diag.Fix) uint32 {
	start := f.Edits[0].Span.Start
	for _, e := range f.Edits[1:] {
		if e.Span.Start < start {
			start = e.Span.Start
		}
	}
	return start
}

// guardMismatch validates every edit of a fix against the original buffer.
// It returns a human-readable reason when the fix must be skipped.
func guardMismatch(content []byte, edits []diag.TextEdit) string {
	for _, e := range edits {
		start, end := int(e.Span.Start), int(e.Span.End)
		if start < 0 || end < start || end > len(content) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(content[start:end]) != e.OldText {
			return "existing text does not match expected content"
		}
	}
	return ""
}

func conflictsWithClaimed(claimed []diag.TextEdit, edits []diag.TextEdit) bool {
	for _, prev := range claimed {
		for _, cand := range edits {
			if spansConflict(prev, cand) {
				return true
			}
		}
	}
	return false
}

// spansConflict reports whether two text edits' spans overlap. Spans are
// half-open intervals [Start, End). Two zero-length edits never conflict;
// a zero-length edit conflicts with a non-zero span when its position falls
// strictly inside it.
func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// replay materializes accepted, non-overlapping edits over the original
// buffer in one pass.
func replay(content []byte, edits []diag.TextEdit) []byte {
	if len(edits) == 0 {
		return append([]byte(nil), content...)
	}
	sorted := append([]diag.TextEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	var out bytes.Buffer
	out.Grow(len(content))
	pos := 0
	for _, e := range sorted {
		out.Write(content[pos:e.Span.Start])
		out.WriteString(e.NewText)
		pos = int(e.Span.End)
	}
	out.Write(content[pos:])
	return out.Bytes()
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes
// across a batch of files.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []diag.Diagnostic
	FileChanges []FileChange
}

// Apply groups diagnostics by file, rewrites each file's buffer in memory,
// and writes changed files back to disk preserving their mode, original
// line endings and BOM. Virtual files are counted but never written, as is
// everything when dryRun is set. Returns ErrNoFixes when no fix could be
// applied anywhere.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, dryRun bool) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]diag.Diagnostic, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: file set is nil")
	}

	byFile := make(map[source.FileID][]diag.Diagnostic)
	var fileOrder []source.FileID
	for _, d := range diagnostics {
		if len(d.Fixes) == 0 {
			continue
		}
		id := d.Primary.File
		if _, seen := byFile[id]; !seen {
			fileOrder = append(fileOrder, id)
		}
		byFile[id] = append(byFile[id], d)
	}
	sort.Slice(fileOrder, func(i, j int) bool { return fileOrder[i] < fileOrder[j] })

	baseDir := fs.BaseDir()
	for _, id := range fileOrder {
		file := fs.Get(id)
		if file == nil {
			continue
		}
		res := ApplyText(file.Content, byFile[id])
		result.Applied = append(result.Applied, res.Applied...)
		result.Skipped = append(result.Skipped, res.Skipped...)
		if !res.Changed() {
			continue
		}

		if !dryRun && file.Flags&source.FileVirtual == 0 {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			output := source.RestoreFormat(res.Output, file.Flags)
			if err := os.WriteFile(file.Path, output, mode); err != nil {
				return result, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}

		edits := 0
		for _, a := range res.Applied {
			edits += a.EditCount
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.FormatPath("relative", baseDir),
			EditCount: edits,
		})
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}
