package fix_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func withFix(d diag.Diagnostic, f diag.Fix) diag.Diagnostic {
	return d.WithFixSuggestion(f)
}

func TestApplyTextInsert(t *testing.T) {
	content := []byte("var x:Int = 5")
	d := withFix(
		diag.NewWarning(diag.StyleStatementTermination, span(12, 13), "missing terminator"),
		fix.InsertText("insert \";\"", source.At(1, 13), ";"),
	)

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if string(res.Output) != "var x:Int = 5;" {
		t.Errorf("got %q", res.Output)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 0 {
		t.Errorf("applied %d skipped %d", len(res.Applied), len(res.Skipped))
	}
}

func TestApplyTextMultipleNonOverlapping(t *testing.T) {
	content := []byte("aa bb cc")
	diags := []diag.Diagnostic{
		withFix(diag.NewWarning(diag.StyleCommentMarker, span(6, 8), ""),
			fix.ReplaceSpan("upper cc", span(6, 8), "CC", "cc")),
		withFix(diag.NewWarning(diag.StyleCommentMarker, span(0, 2), ""),
			fix.ReplaceSpan("upper aa", span(0, 2), "AA", "aa")),
	}

	res := fix.ApplyText(content, diags)
	if string(res.Output) != "AA bb CC" {
		t.Errorf("got %q", res.Output)
	}
	if len(res.Applied) != 2 {
		t.Errorf("expected 2 applied, got %d", len(res.Applied))
	}
}

// TestApplyTextOverlap has two fixes touching the same bytes: the earlier one
// wins, the later one is skipped whole with a fix-skipped finding.
func TestApplyTextOverlap(t *testing.T) {
	content := []byte("abcdef")
	diags := []diag.Diagnostic{
		withFix(diag.NewWarning(diag.StyleBracePlacement, span(1, 4), ""),
			fix.ReplaceSpan("first", span(1, 4), "X", "bcd")),
		withFix(diag.NewWarning(diag.StyleBracePlacement, span(3, 5), ""),
			fix.ReplaceSpan("second", span(3, 5), "Y", "de")),
	}

	res := fix.ApplyText(content, diags)
	if string(res.Output) != "aXef" {
		t.Errorf("got %q", res.Output)
	}
	if len(res.Applied) != 1 {
		t.Fatalf("expected 1 applied, got %d", len(res.Applied))
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Code != diag.FixSkippedOverlap {
		t.Fatalf("expected one overlap skip, got %v", res.Skipped)
	}
}

func TestApplyTextGuardMismatch(t *testing.T) {
	content := []byte("hello")
	d := withFix(diag.NewWarning(diag.StyleCommentMarker, span(0, 5), ""),
		fix.ReplaceSpan("replace", span(0, 5), "x", "goodbye"))

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if string(res.Output) != "hello" {
		t.Errorf("buffer changed despite guard mismatch: %q", res.Output)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Code != diag.FixSkippedGuard {
		t.Fatalf("expected one guard skip, got %v", res.Skipped)
	}
}

func TestApplyTextOutOfRange(t *testing.T) {
	content := []byte("short")
	d := withFix(diag.NewWarning(diag.StyleCommentMarker, span(0, 2), ""),
		fix.ReplaceSpan("replace", span(10, 20), "x", ""))

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if len(res.Skipped) != 1 || res.Skipped[0].Code != diag.FixSkippedGuard {
		t.Fatalf("expected a skip for the out-of-range edit, got %v", res.Skipped)
	}
}

func TestApplyTextManualReviewNeverApplied(t *testing.T) {
	content := []byte("data")
	d := withFix(diag.NewWarning(diag.StyleSelfPrefix, span(0, 4), ""),
		fix.ReplaceSpan("rewrite", span(0, 4), "self.data", "data",
			fix.WithApplicability(diag.FixApplicabilityManualReview)))

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if string(res.Output) != "data" || len(res.Applied) != 0 {
		t.Errorf("manual-review fix was applied: %q", res.Output)
	}
}

// TestApplyTextMultiEditFix checks that a multi-edit fix applies atomically
// and that offsets later in the buffer account for earlier deletions.
func TestApplyTextMultiEditFix(t *testing.T) {
	content := []byte("for (x in items) {")
	d := withFix(diag.NewWarning(diag.StyleForParens, span(4, 16), ""),
		fix.Multi("drop parens", []diag.TextEdit{
			{Span: span(4, 5), NewText: "", OldText: "("},
			{Span: span(15, 16), NewText: "", OldText: ")"},
		}))

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if string(res.Output) != "for x in items {" {
		t.Errorf("got %q", res.Output)
	}
}

func TestApplyTextPreferredFixWins(t *testing.T) {
	content := []byte("x")
	d := diag.NewWarning(diag.StyleCommentMarker, span(0, 1), "")
	d = d.WithFixSuggestion(fix.ReplaceSpan("fallback", span(0, 1), "a", "x"))
	d = d.WithFixSuggestion(fix.ReplaceSpan("preferred", span(0, 1), "b", "x", fix.Preferred()))

	res := fix.ApplyText(content, []diag.Diagnostic{d})
	if string(res.Output) != "b" {
		t.Errorf("expected the preferred fix to apply, got %q", res.Output)
	}
	if len(res.Applied) != 1 || res.Applied[0].Title != "preferred" {
		t.Errorf("unexpected applied set: %v", res.Applied)
	}
}

func TestApplyTextNoFixes(t *testing.T) {
	content := []byte("clean")
	res := fix.ApplyText(content, []diag.Diagnostic{
		diag.NewWarning(diag.StyleForceUnwrap, span(0, 1), "advisory only"),
	})
	if string(res.Output) != "clean" || res.Changed() {
		t.Errorf("expected untouched output, got %q", res.Output)
	}
}

func TestWrapWithEdits(t *testing.T) {
	f := fix.WrapWith("wrap", span(2, 5), "(", ")")
	if len(f.Edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(f.Edits))
	}
	before, after := f.Edits[0], f.Edits[1]
	if before.Span.Start != 2 || before.Span.End != 2 || before.NewText != "(" {
		t.Errorf("bad prefix edit %+v", before)
	}
	if after.Span.Start != 5 || after.Span.End != 5 || after.NewText != ")" {
		t.Errorf("bad suffix edit %+v", after)
	}

	out := fix.ApplyText([]byte("if cond {"), []diag.Diagnostic{
		withFix(diag.NewWarning(diag.StyleConditionParens, span(3, 7), ""),
			fix.WrapWith("wrap condition", span(3, 7), "(", ")")),
	})
	if string(out.Output) != "if (cond) {" {
		t.Errorf("got %q", out.Output)
	}
}

func loadTempFile(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.sx")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func terminatorFix(id source.FileID, offset uint32) diag.Diagnostic {
	sp := source.Span{File: id, Start: offset, End: offset}
	return withFix(
		diag.NewWarning(diag.StyleStatementTermination, sp, "missing terminator"),
		fix.InsertText("insert \";\"", sp, ";"),
	)
}

func TestApplyWritesFile(t *testing.T) {
	fs, id, path := loadTempFile(t, "var x:Int = 5\n")

	res, err := fix.Apply(fs, []diag.Diagnostic{terminatorFix(id, 13)}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 1 || len(res.FileChanges) != 1 {
		t.Fatalf("applied %d, file changes %d", len(res.Applied), len(res.FileChanges))
	}
	if res.FileChanges[0].EditCount != 1 {
		t.Errorf("edit count = %d", res.FileChanges[0].EditCount)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var x:Int = 5;\n" {
		t.Errorf("file on disk = %q", content)
	}
}

func TestApplyDryRun(t *testing.T) {
	fs, id, path := loadTempFile(t, "var x:Int = 5\n")

	res, err := fix.Apply(fs, []diag.Diagnostic{terminatorFix(id, 13)}, true)
	if err != nil {
		t.Fatal(err)
	}
	// a dry run still reports which files would change
	if len(res.FileChanges) != 1 {
		t.Fatalf("file changes = %d", len(res.FileChanges))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var x:Int = 5\n" {
		t.Errorf("dry run modified the file: %q", content)
	}
}

func TestApplyRestoresFileFormat(t *testing.T) {
	fs, id, path := loadTempFile(t, "\xEF\xBB\xBFvar x:Int = 5\r\n")

	// Load strips the BOM and normalizes CRLF, so the span counts from the
	// normalized buffer.
	if _, err := fix.Apply(fs, []diag.Diagnostic{terminatorFix(id, 13)}, false); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "\xEF\xBB\xBFvar x:Int = 5;\r\n" {
		t.Errorf("file on disk = %q", content)
	}
}

func TestApplyNoFixes(t *testing.T) {
	fs, id, path := loadTempFile(t, "var v:Int = x!;\n")

	sp := source.Span{File: id, Start: 12, End: 14}
	res, err := fix.Apply(fs, []diag.Diagnostic{
		diag.NewWarning(diag.StyleForceUnwrap, sp, "advisory only"),
	}, false)
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	if len(res.Applied) != 0 || len(res.FileChanges) != 0 {
		t.Errorf("result = %+v", res)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var v:Int = x!;\n" {
		t.Errorf("file modified with no fixes: %q", content)
	}
}

func TestApplyVirtualFileNeverWritten(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("virtual.sx", []byte("var x:Int = 5\n"))

	res, err := fix.Apply(fs, []diag.Diagnostic{terminatorFix(id, 13)}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Applied) != 1 || len(res.FileChanges) != 1 {
		t.Fatalf("applied %d, file changes %d", len(res.Applied), len(res.FileChanges))
	}
	if _, err := os.Stat("virtual.sx"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("virtual file materialized on disk: %v", err)
	}
}

func TestApplyTextIdempotent(t *testing.T) {
	content := []byte("aa bb")
	diags := []diag.Diagnostic{
		withFix(diag.NewWarning(diag.StyleCommentMarker, span(0, 2), ""),
			fix.ReplaceSpan("upper", span(0, 2), "AA", "aa")),
	}
	first := fix.ApplyText(content, diags)
	if !strings.HasPrefix(string(first.Output), "AA") {
		t.Fatalf("got %q", first.Output)
	}
	// the same diagnostics no longer match the rewritten buffer
	second := fix.ApplyText(first.Output, diags)
	if len(second.Applied) != 0 {
		t.Errorf("expected the guard to reject a second application, got %d applied", len(second.Applied))
	}
}
