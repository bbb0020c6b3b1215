package rules_test

import (
	"strings"
	"testing"

	"stylint/internal/diag"
	"stylint/internal/lexer"
	"stylint/internal/rules"
	"stylint/internal/source"
)

// lintOnly runs a single rule over input and returns its findings.
func lintOnly(t *testing.T, ruleID, input string) []diag.Diagnostic {
	t.Helper()
	disabled := make(map[string]bool)
	found := false
	for _, id := range rules.KnownIDs() {
		if id == ruleID {
			found = true
			continue
		}
		disabled[id] = true
	}
	if !found {
		t.Fatalf("unknown rule id %q", ruleID)
	}
	return lintWith(t, input, rules.Settings{Disabled: disabled})
}

func lintWith(t *testing.T, input string, st rules.Settings) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sx", []byte(input))
	file := fs.Get(fileID)
	tokens := lexer.Tokenize(file, lexer.Options{})
	return rules.Evaluate(file, tokens, st, 100).Items()
}

func expectCount(t *testing.T, ruleID, input string, want int) []diag.Diagnostic {
	t.Helper()
	diags := lintOnly(t, ruleID, input)
	if len(diags) != want {
		t.Errorf("input %q: expected %d findings from %s, got %d: %v",
			input, want, ruleID, len(diags), messages(diags))
	}
	return diags
}

func messages(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestStatementTermination(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"var x:Int = 5;\n", 0},
		{"var x:Int = 5\n", 1},
		{"var x:Int = 5", 1},
		{"return x\n", 1},
		{"if (x) {\n}\n", 0},              // header line ends with brace
		{"total = a +\n    b;\n", 0},      // operator continuation
		{"value\n    .method();\n", 0},    // dot continuation
		{"f(a,\n   b);\n", 0},             // open paren group continues
		{"var x:Int = 5\nvar y:Int = 6\n", 2},
		{"", 0},
		{"\n\n\n", 0},
		{"// just a comment\n", 0},
	}
	for _, tc := range cases {
		expectCount(t, "statement-termination", tc.input, tc.want)
	}
}

func TestStatementTerminationFix(t *testing.T) {
	diags := expectCount(t, "statement-termination", "var x:Int = 5", 1)
	if len(diags) != 1 {
		t.FailNow()
	}
	d := diags[0]
	if len(d.Fixes) != 1 {
		t.Fatalf("expected one fix, got %d", len(d.Fixes))
	}
	edits := d.Fixes[0].Edits
	if len(edits) != 1 {
		t.Fatalf("expected one edit, got %d", len(edits))
	}
	e := edits[0]
	if e.NewText != ";" || e.Span.Start != e.Span.End || int(e.Span.Start) != len("var x:Int = 5") {
		t.Errorf("expected insertion of \";\" at end of input, got %+v", e)
	}
}

func TestOneStatementPerLine(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"a = 1;\nb = 2;\n", 0},
		{"a = 1; b = 2;\n", 1},
		{"a = 1; b = 2; c = 3;\n", 2},
		{"a = 1; // trailing comment\n", 0},
		{"a = 1;;\n", 0},
		{"for i = 0; i < n; i = i + 1 {\n}\n", 0}, // header clauses
		{"f(a; b);\n", 0},                         // inside a group
		{"do_it(); }\n", 0},                       // closing brace after
	}
	for _, tc := range cases {
		expectCount(t, "one-statement-per-line", tc.input, tc.want)
	}
}

func TestExplicitType(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"var x:Int = 5;\n", 0},
		{"var x = 5;\n", 1},
		{"let name:String = \"a\";\n", 0},
		{"const LIMIT = 10;\n", 1},
		{"var a:Int, b = 2;\n", 1},
		{"var a, b:Int;\n", 1},
		{"var x : Int = 5;\n", 0}, // spaces around the colon still count
	}
	for _, tc := range cases {
		expectCount(t, "explicit-type", tc.input, tc.want)
	}
}

func TestBracePlacement(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"if (x) {\n    return;\n}\n", 0},
		{"if (x)\n{\n    return;\n}\n", 1},
		{"function f()\n{\n}\n", 1},
		{"while (x)\n\n{\n}\n", 1}, // blank line in between
		{"var x:Int = 5;\n{\n}\n", 0},  // not a header line
		{"if (x) { return; }\nelse\n{\n}\n", 1},
	}
	for _, tc := range cases {
		expectCount(t, "brace-placement", tc.input, tc.want)
	}
}

func TestBracePlacementFix(t *testing.T) {
	diags := expectCount(t, "brace-placement", "if (x)\n{ return; }\n", 1)
	if len(diags) != 1 || len(diags[0].Fixes) != 1 {
		t.Fatalf("expected one finding with one fix, got %v", messages(diags))
	}
	e := diags[0].Fixes[0].Edits[0]
	input := "if (x)\n{ return; }\n"
	rewritten := input[:e.Span.Start] + e.NewText + input[e.Span.End:]
	if rewritten != "if (x) { return; }\n" {
		t.Errorf("fix produced %q", rewritten)
	}
}

func TestBracePlacementNoFixAcrossComment(t *testing.T) {
	input := "if (x) // head\n{\n}\n"
	diags := expectCount(t, "brace-placement", input, 1)
	if len(diags) == 1 && len(diags[0].Fixes) != 0 {
		t.Errorf("expected no fix when a comment sits in the gap, got %d", len(diags[0].Fixes))
	}
}

func TestConditionParens(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"if (x > 0) {\n}\n", 0},
		{"if x > 0 {\n}\n", 1},
		{"while (ready) {\n}\n", 0},
		{"while ready {\n}\n", 1},
		{"if (a && b) {\n} else {\n}\n", 0},
	}
	for _, tc := range cases {
		expectCount(t, "condition-parens", tc.input, tc.want)
	}
}

func TestConditionParensFix(t *testing.T) {
	input := "if x > 0 {\n}\n"
	diags := expectCount(t, "condition-parens", input, 1)
	if len(diags) != 1 || len(diags[0].Fixes) != 1 {
		t.FailNow()
	}
	edits := diags[0].Fixes[0].Edits
	if len(edits) != 2 {
		t.Fatalf("expected two edits, got %d", len(edits))
	}
	out := applyEdits(input, edits)
	if out != "if (x > 0) {\n}\n" {
		t.Errorf("fix produced %q", out)
	}
}

func TestForParens(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"for x in items {\n}\n", 0},
		{"for (x in items) {\n}\n", 1},
		{"for (i = 0; i < n; i = i + 1) {\n}\n", 0},
		{"for i = 0; i < n; i = i + 1 {\n}\n", 1},
	}
	for _, tc := range cases {
		expectCount(t, "for-parens", tc.input, tc.want)
	}
}

func TestForInParenRemovalFix(t *testing.T) {
	input := "for (x in items) {\n}\n"
	diags := expectCount(t, "for-parens", input, 1)
	if len(diags) != 1 || len(diags[0].Fixes) != 1 {
		t.FailNow()
	}
	edits := diags[0].Fixes[0].Edits
	if len(edits) != 2 {
		t.Fatalf("expected two edits, got %d", len(edits))
	}
	if edits[0].OldText != "(" || edits[1].OldText != ")" {
		t.Errorf("expected guarded paren deletions, got %+v", edits)
	}
	out := applyEdits(input, edits)
	if out != "for x in items {\n}\n" {
		t.Errorf("fix produced %q", out)
	}
}

func TestForceUnwrap(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"y = x!;\n", 1},
		{"y = get()!;\n", 1},
		{"y = items[0]!;\n", 1},
		{"y = self!;\n", 1},
		{"if (!x) {\n}\n", 0}, // prefix negation
		{"y = a != b;\n", 0},  // != is one token
		{"y = x;\n", 0},
	}
	for _, tc := range cases {
		expectCount(t, "force-unwrap", tc.input, tc.want)
	}
}

func TestCommentMarker(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"// TODO: fix later\n", 0},
		{"// todo fix later\n", 1},
		{"// todo: fix later\n", 1},
		{"// TODO fix later\n", 1},
		{"/* debug dump state */\n", 1},
		{"// DEPRECATED: use other()\n", 0},
		{"// nothing to see\n", 0},
		{"// total = 5 (todo is not leading)\n", 0},
	}
	for _, tc := range cases {
		expectCount(t, "comment-marker", tc.input, tc.want)
	}
}

func TestCommentMarkerFix(t *testing.T) {
	input := "// todo fix later\n"
	diags := expectCount(t, "comment-marker", input, 1)
	if len(diags) != 1 || len(diags[0].Fixes) != 1 {
		t.FailNow()
	}
	fix := diags[0].Fixes[0]
	if fix.Applicability != diag.FixApplicabilitySafeWithHeuristics {
		t.Errorf("expected safe-with-heuristics applicability, got %v", fix.Applicability)
	}
	out := applyEdits(input, fix.Edits)
	if out != "// TODO: fix later\n" {
		t.Errorf("fix produced %q", out)
	}
}

func TestSelfPrefix(t *testing.T) {
	flagged := `class Counter {
    var count:Int = 0;

    function bump() {
        count = count + 1;
    }
}
`
	diags := lintOnly(t, "self-prefix", flagged)
	if len(diags) != 1 {
		t.Fatalf("expected one finding, got %d: %v", len(diags), messages(diags))
	}
	if len(diags[0].Notes) == 0 {
		t.Error("expected a note pointing at the field declaration")
	}

	clean := `class Counter {
    var count:Int = 0;

    function bump() {
        self.count = self.count + 1;
    }

    function reset() {
        var count:Int = 0;
        count = 1;
    }
}
`
	if diags := lintOnly(t, "self-prefix", clean); len(diags) != 0 {
		t.Errorf("expected no findings, got %v", messages(diags))
	}
}

func TestMemberGrouping(t *testing.T) {
	flagged := `struct Point {
    var x:Int = 0;

    function move() {
    }

    var y:Int = 0;
}
`
	diags := lintOnly(t, "member-grouping", flagged)
	if len(diags) != 1 {
		t.Fatalf("expected one finding, got %d: %v", len(diags), messages(diags))
	}
	if !strings.Contains(diags[0].Message, "y") {
		t.Errorf("expected the trailing field to be named, got %q", diags[0].Message)
	}

	clean := `struct Point {
    var x:Int = 0;
    var y:Int = 0;

    function move() {
        var local:Int = 1;
    }
}
`
	if diags := lintOnly(t, "member-grouping", clean); len(diags) != 0 {
		t.Errorf("expected no findings, got %v", messages(diags))
	}
}

// TestCutoffSuppressesDownstream checks that findings at or after an
// unterminated token are dropped while earlier ones survive.
func TestCutoffSuppressesDownstream(t *testing.T) {
	input := "var a = 1\nvar s:String = \"open\nvar b = 2\n"
	diags := lintWith(t, input, rules.Settings{})
	for _, d := range diags {
		if d.Primary.Start >= uint32(strings.Index(input, "\"open")) {
			t.Errorf("finding after the unterminated string: %s at %d", d.Message, d.Primary.Start)
		}
	}
	// the declaration before the bad string is still checked
	found := false
	for _, d := range diags {
		if d.Code == diag.StyleExplicitType {
			found = true
		}
	}
	if !found {
		t.Error("expected the earlier explicit-type finding to survive")
	}
}

func applyEdits(input string, edits []diag.TextEdit) string {
	sorted := append([]diag.TextEdit(nil), edits...)
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Span.Start < sorted[i].Span.Start {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	var b strings.Builder
	pos := 0
	for _, e := range sorted {
		b.WriteString(input[pos:e.Span.Start])
		b.WriteString(e.NewText)
		pos = int(e.Span.End)
	}
	b.WriteString(input[pos:])
	return b.String()
}
