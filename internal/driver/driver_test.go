package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"stylint/internal/config"
	"stylint/internal/diag"
	"stylint/internal/driver"
	"stylint/internal/rules"
	"stylint/internal/token"
)

func defaultSettings() rules.Settings {
	return config.Default().Settings(nil)
}

func codes(bag *diag.Bag) []diag.Code {
	items := bag.Items()
	out := make([]diag.Code, len(items))
	for i, d := range items {
		out[i] = d.Code
	}
	return out
}

func TestTokenizeBytes(t *testing.T) {
	tr := driver.TokenizeBytes("test.sx", []byte("var x:Int = 5;\n"), 100)
	if tr.File == nil || len(tr.Tokens) == 0 {
		t.Fatal("empty tokenize result")
	}
	if last := tr.Tokens[len(tr.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("stream does not end in EOF: %v", last.Kind)
	}
	if len(tr.Bag.Items()) != 0 {
		t.Errorf("unexpected lexical findings: %v", tr.Bag.Items())
	}
}

func TestTokenizeBytesReportsLexical(t *testing.T) {
	tr := driver.TokenizeBytes("test.sx", []byte("var s = \"open\n"), 100)
	found := false
	for _, d := range tr.Bag.Items() {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Errorf("unterminated string not reported: %v", tr.Bag.Items())
	}
}

func TestCheckBytes(t *testing.T) {
	cr := driver.CheckBytes("test.sx", []byte("var x = 5\n"), defaultSettings(), 100)
	got := codes(cr.Bag)
	want := map[diag.Code]bool{
		diag.StyleStatementTermination: false,
		diag.StyleExplicitType:         false,
	}
	for _, c := range got {
		if _, expected := want[c]; expected {
			want[c] = true
		}
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("missing %s in %v", c.ID(), got)
		}
	}
}

func TestCheckBytesClean(t *testing.T) {
	cr := driver.CheckBytes("test.sx", []byte("var x:Int = 5;\n"), defaultSettings(), 100)
	if len(cr.Bag.Items()) != 0 {
		t.Errorf("clean input produced findings: %v", codes(cr.Bag))
	}
}

func TestCheckBytesSorted(t *testing.T) {
	input := []byte("var b = 2\nvar a = 1\n")
	cr := driver.CheckBytes("test.sx", input, defaultSettings(), 100)
	items := cr.Bag.Items()
	for i := 1; i < len(items); i++ {
		if items[i].Primary.Start < items[i-1].Primary.Start {
			t.Errorf("findings out of order at %d: %v", i, items)
		}
	}
}

func TestFixBytes(t *testing.T) {
	fr := driver.FixBytes("test.sx", []byte("var x:Int = 5\n"), defaultSettings(), 100)
	if got := string(fr.Fix.Output); got != "var x:Int = 5;\n" {
		t.Errorf("output = %q", got)
	}
	if len(fr.Fix.Applied) != 1 {
		t.Errorf("applied = %d", len(fr.Fix.Applied))
	}
}

func TestFixBytesIdempotent(t *testing.T) {
	inputs := []string{
		"var x:Int = 5\n",
		"if cond { doWork() }\n",
		"for (x in items) { use(x); }\n",
		"// todo later\nvar y:Int = 1;\n",
	}
	for _, input := range inputs {
		first := driver.FixBytes("test.sx", []byte(input), defaultSettings(), 100)
		second := driver.FixBytes("test.sx", first.Fix.Output, defaultSettings(), 100)
		if len(second.Fix.Applied) != 0 {
			t.Errorf("input %q: second pass applied %d fixes, output %q",
				input, len(second.Fix.Applied), second.Fix.Output)
		}
	}
}

func TestFixBytesKeepsUnfixableFindings(t *testing.T) {
	fr := driver.FixBytes("test.sx", []byte("var v:Int = x!;\n"), defaultSettings(), 100)
	if fr.Fix.Changed() {
		t.Errorf("advisory finding rewrote the buffer: %q", fr.Fix.Output)
	}
	if got := codes(fr.Bag); len(got) != 1 || got[0] != diag.StyleForceUnwrap {
		t.Errorf("codes = %v", got)
	}
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "clean.sx", "var x:Int = 5;\n")
	writeTestFile(t, dir, "dirty.sx", "var y = 1\n")
	writeTestFile(t, dir, "ignored.txt", "not source\n")

	_, results, err := driver.CheckDir(context.Background(), dir, []string{".sx"}, defaultSettings(), 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// walk order is sorted, clean.sx first
	if filepath.Base(results[0].Path) != "clean.sx" || filepath.Base(results[1].Path) != "dirty.sx" {
		t.Errorf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	if n := len(results[0].Bag.Items()); n != 0 {
		t.Errorf("clean file has %d findings", n)
	}
	if n := len(results[1].Bag.Items()); n == 0 {
		t.Error("dirty file has no findings")
	}
}

func TestCheckDirDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.sx", "var a = 1\nvar b = 2\n")
	writeTestFile(t, dir, "b.sx", "if x { y() }\n")
	writeTestFile(t, dir, "c.sx", "for (i in r) { f(i); }\n")

	var baseline [][]diag.Code
	for run := 0; run < 10; run++ {
		_, results, err := driver.CheckDir(context.Background(), dir, []string{".sx"}, defaultSettings(), 100, 4)
		if err != nil {
			t.Fatal(err)
		}
		var got [][]diag.Code
		for _, r := range results {
			got = append(got, codes(r.Bag))
		}
		if run == 0 {
			baseline = got
			continue
		}
		if !reflect.DeepEqual(got, baseline) {
			t.Fatalf("run %d differs from baseline:\n%v\n%v", run, got, baseline)
		}
	}
}

func TestCheckPathsMixed(t *testing.T) {
	dir := t.TempDir()
	inDir := writeTestFile(t, dir, "in_dir.sx", "var x:Int = 1;\n")
	other := t.TempDir()
	explicit := writeTestFile(t, other, "explicit.sx", "var y = 2\n")

	_, results, err := driver.CheckPaths(context.Background(), []string{dir, explicit},
		[]string{".sx"}, defaultSettings(), 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(results), results)
	}
	seen := map[string]bool{}
	for _, r := range results {
		seen[r.Path] = true
	}
	if !seen[inDir] || !seen[explicit] {
		t.Errorf("paths missing from results: %v", seen)
	}
}

func TestExpandPathsDedup(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "a.sx", "var x:Int = 1;\n")

	files, err := driver.ExpandPaths([]string{dir, file, file}, []string{".sx"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != file {
		t.Errorf("files = %v", files)
	}
}

func TestExpandPathsMissing(t *testing.T) {
	if _, err := driver.ExpandPaths([]string{"/no/such/path.sx"}, []string{".sx"}); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestFixDirWritesBack(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.sx", "var x:Int = 5\n")

	_, results, err := driver.FixDir(context.Background(), dir, []string{".sx"}, defaultSettings(), 100, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed || results[0].Applied != 1 {
		t.Fatalf("results = %+v", results)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var x:Int = 5;\n" {
		t.Errorf("file on disk = %q", content)
	}
}

func TestFixDirDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.sx", "var x:Int = 5\n")

	_, results, err := driver.FixDir(context.Background(), dir, []string{".sx"}, defaultSettings(), 100, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("results = %+v", results)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var x:Int = 5\n" {
		t.Errorf("dry run modified the file: %q", content)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := driver.CheckDir(context.Background(), t.TempDir(), []string{".sx"}, defaultSettings(), 100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCheckDirUnknownRuleWarnsOnce(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.sx", "var a:Int = 1;\n")
	writeTestFile(t, dir, "b.sx", "var b:Int = 2;\n")
	writeTestFile(t, dir, "c.sx", "var c:Int = 3;\n")

	st := defaultSettings()
	st.Disabled = map[string]bool{"no-such-rule": true}

	_, results, err := driver.CheckDir(context.Background(), dir, []string{".sx"}, st, 100, 2)
	if err != nil {
		t.Fatal(err)
	}
	// The configuration warning belongs to configuration loading. Repeating
	// it per checked file would multiply it across the batch.
	for _, r := range results {
		for _, d := range r.Bag.Items() {
			if d.Code == diag.CfgUnknownRule {
				t.Fatalf("%s: per-file configuration warning: %s", r.Path, d.Message)
			}
		}
	}
}

func TestFixFilePreservesFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.sx", "\xEF\xBB\xBFvar a:Int = 1;\r\nvar x:Int = 5\r\n")

	_, ar, err := driver.FixFile(path, defaultSettings(), 100, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ar.Applied) != 1 {
		t.Fatalf("applied = %d", len(ar.Applied))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "\xEF\xBB\xBFvar a:Int = 1;\r\nvar x:Int = 5;\r\n" {
		t.Errorf("file on disk = %q", content)
	}
}

func TestFixDirPreservesFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.sx", "var a:Int = 1;\r\nvar x:Int = 5\r\n")

	_, results, err := driver.FixDir(context.Background(), dir, []string{".sx"}, defaultSettings(), 100, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed {
		t.Fatalf("results = %+v", results)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "var a:Int = 1;\r\nvar x:Int = 5;\r\n" {
		t.Errorf("file on disk = %q", content)
	}
}

func TestCheckBytesEmptyInput(t *testing.T) {
	cr := driver.CheckBytes("empty.sx", nil, defaultSettings(), 100)
	got := codes(cr.Bag)
	if len(got) != 1 || got[0] != diag.IOEmptyInput {
		t.Fatalf("codes = %v", got)
	}
	if !cr.Bag.HasErrors() {
		t.Error("empty input must be fatal for the file")
	}
}

func TestCheckFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.sx", "var x = 1\r\n")

	cr, err := driver.Check(path, defaultSettings(), 100)
	if err != nil {
		t.Fatal(err)
	}
	// CRLF is normalized before linting
	if string(cr.File.Content) != "var x = 1\n" {
		t.Errorf("content = %q", cr.File.Content)
	}
	if len(cr.Bag.Items()) == 0 {
		t.Error("expected findings")
	}
}
