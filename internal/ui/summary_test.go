package ui

import (
	"strings"
	"testing"
)

func TestRenderClean(t *testing.T) {
	out := Render(Summary{Files: 3}, false)
	if out != "ok: 3 files checked, no findings\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderSingularFile(t *testing.T) {
	out := Render(Summary{Files: 1}, false)
	if !strings.Contains(out, "1 file checked") {
		t.Errorf("got %q", out)
	}
}

func TestRenderFindings(t *testing.T) {
	out := Render(Summary{Files: 2, Errors: 1, Warnings: 4}, false)
	if !strings.HasPrefix(out, "findings: 2 files checked: 1 errors, 4 warnings\n") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "run `stylint fix`") {
		t.Errorf("missing fix hint: %q", out)
	}
}

func TestRenderFixRun(t *testing.T) {
	out := Render(Summary{Files: 2, Warnings: 1, FixRun: true, FixesApplied: 3, FixesSkipped: 1, FilesChanged: 1}, false)
	if !strings.Contains(out, "fixes: applied 3, skipped 1, 1 file changed") {
		t.Errorf("got %q", out)
	}
	if strings.Contains(out, "run `stylint fix`") {
		t.Errorf("fix hint printed on a fix run: %q", out)
	}
}

func TestRenderFixRunNothingApplied(t *testing.T) {
	out := Render(Summary{Files: 1, FixRun: true}, false)
	if !strings.Contains(out, "fixes: applied 0, skipped 0, 0 files changed") {
		t.Errorf("got %q", out)
	}
}
