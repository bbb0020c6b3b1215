package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("check")
	time.Sleep(time.Millisecond)
	timer.End(idx, "3 files")

	out := timer.Summary()
	if !strings.Contains(out, "check") || !strings.Contains(out, "// 3 files") {
		t.Errorf("summary missing phase: %q", out)
	}
	if !strings.Contains(out, "total") {
		t.Errorf("summary missing total: %q", out)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	timer := NewTimer()
	timer.End(0, "")
	timer.End(-1, "")
	if got := timer.Summary(); !strings.Contains(got, "total") {
		t.Errorf("got %q", got)
	}
}

func TestTimerMeasure(t *testing.T) {
	timer := NewTimer()
	ran := false
	timer.Measure("fix", func() { ran = true })
	if !ran {
		t.Fatal("callback not invoked")
	}
	if !strings.Contains(timer.Summary(), "fix") {
		t.Errorf("got %q", timer.Summary())
	}
}
