package diag

import (
	"testing"

	"stylint/internal/source"
)

func at(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagCapacity(t *testing.T) {
	bag := NewBag(2)
	if bag.Cap() != 2 {
		t.Fatalf("Cap = %d", bag.Cap())
	}
	if !bag.Add(NewWarning(StyleForceUnwrap, at(0, 1), "a")) {
		t.Error("first add rejected")
	}
	if !bag.Add(NewWarning(StyleForceUnwrap, at(1, 2), "b")) {
		t.Error("second add rejected")
	}
	if bag.Add(NewWarning(StyleForceUnwrap, at(2, 3), "c")) {
		t.Error("add past capacity accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevInfo, Code: StyleSelfPrefix, Primary: at(0, 1)})
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info-only bag reported errors or warnings")
	}

	bag.Add(NewWarning(StyleForceUnwrap, at(1, 2), "w"))
	if !bag.HasWarnings() {
		t.Error("warning not detected")
	}
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}

	bag.Add(NewError(LexUnterminatedString, at(2, 3), "e"))
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("error bag must satisfy both queries")
	}

	errors, warnings, infos := bag.CountBySeverity()
	if errors != 1 || warnings != 1 || infos != 1 {
		t.Errorf("counts = %d/%d/%d", errors, warnings, infos)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	d := NewWarning(StyleStatementTermination, at(4, 5), "statement should end with \";\"")
	bag.Add(d)
	bag.Add(d)
	bag.Add(NewWarning(StyleStatementTermination, at(4, 5), "different message"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(StyleForceUnwrap, at(0, 1), "a"))
	b := NewBag(1)
	b.Add(NewWarning(StyleForceUnwrap, at(1, 2), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after merge = %d", a.Len())
	}
	if a.Cap() != 2 {
		t.Errorf("Cap after merge = %d, want grown to the merged total", a.Cap())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(StyleExplicitType, at(10, 12), "later"))
	bag.Add(NewError(LexUnknownChar, at(3, 4), "early"))
	bag.Add(NewWarning(StyleForceUnwrap, at(3, 4), "same span, lower severity"))
	bag.Sort()

	items := bag.Items()
	if items[0].Code != LexUnknownChar {
		t.Errorf("severity must break span ties: %v first", items[0].Code)
	}
	if items[2].Code != StyleExplicitType {
		t.Errorf("position must order first: %v last", items[2].Code)
	}
}
