package lexer

import (
	"stylint/internal/diag"
	"stylint/internal/source"
)

// BagAdapter bridges the lexer's thin Reporter onto a diag.Bag.
// Lexical problems are warnings: the linter keeps going on any input.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(code diag.Code, span source.Span, msg string) {
	if a == nil || a.Bag == nil {
		return
	}
	a.Bag.Add(diag.NewWarning(code, span, msg))
}
