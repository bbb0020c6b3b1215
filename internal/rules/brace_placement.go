package rules

import (
	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/source"
	"stylint/internal/token"
)

// bracePlacementRule flags an opening brace that moved to its own line instead
// of ending the header line. The fix collapses the gap into a single space —
// unless a comment sits in between, in which case only the finding is emitted.
type bracePlacementRule struct{}

func (bracePlacementRule) ID() string                     { return "brace-placement" }
func (bracePlacementRule) Code() diag.Code                { return diag.StyleBracePlacement }
func (bracePlacementRule) Description() string            { return "opening brace stays on the header line" }
func (bracePlacementRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (bracePlacementRule) CanFix() bool                   { return true }

func (r bracePlacementRule) Check(ctx *Context) {
	l := ctx.Layout
	for li, ln := range l.Lines {
		if ln.First < 0 || l.Tokens[ln.First].Kind != token.LBrace {
			continue
		}
		brace := l.Tokens[ln.First]

		prev := previousCodeLine(l, li)
		if prev < 0 {
			continue
		}
		pl := l.Lines[prev]
		head := l.Tokens[pl.Last]
		if !introducesBlock(pl, head.Kind) {
			continue
		}

		b := ctx.Report(r.DefaultSeverity(), r.Code(), brace.Span,
			"opening brace should be on the same line as its header").
			WithNote(head.Span, "header ends here")

		// only whitespace and newlines may be collapsed; a comment in the gap
		// would be destroyed by the rewrite
		if gapIsBlank(l.Tokens, pl.Last, ln.First) {
			gap := source.Span{
				File:  brace.Span.File,
				Start: head.Span.End,
				End:   brace.Span.Start,
			}
			b = b.WithFixSuggestion(fix.ReplaceSpan(
				"move brace to the header line", gap, " ", "",
				fix.Preferred(),
			))
		}
		b.Emit()
	}
}

// previousCodeLine finds the nearest preceding line with significant tokens.
func previousCodeLine(l *Layout, li int) int {
	for j := li - 1; j >= 0; j-- {
		if l.Lines[j].Last >= 0 {
			return j
		}
	}
	return -1
}

// introducesBlock reports whether a line ending in k is a header expecting a
// block to open right after it.
func introducesBlock(pl Line, k token.Kind) bool {
	if pl.Kind != LineControlHeader && pl.Kind != LineDeclaration {
		switch k {
		case token.RParen, token.KwElse, token.KwDo:
		default:
			return false
		}
	}
	switch k {
	case token.Semicolon, token.LBrace, token.RBrace, token.Comma:
		return false
	}
	return true
}

// gapIsBlank reports whether only whitespace and newlines separate the tokens
// at indices from and to.
func gapIsBlank(tokens []token.Token, from, to int) bool {
	for i := from + 1; i < to; i++ {
		switch tokens[i].Kind {
		case token.Whitespace, token.Newline:
		default:
			return false
		}
	}
	return true
}
