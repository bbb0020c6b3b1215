package rules

import (
	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/token"
)

// forParensRule enforces the two-sided for convention: iteration headers
// (`for x in items`) carry no parentheses, classic three-clause headers
// (`for (i = 0; i < n; i++)`) require them.
type forParensRule struct{}

func (forParensRule) ID() string                     { return "for-parens" }
func (forParensRule) Code() diag.Code                { return diag.StyleForParens }
func (forParensRule) Description() string            { return "for-in without parens, classic for with parens" }
func (forParensRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (forParensRule) CanFix() bool                   { return true }

func (r forParensRule) Check(ctx *Context) {
	l := ctx.Layout
	for i, t := range l.Tokens {
		if t.Kind != token.KwFor {
			continue
		}
		first := l.NextSig(i)
		if first < 0 {
			continue
		}

		if l.Tokens[first].Kind == token.LParen {
			r.checkParenthesized(ctx, first)
			continue
		}
		r.checkBare(ctx, first)
	}
}

// checkParenthesized flags `for (x in items)`: an iteration header must not
// be wrapped. The fix drops both parentheses in one atomic rewrite.
func (r forParensRule) checkParenthesized(ctx *Context, open int) {
	l := ctx.Layout
	closeIdx := l.Pair[open]
	if closeIdx < 0 {
		return
	}
	if !containsKindAt(l, open+1, closeIdx, token.KwIn, l.GroupDepth[open]+1) {
		return
	}

	openTok, closeTok := l.Tokens[open], l.Tokens[closeIdx]
	span := openTok.Span.Cover(closeTok.Span)
	ctx.Report(r.DefaultSeverity(), r.Code(), span,
		"for-in header should not be parenthesized").
		WithFixSuggestion(fix.Multi(
			"remove parentheses from for-in header",
			[]diag.TextEdit{
				{Span: openTok.Span, NewText: "", OldText: "("},
				{Span: closeTok.Span, NewText: "", OldText: ")"},
			},
			fix.Preferred(),
		)).
		Emit()
}

// checkBare flags a classic three-clause header written without parentheses.
// A bare for-in header is the endorsed style and passes through.
func (r forParensRule) checkBare(ctx *Context, first int) {
	l := ctx.Layout
	base := l.GroupDepth[first]
	last := -1
	clauses := false
	for k := first; k < len(l.Tokens); k++ {
		t := l.Tokens[k]
		if t.Kind == token.Newline && l.GroupDepth[k] == base {
			break
		}
		if t.IsTrivia() || t.Kind == token.EOF {
			continue
		}
		if l.GroupDepth[k] == base {
			if t.Kind == token.LBrace {
				break
			}
			if t.Kind == token.Semicolon {
				clauses = true
			}
			if t.Kind == token.KwIn {
				return // bare for-in, nothing to do
			}
		}
		last = k
	}
	if !clauses || last < first {
		return
	}

	span := l.Tokens[first].Span.Cover(l.Tokens[last].Span)
	ctx.Report(r.DefaultSeverity(), r.Code(), span,
		"classic for header should be parenthesized").
		WithFixSuggestion(fix.WrapWith(
			"wrap for clauses in parentheses", span, "(", ")",
			fix.Preferred(),
		)).
		Emit()
}

// containsKindAt reports whether kind occurs in tokens (from, to) at exactly
// the given group depth.
func containsKindAt(l *Layout, from, to int, kind token.Kind, depth int) bool {
	for k := from; k < to; k++ {
		if l.Tokens[k].Kind == kind && l.GroupDepth[k] == depth {
			return true
		}
	}
	return false
}
