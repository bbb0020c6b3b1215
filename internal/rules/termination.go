package rules

import (
	"fmt"

	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/token"
)

// terminationRule flags statement and declaration lines that do not end with
// the configured terminator before the line break or block boundary.
type terminationRule struct{}

func (terminationRule) ID() string                     { return "statement-termination" }
func (terminationRule) Code() diag.Code                { return diag.StyleStatementTermination }
func (terminationRule) Description() string            { return "every statement ends with the terminator" }
func (terminationRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (terminationRule) CanFix() bool                   { return true }

func (r terminationRule) Check(ctx *Context) {
	l := ctx.Layout
	for _, ln := range l.Lines {
		if ln.Kind != LineStatement && ln.Kind != LineDeclaration {
			continue
		}
		// an open ( or [ group means the next line continues this one
		if ln.EndGroupDepth > 0 {
			continue
		}
		last := l.Tokens[ln.Last]
		if terminatesLine(last.Kind) {
			continue
		}
		// a line ending in an operator or dot continues on the next line
		if continuesExpression(last.Kind) {
			continue
		}
		// the statement continues with a block: brace-placement's business
		if next := l.NextSig(ln.Last); next >= 0 {
			nk := l.Tokens[next].Kind
			if nk == token.LBrace || continuationStart(nk) {
				continue
			}
		}

		at := last.Span.After()
		ctx.Report(r.DefaultSeverity(), r.Code(), last.Span,
			fmt.Sprintf("statement should end with %q", ctx.Options.Terminator)).
			WithFixSuggestion(fix.InsertText(
				fmt.Sprintf("insert %q", ctx.Options.Terminator),
				at, ctx.Options.Terminator,
				fix.Preferred(),
			)).
			Emit()
	}
}

func terminatesLine(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.LBrace, token.RBrace, token.Comma, token.Colon:
		return true
	}
	return false
}

// continuesExpression reports whether a line-final token implies the
// expression carries on below.
func continuesExpression(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.EqEq, token.BangEq, token.Lt, token.LtEq,
		token.Gt, token.GtEq, token.Shl, token.Shr, token.Amp, token.Pipe,
		token.Caret, token.AndAnd, token.OrOr, token.Question,
		token.QuestionQuestion, token.Dot, token.DotDot, token.Arrow,
		token.FatArrow, token.KwExtends, token.KwIn, token.KwAs, token.KwNew:
		return true
	}
	return false
}

// continuationStart reports whether a line-initial token continues the
// previous line's expression.
func continuationStart(k token.Kind) bool {
	switch k {
	case token.Dot, token.Question, token.QuestionQuestion, token.AndAnd,
		token.OrOr, token.Arrow, token.FatArrow, token.KwExtends:
		return true
	}
	return false
}
