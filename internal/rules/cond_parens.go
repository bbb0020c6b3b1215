package rules

import (
	"fmt"

	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/token"
)

// conditionParensRule flags if/while conditions written without enclosing
// parentheses. The fix wraps the condition run in ( ).
type conditionParensRule struct{}

func (conditionParensRule) ID() string                     { return "condition-parens" }
func (conditionParensRule) Code() diag.Code                { return diag.StyleConditionParens }
func (conditionParensRule) Description() string            { return "if/while conditions are parenthesized" }
func (conditionParensRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (conditionParensRule) CanFix() bool                   { return true }

func (r conditionParensRule) Check(ctx *Context) {
	l := ctx.Layout
	for i, t := range l.Tokens {
		if t.Kind != token.KwIf && t.Kind != token.KwWhile {
			continue
		}
		first := l.NextSig(i)
		if first < 0 {
			continue
		}
		if l.Tokens[first].Kind == token.LParen {
			continue
		}
		last := conditionEnd(l, first)
		if last < first {
			continue
		}

		span := l.Tokens[first].Span.Cover(l.Tokens[last].Span)
		ctx.Report(r.DefaultSeverity(), r.Code(), span,
			fmt.Sprintf("%s condition should be wrapped in parentheses", t.Text)).
			WithFixSuggestion(fix.WrapWith(
				"wrap condition in parentheses", span, "(", ")",
				fix.Preferred(),
			)).
			Emit()
	}
}

// conditionEnd finds the last condition token: the run extends to the block
// opener, the statement terminator, or the end of the header line, whichever
// comes first at group depth zero.
func conditionEnd(l *Layout, first int) int {
	base := l.GroupDepth[first]
	last := -1
	for k := first; k < len(l.Tokens); k++ {
		t := l.Tokens[k]
		if t.Kind == token.Newline && l.GroupDepth[k] == base {
			break
		}
		if t.IsTrivia() || t.Kind == token.EOF {
			continue
		}
		if l.GroupDepth[k] == base {
			if t.Kind == token.LBrace || t.Kind == token.Semicolon {
				break
			}
		}
		last = k
	}
	return last
}
