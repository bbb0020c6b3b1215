package rules

import (
	"stylint/internal/diag"
	"stylint/internal/token"
)

// forceUnwrapRule flags postfix '!' applied to a value. Whether the value is
// actually guarded needs flow analysis, so the finding stays advisory and
// carries no fix.
type forceUnwrapRule struct{}

func (forceUnwrapRule) ID() string                     { return "force-unwrap" }
func (forceUnwrapRule) Code() diag.Code                { return diag.StyleForceUnwrap }
func (forceUnwrapRule) Description() string            { return "avoid unguarded force unwraps" }
func (forceUnwrapRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (forceUnwrapRule) CanFix() bool                   { return false }

func (r forceUnwrapRule) Check(ctx *Context) {
	l := ctx.Tokens
	for i, t := range l {
		if t.Kind != token.Bang || i == 0 {
			continue
		}
		// postfix only: '!' glued to the value it unwraps ("x !" is prefix
		// negation territory and none of our business)
		prev := l[i-1]
		switch prev.Kind {
		case token.Ident, token.RParen, token.RBracket, token.KwSelf:
		default:
			continue
		}
		ctx.Report(r.DefaultSeverity(), r.Code(), prev.Span.Cover(t.Span),
			"force unwrap without a visible guard; consider an explicit null check").
			Emit()
	}
}
