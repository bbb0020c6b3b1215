package rules

import (
	"fmt"

	"stylint/internal/diag"
	"stylint/internal/token"
)

// memberGroupingRule is a heuristic for the "group similar members" guidance:
// field declarations trailing after the first method of a type body scatter
// the state across the type. Advisory only; moving members is a manual edit.
type memberGroupingRule struct{}

func (memberGroupingRule) ID() string                     { return "member-grouping" }
func (memberGroupingRule) Code() diag.Code                { return diag.StyleMemberGrouping }
func (memberGroupingRule) Description() string            { return "fields precede methods inside a type" }
func (memberGroupingRule) DefaultSeverity() diag.Severity { return diag.SevInfo }
func (memberGroupingRule) CanFix() bool                   { return false }

func (r memberGroupingRule) Check(ctx *Context) {
	l := ctx.Layout
	for _, body := range l.typeBodies() {
		firstMethod := -1
		for k := body.open + 1; k < body.close; k++ {
			t := l.Tokens[k]
			if l.BraceDepth[k] != body.bodyDepth {
				continue
			}
			switch t.Kind {
			case token.KwFunction:
				if firstMethod < 0 {
					firstMethod = k
				}
			case token.KwVar, token.KwLet, token.KwConst:
				if firstMethod < 0 {
					continue
				}
				name := l.NextSig(k)
				if name < 0 || l.Tokens[name].Kind != token.Ident {
					continue
				}
				ctx.Report(r.DefaultSeverity(), r.Code(), l.Tokens[name].Span,
					fmt.Sprintf("field %q is declared after the type's methods; group fields together", l.Tokens[name].Text)).
					WithNote(l.Tokens[firstMethod].Span, "first method here").
					Emit()
			}
		}
	}
}
