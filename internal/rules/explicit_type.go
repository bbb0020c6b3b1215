package rules

import (
	"fmt"

	"stylint/internal/diag"
	"stylint/internal/token"
)

// explicitTypeRule flags var/let/const declarations without a type annotation
// between the name and the initializer or terminator. Inferring the type is
// out of scope, so there is no auto-fix.
type explicitTypeRule struct{}

func (explicitTypeRule) ID() string                     { return "explicit-type" }
func (explicitTypeRule) Code() diag.Code                { return diag.StyleExplicitType }
func (explicitTypeRule) Description() string            { return "declarations carry an explicit type" }
func (explicitTypeRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (explicitTypeRule) CanFix() bool                   { return false }

func (r explicitTypeRule) Check(ctx *Context) {
	l := ctx.Tokens
	lay := ctx.Layout
	for i, t := range l {
		switch t.Kind {
		case token.KwVar, token.KwLet, token.KwConst:
		default:
			continue
		}

		// walk the declarator list: name [":" type] ["=" init] ("," ...)*
		j := lay.NextSig(i)
		for j >= 0 && l[j].Kind == token.Ident {
			name := l[j]
			k := lay.NextSig(j)
			if k < 0 || l[k].Kind != token.Colon {
				ctx.Report(r.DefaultSeverity(), r.Code(), name.Span,
					fmt.Sprintf("declaration of %q should carry an explicit type", name.Text)).
					Emit()
			}
			j = nextDeclarator(lay, k)
		}
	}
}

// nextDeclarator skips ahead to the identifier after the next comma at group
// depth zero, or returns -1 when the declaration ends first.
func nextDeclarator(lay *Layout, from int) int {
	if from < 0 {
		return -1
	}
	for j := from; j >= 0; j = lay.NextSig(j) {
		t := lay.Tokens[j]
		switch {
		case t.Kind == token.Comma && lay.GroupDepth[j] == 0:
			return lay.NextSig(j)
		case t.Kind == token.Semicolon, t.Kind == token.LBrace, t.Kind == token.RBrace:
			return -1
		case declStop(t.Kind):
			return -1
		}
	}
	return -1
}

// declStop marks tokens that can only start a new declaration or statement,
// bounding the declarator walk on unterminated lines.
func declStop(k token.Kind) bool {
	switch k {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
		token.KwIf, token.KwElse, token.KwFor, token.KwWhile, token.KwReturn,
		token.KwClass, token.KwStruct, token.KwEnum, token.KwImport:
		return true
	}
	return false
}
