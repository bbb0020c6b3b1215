package rules

import (
	"fmt"

	"stylint/internal/diag"
	"stylint/internal/token"
)

// selfPrefixRule is a heuristic: inside a method body, a bare assignment to a
// name that is also a field of the enclosing type probably meant `self.name`.
// Proper resolution needs a symbol table, so the finding is advisory only.
type selfPrefixRule struct{}

func (selfPrefixRule) ID() string                     { return "self-prefix" }
func (selfPrefixRule) Code() diag.Code                { return diag.StyleSelfPrefix }
func (selfPrefixRule) Description() string            { return "field access goes through self" }
func (selfPrefixRule) DefaultSeverity() diag.Severity { return diag.SevInfo }
func (selfPrefixRule) CanFix() bool                   { return false }

func (r selfPrefixRule) Check(ctx *Context) {
	l := ctx.Layout
	for _, body := range l.typeBodies() {
		fields := collectFields(l, body)
		if len(fields) == 0 {
			continue
		}
		r.checkMethods(ctx, body, fields)
	}
}

// collectFields gathers names declared with var/let/const directly in the
// type body.
func collectFields(l *Layout, body typeBody) map[string]int {
	fields := make(map[string]int)
	for k := body.open + 1; k < body.close; k++ {
		t := l.Tokens[k]
		if l.BraceDepth[k] != body.bodyDepth {
			continue
		}
		switch t.Kind {
		case token.KwVar, token.KwLet, token.KwConst:
			if name := l.NextSig(k); name >= 0 && l.Tokens[name].Kind == token.Ident {
				fields[l.Tokens[name].Text] = name
			}
		}
	}
	return fields
}

// checkMethods walks each method body and flags bare writes to field names.
func (r selfPrefixRule) checkMethods(ctx *Context, body typeBody, fields map[string]int) {
	l := ctx.Layout
	for k := body.open + 1; k < body.close; k++ {
		if l.Tokens[k].Kind != token.KwFunction || l.BraceDepth[k] != body.bodyDepth {
			continue
		}
		open := methodBodyOpen(l, k, body.bodyDepth)
		if open < 0 || l.Pair[open] < 0 {
			continue
		}
		for q := open + 1; q < l.Pair[open]; q++ {
			t := l.Tokens[q]
			if t.Kind != token.Ident {
				continue
			}
			decl, isField := fields[t.Text]
			if !isField {
				continue
			}
			if !isBareWrite(l, q) {
				continue
			}
			ctx.Report(r.DefaultSeverity(), r.Code(), t.Span,
				fmt.Sprintf("field %q should be accessed through self", t.Text)).
				WithNote(l.Tokens[decl].Span, "field declared here").
				Emit()
		}
		k = l.Pair[open]
	}
}

// methodBodyOpen finds the '{' opening the method body.
func methodBodyOpen(l *Layout, fn, bodyDepth int) int {
	for j := l.NextSig(fn); j >= 0; j = l.NextSig(j) {
		t := l.Tokens[j]
		if t.Kind == token.LBrace && l.BraceDepth[j] == bodyDepth {
			return j
		}
		if t.Kind == token.Semicolon || t.Kind == token.RBrace {
			return -1
		}
	}
	return -1
}

// isBareWrite reports whether the identifier at q is assigned to without a
// receiver prefix and is not itself a fresh local declaration.
func isBareWrite(l *Layout, q int) bool {
	next := l.NextSig(q)
	if next < 0 {
		return false
	}
	switch l.Tokens[next].Kind {
	case token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign:
	default:
		return false
	}
	prev := l.PrevSig(q)
	if prev < 0 {
		return true
	}
	switch l.Tokens[prev].Kind {
	case token.Dot, token.KwVar, token.KwLet, token.KwConst, token.Colon:
		return false
	}
	return true
}
