package rules

import (
	"stylint/internal/diag"
	"stylint/internal/token"
)

// onePerLineRule flags a second statement following a terminator on the same
// physical line. There is no auto-fix: splitting a line safely would have to
// reason about trailing comments, so the fix stays manual.
type onePerLineRule struct{}

func (onePerLineRule) ID() string                     { return "one-statement-per-line" }
func (onePerLineRule) Code() diag.Code                { return diag.StyleOneStatementPerLine }
func (onePerLineRule) Description() string            { return "at most one statement per line" }
func (onePerLineRule) DefaultSeverity() diag.Severity { return diag.SevWarning }
func (onePerLineRule) CanFix() bool                   { return false }

func (r onePerLineRule) Check(ctx *Context) {
	l := ctx.Layout
	for i, t := range l.Tokens {
		if t.Kind != token.Semicolon {
			continue
		}
		// semicolons inside a ( ) group or on a control-header line separate
		// for-header clauses, not statements
		if l.GroupDepth[i] > 0 {
			continue
		}
		if l.Lines[l.LineOf[i]].Kind == LineControlHeader {
			continue
		}
		// walk to the next token on this physical line, skipping spaces
		k := i + 1
		for k < len(l.Tokens) && l.Tokens[k].Kind == token.Whitespace {
			k++
		}
		if k >= len(l.Tokens) {
			continue
		}
		next := l.Tokens[k]
		switch next.Kind {
		case token.Newline, token.EOF, token.RBrace, token.Semicolon,
			token.LineComment, token.BlockComment:
			continue
		}
		ctx.Report(r.DefaultSeverity(), r.Code(), next.Span,
			"only one statement per line").
			WithNote(t.Span, "previous statement ends here").
			Emit()
	}
}
