package token

import (
	"stylint/internal/source"
)

// Token represents a single source token with its location. The stream is
// lossless: whitespace, newlines and comments are tokens of their own, so
// concatenating Text over a whole file reproduces the input byte for byte.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Unterminated marks a string or block comment cut off by end of input.
	Unterminated bool
}

// IsTrivia reports whether the token is whitespace, a newline, or a comment.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, Newline, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsLiteral reports whether the token is a numeric, boolean, string or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwVar && t.Kind <= KwNull
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= Underscore
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensBracket reports whether the token opens a (, [ or { group.
func (t Token) OpensBracket() bool {
	return t.Kind == LParen || t.Kind == LBracket || t.Kind == LBrace
}

// ClosesBracket reports whether the token closes a ), ] or } group.
func (t Token) ClosesBracket() bool {
	return t.Kind == RParen || t.Kind == RBracket || t.Kind == RBrace
}
