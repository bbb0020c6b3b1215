package lexer

import (
	"stylint/internal/diag"
	"stylint/internal/token"
)

// scanWhitespace coalesces a run of spaces, tabs and stray carriage returns
// into one token. CRLF input normally reaches the lexer already normalized.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.text(sp)}
}

// scanNewline emits exactly one token per '\n' so rules can count physical lines.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Newline, Span: sp, Text: lx.text(sp)}
}

// scanComment handles "//..." up to end of line and "/* ... */" with nesting.
// An unclosed block comment runs to end of input and is flagged, not fatal.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LineComment, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: token.BlockComment, Span: sp, Text: lx.text(sp)}
	if depth > 0 {
		tok.Unterminated = true
		lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	return tok
}
