package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"stylint/internal/source"
	"stylint/internal/token"
)

// TokenOutput is one token in JSON token dumps.
type TokenOutput struct {
	Kind         string      `json:"kind"`
	Text         string      `json:"text,omitempty"`
	Span         source.Span `json:"span"`
	Unterminated bool        `json:"unterminated,omitempty"`
}

// FormatTokensPretty dumps the token stream in a human-readable form, one
// token per line with resolved positions.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" && !tok.IsTrivia() {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if tok.Unterminated {
			fmt.Fprint(w, " (unterminated)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON dumps the token stream as indented JSON.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:         tok.Kind.String(),
			Text:         tok.Text,
			Span:         tok.Span,
			Unterminated: tok.Unterminated,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
