// Package token defines lexical token kinds for the stylint pipeline.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - The stream is lossless: whitespace, newlines and comments appear as
//     tokens, so concatenating Text in order reconstructs the file.
//   - Built-in type names (Int, Float, String, Bool, ...) are identifiers.
//     Rules recognize them by context, not the lexer.
package token
