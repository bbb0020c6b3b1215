package lexer

import (
	"stylint/internal/diag"
	"stylint/internal/source"
)

// Reporter is the thin sink the lexer notifies about lexical problems.
// The lexer only calls it; storage and formatting stay with the caller.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: problems are dropped, lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
