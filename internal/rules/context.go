package rules

import (
	"math"

	"stylint/internal/diag"
	"stylint/internal/source"
	"stylint/internal/token"
)

// Options carries the language parameters rules share.
type Options struct {
	// Terminator is the statement terminator, ";" unless configured otherwise.
	Terminator string
	// Markers is the recognized comment marker vocabulary (TODO, DEBUG, ...).
	Markers []string
}

// DefaultMarkers is the marker vocabulary from the style guide.
var DefaultMarkers = []string{"TODO", "DEBUG", "DEPRECATED", "LOCALIZE", "STAT", "FEATURE"}

// DefaultOptions returns the options matching the style guide defaults.
func DefaultOptions() Options {
	return Options{
		Terminator: ";",
		Markers:    append([]string(nil), DefaultMarkers...),
	}
}

// Context is the read-only view a rule checks. One Context is built per rule
// run; the token slice and layout are shared across rules and never mutated.
type Context struct {
	File    *source.File
	Tokens  []token.Token
	Layout  *Layout
	Options Options

	reporter diag.Reporter
	// cutoff is the byte offset of the first unterminated token; findings at
	// or beyond it are suppressed to avoid cascading false positives.
	cutoff uint32
}

// NewContext assembles a rule context over a tokenized file.
func NewContext(file *source.File, tokens []token.Token, layout *Layout, opts Options, reporter diag.Reporter) *Context {
	cutoff := uint32(math.MaxUint32)
	for _, t := range tokens {
		if t.Unterminated {
			cutoff = t.Span.Start
			break
		}
	}
	if opts.Terminator == "" {
		opts.Terminator = ";"
	}
	return &Context{
		File:     file,
		Tokens:   tokens,
		Layout:   layout,
		Options:  opts,
		reporter: reporter,
		cutoff:   cutoff,
	}
}

// Report starts a finding at span. It returns nil (a no-op builder) when the
// span lies in the suppressed region after an unterminated token.
func (c *Context) Report(sev diag.Severity, code diag.Code, span source.Span, msg string) *diag.ReportBuilder {
	if span.Start >= c.cutoff {
		return nil
	}
	return diag.NewReportBuilder(c.reporter, sev, code, span, msg)
}

// text returns the source bytes behind a span.
func (c *Context) text(span source.Span) string {
	return string(c.File.Content[span.Start:span.End])
}
