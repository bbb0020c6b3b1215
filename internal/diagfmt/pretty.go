package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"stylint/internal/diag"
	"stylint/internal/source"
)

// Pretty renders diagnostics in a human-readable form. The bag is expected
// to be sorted. Each diagnostic prints as
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//
// followed by the offending source line with a ^~~~ underline covering the
// span, then notes in the same shape and fix titles when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	limit := len(items)
	if opts.Max > 0 && opts.Max < limit {
		limit = opts.Max
	}

	for i := 0; i < limit; i++ {
		printDiagnostic(w, items[i], fs, opts)
	}

	if limit < len(items) {
		fmt.Fprintf(w, "... and %d more\n", len(items)-limit)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := displayPath(fs, d.Primary.File, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color),
		codeLabel(d.Code, opts.Color),
		d.Message)

	printUnderline(w, d.Primary, fs, opts.Color)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s:%d:%d: note: %s\n",
				displayPath(fs, note.Span.File, opts.PathMode), ns.Line, ns.Col, note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			marker := "fix"
			if fix.Applicability == diag.FixApplicabilityManualReview {
				marker = "suggestion"
			}
			fmt.Fprintf(w, "  %s: %s\n", marker, fix.Title)
		}
	}
}

// printUnderline prints the first line the span touches with a caret
// underline beneath the spanned text. Multi-line spans underline to the end
// of the first line.
func printUnderline(w io.Writer, span source.Span, fs *source.FileSet, colored bool) {
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}

	// widths, not byte counts: tabs and wide runes shift the caret
	pad := displayWidth(line[:startCol])
	width := displayWidth(line[startCol:endCol])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if colored {
		underline = color.New(color.FgGreen, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
}

func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\t' {
			width += 4
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

func codeLabel(code diag.Code, colored bool) string {
	label := code.ID()
	if !colored {
		return label
	}
	return color.New(color.Bold).Sprint(label)
}
