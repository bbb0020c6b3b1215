// Package ui renders the run summary block printed after check and fix.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Summary describes one run's outcome.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
	Infos    int
	// Fix-run fields, unused for plain checks.
	FixRun       bool
	FixesApplied int
	FixesSkipped int
	FilesChanged int
}

// Clean reports whether the run produced no findings at all.
func (s Summary) Clean() bool {
	return s.Errors == 0 && s.Warnings == 0 && s.Infos == 0
}

// Render formats the summary block. With color disabled the styles
// degrade to plain text.
func Render(s Summary, colored bool) string {
	style := func(st lipgloss.Style, text string) string {
		if !colored {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder

	noun := "files"
	if s.Files == 1 {
		noun = "file"
	}
	if s.Clean() {
		fmt.Fprintf(&b, "%s %d %s checked, no findings\n",
			style(okStyle, "ok:"), s.Files, noun)
	} else {
		parts := make([]string, 0, 3)
		if s.Errors > 0 {
			parts = append(parts, style(errorStyle, fmt.Sprintf("%d errors", s.Errors)))
		}
		if s.Warnings > 0 {
			parts = append(parts, style(warningStyle, fmt.Sprintf("%d warnings", s.Warnings)))
		}
		if s.Infos > 0 {
			parts = append(parts, style(infoStyle, fmt.Sprintf("%d infos", s.Infos)))
		}
		fmt.Fprintf(&b, "%s %d %s checked: %s\n",
			style(headerStyle, "findings:"), s.Files, noun, strings.Join(parts, ", "))
	}

	if s.FixRun {
		fmt.Fprintf(&b, "%s applied %d, skipped %d, %d %s changed\n",
			style(headerStyle, "fixes:"), s.FixesApplied, s.FixesSkipped,
			s.FilesChanged, fileNoun(s.FilesChanged))
	} else if !s.Clean() {
		b.WriteString(style(dimStyle, "run `stylint fix` to apply automatic fixes\n"))
	}

	return b.String()
}

func fileNoun(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
