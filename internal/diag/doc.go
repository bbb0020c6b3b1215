// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity (info/warning/error), a compact
// numeric Code with a stable string form (codes.go), a short message, the
// primary source.Span, optional Notes, and optional Fixes.
//
// Fix models an automated correction as plain data: a title, a coarse Kind,
// an Applicability confidence level, and concrete TextEdits. TextEdit spans
// are in original source coordinates; OldText acts as an optional guard the
// fix engine validates before touching the buffer. Fixes stay data-only so
// formatters and the fix engine can serialise and replay them
// deterministically.
//
// Phases emit through the Reporter interface, usually via ReportBuilder
// (ReportWarning(...).WithFix(...).Emit()). BagReporter aggregates into a
// Bag, which supports sorting, deduplication and merging. Rendering lives in
// internal/diagfmt; edit application lives in internal/fix.
package diag
