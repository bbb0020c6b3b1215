package rules

import (
	"fmt"
	"strings"

	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/source"
)

// commentMarkerRule canonicalizes the marker vocabulary inside comments:
// a comment leading with a known marker must spell it uppercase with a colon
// ("// TODO: ..."). One rule covers the whole marker set; the set itself
// comes from Options.
type commentMarkerRule struct{}

func (commentMarkerRule) ID() string                     { return "comment-marker" }
func (commentMarkerRule) Code() diag.Code                { return diag.StyleCommentMarker }
func (commentMarkerRule) Description() string            { return "comment markers use the MARKER: form" }
func (commentMarkerRule) DefaultSeverity() diag.Severity { return diag.SevInfo }
func (commentMarkerRule) CanFix() bool                   { return true }

func (r commentMarkerRule) Check(ctx *Context) {
	markers := make(map[string]bool, len(ctx.Options.Markers))
	for _, m := range ctx.Options.Markers {
		markers[strings.ToUpper(m)] = true
	}
	if len(markers) == 0 {
		return
	}

	for _, t := range ctx.Tokens {
		if !t.IsComment() || t.Unterminated {
			continue
		}
		body := t.Text[2:] // strip "//" or "/*"
		bodyOff := t.Span.Start + 2

		// skip leading spaces inside the comment
		i := 0
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		// first word of letters
		j := i
		for j < len(body) && isASCIILetter(body[j]) {
			j++
		}
		if j == i {
			continue
		}
		word := body[i:j]
		upper := strings.ToUpper(word)
		if !markers[upper] {
			continue
		}
		hasColon := j < len(body) && body[j] == ':'
		if word == upper && hasColon {
			continue
		}

		span := source.Span{
			File:  t.Span.File,
			Start: bodyOff + uint32(i),
			End:   bodyOff + uint32(j),
		}
		replacement := upper
		if !hasColon {
			replacement += ":"
		}
		ctx.Report(r.DefaultSeverity(), r.Code(), span,
			fmt.Sprintf("comment marker should be written %q", upper+":")).
			WithFixSuggestion(fix.ReplaceSpan(
				fmt.Sprintf("rewrite marker as %q", upper+":"),
				span, replacement, word,
				fix.WithApplicability(diag.FixApplicabilitySafeWithHeuristics),
				fix.Preferred(),
			)).
			Emit()
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
