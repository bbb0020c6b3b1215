package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// UnknownCode covers diagnostics without a dedicated code.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Style rules
	StyleStatementTermination Code = 2001
	StyleOneStatementPerLine  Code = 2002
	StyleExplicitType         Code = 2003
	StyleBracePlacement       Code = 2004
	StyleConditionParens      Code = 2005
	StyleForParens            Code = 2006
	StyleForceUnwrap          Code = 2007
	StyleCommentMarker        Code = 2008
	StyleSelfPrefix           Code = 2009
	StyleMemberGrouping       Code = 2010

	// Fix application
	FixSkippedOverlap Code = 3001
	FixSkippedGuard   Code = 3002

	// I/O
	IOLoadFileError Code = 4001
	IOEmptyInput    Code = 4002

	// Configuration
	CfgUnknownRule  Code = 5001
	CfgBadSeverity  Code = 5002
	CfgLoadError    Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	StyleStatementTermination:   "statement is not terminated",
	StyleOneStatementPerLine:    "more than one statement on a line",
	StyleExplicitType:           "declaration without explicit type",
	StyleBracePlacement:         "opening brace not on the header line",
	StyleConditionParens:        "control condition not parenthesized",
	StyleForParens:              "for header parenthesization",
	StyleForceUnwrap:            "unguarded force unwrap",
	StyleCommentMarker:          "non-canonical comment marker",
	StyleSelfPrefix:             "field access without self prefix",
	StyleMemberGrouping:         "field declared after methods",
	FixSkippedOverlap:           "fix skipped: overlapping edit",
	FixSkippedGuard:             "fix skipped: source changed",
	IOLoadFileError:             "cannot load file",
	IOEmptyInput:                "empty input",
	CfgUnknownRule:              "unknown rule id in configuration",
	CfgBadSeverity:              "bad severity in configuration",
	CfgLoadError:                "cannot load configuration",
}

// ID returns the stable textual identifier, e.g. "STY2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FIX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
