package rules

import (
	"stylint/internal/diag"
)

// Rule is a stateless, independently toggleable check over a token stream.
// Rules never read each other's findings, so any subset can run in isolation
// and in any order.
type Rule interface {
	// ID is the stable kebab-case identifier used in configuration.
	ID() string
	// Code is the diagnostic code all findings of this rule carry.
	Code() diag.Code
	// Description is a one-line summary for rule listings.
	Description() string
	// DefaultSeverity applies when configuration does not override it.
	DefaultSeverity() diag.Severity
	// CanFix reports whether the rule ever attaches an auto-fix.
	CanFix() bool
	// Check inspects the context and reports findings through it.
	Check(ctx *Context)
}

// registry holds all built-in rules in their canonical order.
var registry = []Rule{
	terminationRule{},
	onePerLineRule{},
	explicitTypeRule{},
	bracePlacementRule{},
	conditionParensRule{},
	forParensRule{},
	forceUnwrapRule{},
	commentMarkerRule{},
	selfPrefixRule{},
	memberGroupingRule{},
}

// All returns the built-in rules in canonical order.
func All() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

// ByID looks up a built-in rule by its identifier.
func ByID(id string) (Rule, bool) {
	for _, r := range registry {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// KnownIDs returns the identifiers of all built-in rules in canonical order.
func KnownIDs() []string {
	out := make([]string, len(registry))
	for i, r := range registry {
		out[i] = r.ID()
	}
	return out
}
