// Package lint provides the rule model, registry, and validator for docstyle.
package lint

import "github.com/yaklabco/docstyle/pkg/config"

// Meta rule identifiers. They are never registered as rules; the validator
// uses them for findings about the run itself.
const (
	// ParseRuleID marks a document that could not be parsed.
	ParseRuleID = "PARSE"

	// InternalRuleID marks a rule that failed or panicked.
	InternalRuleID = "INTERNAL"
)

// Location points at the place a finding refers to.
type Location struct {
	// Document is the document identifier (usually its path).
	Document string

	// Section is the 0-based section index, or doc.NoSection.
	Section int

	// Line is the 1-based line number (0 for whole-document findings).
	Line int

	// Column is the 1-based column (0 when not meaningful).
	Column int
}

// Finding represents a single rule violation found in a document.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "line-width").
	RuleName string

	// Severity indicates the importance of the finding.
	Severity config.Severity

	// Message is the human-readable description of the issue.
	Message string

	// Suggestion is an optional hint on how to resolve the issue.
	Suggestion string

	// Location is where the issue was found.
	Location Location
}

// Rule defines the interface that all style rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "LINE_WIDTH").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["prose", "format"]).
	Tags() []string

	// Apply evaluates the rule against the document in ctx.
	//
	// Rules must:
	//   - Return findings in document traversal order.
	//   - Never mutate the document.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Finding, error)
}
