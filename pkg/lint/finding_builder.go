package lint

import "github.com/yaklabco/docstyle/pkg/config"

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given rule and location.
func NewFinding(ruleID string, loc Location, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			RuleID:   ruleID,
			Message:  message,
			Location: loc,
		},
	}
}

// WithRuleName sets the human-readable rule name.
func (b *FindingBuilder) WithRuleName(name string) *FindingBuilder {
	b.finding.RuleName = name
	return b
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithColumn sets the 1-based column.
func (b *FindingBuilder) WithColumn(column int) *FindingBuilder {
	b.finding.Location.Column = column
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}

// At is a shorthand for a Location in document id.
func At(id string, section, line int) Location {
	return Location{Document: id, Section: section, Line: line}
}
