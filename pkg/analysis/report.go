// Package analysis aggregates per-document findings into a Report.
package analysis

// Report is the aggregated result of a validation run.
// It is built once by Build and never mutated afterwards; every renderer
// reads from it.
type Report struct {
	// Version is the report format version.
	Version string `json:"version"`

	// Findings is the ordered list of all findings: documents in the order
	// given to Build, findings in validation order.
	Findings []FindingEntry `json:"findings"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// BySeverity maps each severity to its finding count.
	BySeverity map[string]int `json:"bySeverity"`

	// ByRule counts findings per rule.
	ByRule []RuleCount `json:"byRule"`

	// ByDocument counts findings per document, sorted by path.
	ByDocument []DocumentCount `json:"byDocument"`
}

// FindingEntry represents a single finding in the report.
type FindingEntry struct {
	Document   string `json:"document"`
	Section    int    `json:"section"`
	Line       int    `json:"line"`
	Column     int    `json:"column,omitempty"`
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Documents             int `json:"documents"`
	DocumentsWithFindings int `json:"documentsWithFindings"`
	DocumentsFailed       int `json:"documentsFailed"`
	Findings              int `json:"findings"`
	Errors                int `json:"errors"`
	Warnings              int `json:"warnings"`
}

// HasFindings returns true if there are any findings.
func (t Totals) HasFindings() bool {
	return t.Findings > 0
}

// HasErrors returns true if there are any error findings.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// Failing reports whether the run should fail: any error finding, or any
// warning when strict is set.
func (t Totals) Failing(strict bool) bool {
	return t.HasErrors() || (strict && t.Warnings > 0)
}

// RuleCount contains aggregated data for a single rule.
type RuleCount struct {
	RuleID    string   `json:"ruleId"`
	RuleName  string   `json:"ruleName"`
	Findings  int      `json:"findings"`
	Errors    int      `json:"errors"`
	Warnings  int      `json:"warnings"`
	Documents []string `json:"documents,omitempty"`
}

// DocumentCount contains aggregated data for a single document.
type DocumentCount struct {
	Document string   `json:"document"`
	Findings int      `json:"findings"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Failed   bool     `json:"failed,omitempty"`
	Rules    []string `json:"rules,omitempty"`
}
