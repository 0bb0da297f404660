package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
)

// FormatFinding formats a single finding for grouped terminal output.
// The document and rule are shown by the surrounding headers, so the line
// carries only the location, severity, and message.
func (s *Styles) FormatFinding(f *analysis.FindingEntry) string {
	var builder strings.Builder

	location := fmt.Sprintf("%d", f.Line)
	if f.Column > 0 {
		location = fmt.Sprintf("%d:%d", f.Line, f.Column)
	}

	builder.WriteString(fmt.Sprintf("    %s  %s  %s\n",
		s.Location.Render(fmt.Sprintf("%-7s", location)),
		s.FormatSeverity(config.Severity(f.Severity)),
		s.Message.Render(f.Message),
	))

	if f.Suggestion != "" {
		builder.WriteString("             " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(f.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatFindingLine formats a finding on one self-contained line:
// path:line:col  severity  message  (rule).
func (s *Styles) FormatFindingLine(f *analysis.FindingEntry, ruleFormat config.RuleFormat) string {
	location := fmt.Sprintf("%s:%d", s.DocumentPath.Render(f.Document), f.Line)
	if f.Column > 0 {
		location += fmt.Sprintf(":%d", f.Column)
	}
	rule := config.FormatRuleID(ruleFormat, f.RuleID, f.RuleName)

	return fmt.Sprintf("%s  %s  %s  %s\n",
		location,
		s.FormatSeverity(config.Severity(f.Severity)),
		s.Message.Render(f.Message),
		s.RuleID.Render("("+rule+")"),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error  ")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatDocumentHeader formats the header that opens a document group.
func (s *Styles) FormatDocumentHeader(path string, findingCount int) string {
	header := s.DocumentPath.Render(path)
	if findingCount > 0 {
		header += s.Dim.Render(" (" + Plural(findingCount, "finding", "findings") + ")")
	}
	return header
}

// FormatRuleHeader formats the header that opens a rule group within a document.
func (s *Styles) FormatRuleHeader(rule string, findingCount int) string {
	return "  " + s.RuleHeader.Render(rule) + s.Dim.Render(fmt.Sprintf(" [%d]", findingCount))
}

// Plural formats n with the singular or plural word.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
