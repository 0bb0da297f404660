package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/docstyle/pkg/analysis"
)

// maxDividerWidth caps the summary divider on wide terminals.
const maxDividerWidth = 60

// FormatSummaryOneLine formats report totals as a single line.
// Example: "12 findings (8 errors, 4 warnings) in 3 documents".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	errors := Plural(totals.Errors, "error", "errors")
	if totals.Errors > 0 {
		errors = s.Error.Render(errors)
	}
	warnings := Plural(totals.Warnings, "warning", "warnings")
	if totals.Warnings > 0 {
		warnings = s.Warning.Render(warnings)
	}

	line := Plural(totals.Findings, "finding", "findings") +
		" (" + errors + ", " + warnings + ") in " +
		Plural(totals.Documents, "document", "documents")

	if totals.Findings == 0 {
		line = s.Success.Render(line)
	}
	return line + "\n"
}

// FormatSummary formats report totals as a summary block. width is the
// available terminal width.
func (s *Styles) FormatSummary(totals analysis.Totals, width int) string {
	var builder strings.Builder

	divider := strings.Repeat("-", min(max(width, 1), maxDividerWidth))

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(s.Dim.Render(divider))
	builder.WriteString("\n")

	builder.WriteString("  Documents checked:       " +
		s.SummaryValue.Render(strconv.Itoa(totals.Documents)) + "\n")

	if totals.DocumentsWithFindings > 0 {
		builder.WriteString("  Documents with findings: " +
			s.Failure.Render(strconv.Itoa(totals.DocumentsWithFindings)) + "\n")
	}
	if totals.DocumentsFailed > 0 {
		builder.WriteString("  Documents not parsed:    " +
			s.Failure.Render(strconv.Itoa(totals.DocumentsFailed)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total findings:          " +
		s.SummaryValue.Render(strconv.Itoa(totals.Findings)) + "\n")
	if totals.Errors > 0 {
		builder.WriteString("    Errors:                " +
			s.Error.Render(strconv.Itoa(totals.Errors)) + "\n")
	}
	if totals.Warnings > 0 {
		builder.WriteString("    Warnings:              " +
			s.Warning.Render(strconv.Itoa(totals.Warnings)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case totals.Errors > 0:
		builder.WriteString(s.Failure.Render("Style check failed"))
	case totals.Warnings > 0:
		builder.WriteString(s.Warning.Render("Style check passed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Style check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
