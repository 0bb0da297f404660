package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docstyle/internal/ui/pretty"
	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
)

func sampleEntry() *analysis.FindingEntry {
	return &analysis.FindingEntry{
		Document:   "strings.md",
		Section:    0,
		Line:       3,
		Column:     4,
		RuleID:     "SECTION_TITLE_NO_NUMBERING",
		RuleName:   "section-title-no-numbering",
		Severity:   "error",
		Message:    "Section heading is numbered",
		Suggestion: `Rename the heading to "Basic string creation"`,
	}
}

func TestFormatFinding(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatFinding(sampleEntry())

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "3:4")
	assert.Contains(t, lines[0], "error")
	assert.Contains(t, lines[0], "Section heading is numbered")
	assert.Contains(t, lines[1], `Suggestion: Rename the heading to "Basic string creation"`)
}

func TestFormatFinding_NoColumnNoSuggestion(t *testing.T) {
	styles := pretty.NewStyles(false)

	entry := sampleEntry()
	entry.Column = 0
	entry.Suggestion = ""

	result := styles.FormatFinding(entry)

	assert.Equal(t, 1, strings.Count(result, "\n"))
	assert.Contains(t, result, "    3        error")
	assert.NotContains(t, result, "Suggestion")
}

func TestFormatFindingLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		format config.RuleFormat
		want   string
	}{
		{config.RuleFormatID, "(SECTION_TITLE_NO_NUMBERING)"},
		{config.RuleFormatName, "(section-title-no-numbering)"},
		{config.RuleFormatCombined, "(SECTION_TITLE_NO_NUMBERING/section-title-no-numbering)"},
	}

	for _, tt := range tests {
		result := styles.FormatFindingLine(sampleEntry(), tt.format)
		assert.True(t, strings.HasPrefix(result, "strings.md:3:4  error"), result)
		assert.Contains(t, result, tt.want)
	}
}

func TestFormatSeverity(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "error  ", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "custom", styles.FormatSeverity(config.Severity("custom")))
}

func TestFormatHeaders(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "strings.md (1 finding)", styles.FormatDocumentHeader("strings.md", 1))
	assert.Equal(t, "strings.md (3 findings)", styles.FormatDocumentHeader("strings.md", 3))
	assert.Equal(t, "strings.md", styles.FormatDocumentHeader("strings.md", 0))
	assert.Equal(t, "  LINE_WIDTH [2]", styles.FormatRuleHeader("LINE_WIDTH", 2))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "0 errors", pretty.Plural(0, "error", "errors"))
	assert.Equal(t, "1 error", pretty.Plural(1, "error", "errors"))
	assert.Equal(t, "2 errors", pretty.Plural(2, "error", "errors"))
}
