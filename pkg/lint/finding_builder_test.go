package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
)

func TestFindingBuilder(t *testing.T) {
	t.Parallel()

	f := lint.NewFinding("LINE_WIDTH", lint.At("a.md", 2, 14), "line is 95 characters").
		WithRuleName("line-width").
		WithSeverity(config.SeverityError).
		WithSuggestion("wrap the line").
		WithColumn(81).
		Build()

	assert.Equal(t, lint.Finding{
		RuleID:     "LINE_WIDTH",
		RuleName:   "line-width",
		Severity:   config.SeverityError,
		Message:    "line is 95 characters",
		Suggestion: "wrap the line",
		Location:   lint.Location{Document: "a.md", Section: 2, Line: 14, Column: 81},
	}, f)
}
