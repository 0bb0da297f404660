package rules

import (
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
	"github.com/yaklabco/docstyle/pkg/prose"
)

// LineWidthRule checks that prose lines do not exceed a maximum width.
type LineWidthRule struct {
	lint.BaseRule
}

// NewLineWidthRule creates a new line width rule.
func NewLineWidthRule() *LineWidthRule {
	return &LineWidthRule{
		BaseRule: lint.NewBaseRule(
			IDLineWidth,
			"line-width",
			"Prose lines must not exceed the configured maximum width",
			[]string{"prose", "line_length"},
			config.SeverityError,
		),
	}
}

// Apply reports every prose line wider than max, intro and summaries included.
// Width is measured in characters after NFC normalization, trailing marker
// included.
func (r *LineWidthRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	maxWidth := ctx.OptionInt("max", positiveOr(ctx.Config.MaxLineWidth, config.DefaultMaxLineWidth))

	var findings []lint.Finding

	for _, block := range ctx.Doc.Prose() {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		for _, line := range block.Lines {
			width := prose.Width(line.Text)
			if width <= maxWidth {
				continue
			}

			findings = append(findings, lint.NewFinding(r.ID(),
				lint.At(ctx.DocumentID(), block.Section, line.Number),
				fmt.Sprintf("Line is %d characters, maximum is %d", width, maxWidth)).
				WithColumn(maxWidth+1).
				WithSuggestion(fmt.Sprintf("Wrap the line at %d characters", maxWidth)).
				Build())
		}
	}

	return findings, nil
}

// positiveOr returns v, or fallback when v is not positive.
func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
