package rules

import (
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
	"github.com/yaklabco/docstyle/pkg/prose"
)

// ExplanationLengthRule checks that every code example is explained.
type ExplanationLengthRule struct {
	lint.BaseRule
}

// NewExplanationLengthRule creates a new explanation length rule.
func NewExplanationLengthRule() *ExplanationLengthRule {
	return &ExplanationLengthRule{
		BaseRule: lint.NewBaseRule(
			IDExplanationLength,
			"explanation-min-length",
			"Code examples must be followed by an explanation; complex examples need several sentences",
			[]string{"prose", "code"},
			config.SeverityError,
		),
	}
}

// Apply reports examples whose explanation is too short. An example with
// more than complex_lines non-blank source lines needs min sentences; any
// other example needs one.
func (r *ExplanationLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	minSentences := ctx.OptionInt("min",
		positiveOr(ctx.Config.MinExplanationSentences, config.DefaultMinExplanationSentences))
	complexLines := ctx.OptionInt("complex_lines",
		positiveOr(ctx.Config.ComplexExampleLines, config.DefaultComplexExampleLines))

	var findings []lint.Finding

	for _, ref := range ctx.Doc.Examples() {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		ex := ref.Example
		sourceLines := ex.NonBlankSourceLines()

		required := 1
		kind := "example"
		if sourceLines > complexLines {
			required = minSentences
			kind = "complex example"
		}

		got := prose.Analyze(ex.Explanation).Sentences()
		if got >= required {
			continue
		}

		findings = append(findings, lint.NewFinding(r.ID(),
			lint.At(ctx.DocumentID(), ref.Section, ex.CloseLine),
			fmt.Sprintf("The %s ending here (%d lines) is followed by %s; at least %s required",
				kind, sourceLines, sentences(got), sentences(required))).
			WithSuggestion("Explain what the code does after the closing fence").
			Build())
	}

	return findings, nil
}

func sentences(n int) string {
	if n == 1 {
		return "1 sentence"
	}
	return fmt.Sprintf("%d sentences", n)
}
