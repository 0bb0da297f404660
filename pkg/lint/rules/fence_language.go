package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/langdetect"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// FenceLanguageTagRule checks that code fences declare the expected language.
type FenceLanguageTagRule struct {
	lint.BaseRule
}

// NewFenceLanguageTagRule creates a new fence language tag rule.
func NewFenceLanguageTagRule() *FenceLanguageTagRule {
	return &FenceLanguageTagRule{
		BaseRule: lint.NewBaseRule(
			IDFenceLanguageTag,
			"code-fence-language-tag",
			"Fenced code blocks must declare the expected language tag",
			[]string{"code", "language"},
			config.SeverityError,
		),
	}
}

// Apply reports fences with a missing or different language tag. Tags
// compare case-insensitively. Untagged fences get a suggestion based on
// what the content looks like.
func (r *FenceLanguageTagRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	defaultTag := ctx.Config.LanguageTag
	if defaultTag == "" {
		defaultTag = config.DefaultLanguageTag
	}
	tag := ctx.OptionString("tag", defaultTag)

	var findings []lint.Finding

	for _, ref := range ctx.Doc.Examples() {
		ex := ref.Example
		if strings.EqualFold(ex.Language, tag) {
			continue
		}

		loc := lint.At(ctx.DocumentID(), ref.Section, ex.OpenLine)

		if ex.Language == "" {
			findings = append(findings, lint.NewFinding(r.ID(), loc,
				fmt.Sprintf("Code fence has no language tag, expected %q", tag)).
				WithColumn(1).
				WithSuggestion(suggestTag(tag, []byte(ex.SourceText()))).
				Build())
			continue
		}

		findings = append(findings, lint.NewFinding(r.ID(), loc,
			fmt.Sprintf("Code fence is tagged %q, expected %q", ex.Language, tag)).
			WithColumn(1).
			Build())
	}

	return findings, nil
}

// suggestTag builds the suggestion for an untagged fence.
func suggestTag(tag string, source []byte) string {
	detected := langdetect.Detect(source)
	if detected == langdetect.LangText || strings.EqualFold(detected, tag) {
		return fmt.Sprintf("Add %q after the opening backticks", tag)
	}
	return fmt.Sprintf("Add %q after the opening backticks (the content looks like %s)", tag, detected)
}
