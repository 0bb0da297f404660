package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// numberingPrefix matches "1.", "2:", "1.2." and similar heading prefixes.
var numberingPrefix = regexp.MustCompile(`^\d+(\.\d+)*[.:]`)

// SectionNumberingRule checks that section headings are not numbered.
type SectionNumberingRule struct {
	lint.BaseRule
}

// NewSectionNumberingRule creates a new section numbering rule.
func NewSectionNumberingRule() *SectionNumberingRule {
	return &SectionNumberingRule{
		BaseRule: lint.NewBaseRule(
			IDSectionNumbering,
			"section-title-no-numbering",
			"Section headings must not start with a number followed by a period or colon",
			[]string{"headings"},
			config.SeverityError,
		),
	}
}

// Apply reports every section heading with a numeric prefix.
func (r *SectionNumberingRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	var findings []lint.Finding

	for _, section := range ctx.Doc.Sections {
		prefix := numberingPrefix.FindString(section.Heading)
		if prefix == "" {
			continue
		}

		b := lint.NewFinding(r.ID(),
			lint.At(ctx.DocumentID(), section.Index, section.Line),
			fmt.Sprintf("Section heading %q starts with the number %q", section.Heading, prefix)).
			WithColumn(section.HeadingColumn)

		if rest := strings.TrimSpace(section.Heading[len(prefix):]); rest != "" {
			b = b.WithSuggestion(fmt.Sprintf("Rename the heading to %q", rest))
		}

		findings = append(findings, b.Build())
	}

	return findings, nil
}
