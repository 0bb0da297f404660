package rules

import (
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/doc"
	"github.com/yaklabco/docstyle/pkg/lint"
	"github.com/yaklabco/docstyle/pkg/prose"
)

// NoParensOnNamesRule checks that prose names methods without parentheses.
type NoParensOnNamesRule struct {
	lint.BaseRule
}

// NewNoParensOnNamesRule creates a new terminology rule.
func NewNoParensOnNamesRule() *NoParensOnNamesRule {
	return &NoParensOnNamesRule{
		BaseRule: lint.NewBaseRule(
			IDNoParensOnNames,
			"terminology-no-parens-on-names",
			"Prose and headings must refer to methods by name, without trailing parentheses",
			[]string{"prose", "terminology"},
			config.SeverityWarning,
		),
	}
}

// Apply reports identifier() references in the title, headings, and prose,
// in document order. Inline code is exempt unless include_inline_code is set.
func (r *NoParensOnNamesRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	includeCode := ctx.OptionBool("include_inline_code", false)
	d := ctx.Doc

	var findings []lint.Finding
	check := func(section int, lines []doc.Line, columnOffset int) {
		for _, ref := range prose.Analyze(lines).CallReferences() {
			if ref.InCode && !includeCode {
				continue
			}
			findings = append(findings, lint.NewFinding(r.ID(),
				lint.At(d.ID, section, ref.Line),
				fmt.Sprintf("%q is written with parentheses", ref.Name+"()")).
				WithColumn(ref.Column+columnOffset).
				WithSuggestion(fmt.Sprintf("Write %q without parentheses", ref.Name)).
				Build())
		}
	}

	if d.TitleLine > 0 {
		check(doc.NoSection, []doc.Line{{Number: d.TitleLine, Text: d.Title}}, d.TitleColumn-1)
	}

	blocks := d.Prose()
	next := 0
	for next < len(blocks) && blocks[next].Section == doc.NoSection {
		check(doc.NoSection, blocks[next].Lines, 0)
		next++
	}

	for _, section := range d.Sections {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		check(section.Index, []doc.Line{{Number: section.Line, Text: section.Heading}}, section.HeadingColumn-1)
		for next < len(blocks) && blocks[next].Section == section.Index {
			check(section.Index, blocks[next].Lines, 0)
			next++
		}
	}

	return findings, nil
}
