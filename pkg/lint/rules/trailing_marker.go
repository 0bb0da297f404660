package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/doc"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// TrailingMarkerRule checks that prose lines end with the trailing marker.
type TrailingMarkerRule struct {
	lint.BaseRule
}

// NewTrailingMarkerRule creates a new trailing marker rule.
func NewTrailingMarkerRule() *TrailingMarkerRule {
	return &TrailingMarkerRule{
		BaseRule: lint.NewBaseRule(
			IDTrailingMarker,
			"trailing-marker",
			"Prose lines must end with the trailing marker, except the last line of a paragraph",
			[]string{"prose", "whitespace"},
			config.SeverityWarning,
		),
	}
}

// Apply reports paragraph lines missing the marker. The last line of each
// paragraph is exempt unless on_last_line is set.
func (r *TrailingMarkerRule) Apply(ctx *lint.RuleContext) ([]lint.Finding, error) {
	defaultMarker := ctx.Config.TrailingMarker
	if defaultMarker == "" {
		defaultMarker = config.DefaultTrailingMarker
	}
	marker := ctx.OptionString("marker", defaultMarker)
	onLastLine := ctx.OptionBool("on_last_line", ctx.Config.TrailingMarkerOnLastLine)

	var findings []lint.Finding

	for _, block := range ctx.Doc.Prose() {
		if ctx.Cancelled() {
			return findings, ctx.Ctx.Err()
		}

		for _, paragraph := range doc.Paragraphs(block.Lines) {
			for i, line := range paragraph {
				if i == len(paragraph)-1 && !onLastLine {
					continue
				}
				if strings.HasSuffix(line.Text, marker) {
					continue
				}

				content := strings.TrimRight(line.Text, " \t")
				findings = append(findings, lint.NewFinding(r.ID(),
					lint.At(ctx.DocumentID(), block.Section, line.Number),
					"Line does not end with the trailing marker").
					WithColumn(utf8.RuneCountInString(content)+1).
					WithSuggestion("End the line with "+describeMarker(marker)).
					Build())
			}
		}
	}

	return findings, nil
}

// describeMarker names a marker for humans.
func describeMarker(marker string) string {
	if strings.Trim(marker, " ") == "" {
		if len(marker) == 1 {
			return "one space"
		}
		return fmt.Sprintf("%d spaces", len(marker))
	}
	return fmt.Sprintf("%q", marker)
}
