package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/docstyle/internal/ui/pretty"
	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
)

// TextRenderer formats findings as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Documents == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.styles.Success.Render("No documents to check."))
		}
		return nil
	}

	if r.opts.GroupByDocument {
		r.renderGrouped(bw, report)
	} else {
		for i := range report.Findings {
			fmt.Fprint(bw, r.styles.FormatFindingLine(&report.Findings[i], r.opts.RuleFormat))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

// renderGrouped writes findings grouped by document, then by rule. Both
// groupings keep the order in which findings were reported.
func (r *TextRenderer) renderGrouped(bw *bufio.Writer, report *analysis.Report) {
	for _, group := range groupFindings(report.Findings) {
		fmt.Fprintln(bw, r.styles.FormatDocumentHeader(group.document, group.count))

		for _, rg := range group.rules {
			rule := config.FormatRuleID(r.opts.RuleFormat, rg.ruleID, rg.ruleName)
			fmt.Fprintln(bw, r.styles.FormatRuleHeader(rule, len(rg.findings)))
			for _, f := range rg.findings {
				fmt.Fprint(bw, r.styles.FormatFinding(f))
			}
		}

		fmt.Fprintln(bw)
	}
}

type ruleGroup struct {
	ruleID   string
	ruleName string
	findings []*analysis.FindingEntry
}

type documentGroup struct {
	document string
	count    int
	rules    []*ruleGroup
}

func groupFindings(findings []analysis.FindingEntry) []*documentGroup {
	var groups []*documentGroup
	byDoc := make(map[string]*documentGroup)
	byRule := make(map[string]map[string]*ruleGroup)

	for i := range findings {
		f := &findings[i]

		dg, ok := byDoc[f.Document]
		if !ok {
			dg = &documentGroup{document: f.Document}
			byDoc[f.Document] = dg
			byRule[f.Document] = make(map[string]*ruleGroup)
			groups = append(groups, dg)
		}
		dg.count++

		rg, ok := byRule[f.Document][f.RuleID]
		if !ok {
			rg = &ruleGroup{ruleID: f.RuleID, ruleName: f.RuleName}
			byRule[f.Document][f.RuleID] = rg
			dg.rules = append(dg.rules, rg)
		}
		rg.findings = append(rg.findings, f)
	}

	return groups
}
