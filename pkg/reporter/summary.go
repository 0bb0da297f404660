package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/docstyle/internal/ui/pretty"
	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
)

// Table layout constants for summary output.
const (
	ruleColWidth      = 34
	docColWidth       = 48
	numColWidth       = 8
	warnColWidth      = 9
	maxRuleNameLength = 32
	maxDocPathLength  = 46
)

// padRight pads a string to the given width with spaces on the right.
// This must be called before applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called before applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats the report as per-rule and per-document tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
	width  int
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
		width:  pretty.TerminalWidth(opts.Writer),
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.HasFindings() {
		r.renderRuleTable(report.ByRule)
		fmt.Fprintln(r.out)
		r.renderDocumentTable(report.ByDocument)
	}

	fmt.Fprint(r.out, r.styles.FormatSummary(report.Totals, r.width))
	fmt.Fprint(r.out, r.styles.FormatSummaryOneLine(report.Totals))

	return nil
}

func (r *SummaryRenderer) separator(width int) string {
	return r.styles.TableSeparator.Render(strings.Repeat("─", min(width, r.width)))
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleCount) {
	if len(rules) == 0 {
		return
	}

	tableWidth := ruleColWidth + numColWidth*2 + warnColWidth + 3

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules"))
	fmt.Fprintln(r.out, r.separator(tableWidth))
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.separator(tableWidth))

	for _, rule := range rules {
		name := config.FormatRuleID(r.opts.RuleFormat, rule.RuleID, rule.RuleName)
		if len(name) > maxRuleNameLength {
			name = name[:maxRuleNameLength] + "…"
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			r.rowStyle(rule.Errors, rule.Warnings, padRight(name, ruleColWidth)),
			padLeft(strconv.Itoa(rule.Findings), numColWidth),
			padLeft(strconv.Itoa(rule.Errors), numColWidth),
			padLeft(strconv.Itoa(rule.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) renderDocumentTable(documents []analysis.DocumentCount) {
	tableWidth := docColWidth + numColWidth*2 + warnColWidth + 3

	fmt.Fprintln(r.out, r.styles.Bold.Render("Documents"))
	fmt.Fprintln(r.out, r.separator(tableWidth))
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Document", docColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	fmt.Fprintln(r.out, r.separator(tableWidth))

	for _, d := range documents {
		if d.Findings == 0 {
			continue
		}
		path := d.Document
		if len(path) > maxDocPathLength {
			path = "…" + path[len(path)-(maxDocPathLength-1):]
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			r.rowStyle(d.Errors, d.Warnings, padRight(path, docColWidth)),
			padLeft(strconv.Itoa(d.Findings), numColWidth),
			padLeft(strconv.Itoa(d.Errors), numColWidth),
			padLeft(strconv.Itoa(d.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryRenderer) rowStyle(errors, warnings int, cell string) string {
	switch {
	case errors > 0:
		return r.styles.TableErrorRow.Render(cell)
	case warnings > 0:
		return r.styles.TableWarnRow.Render(cell)
	default:
		return cell
	}
}
