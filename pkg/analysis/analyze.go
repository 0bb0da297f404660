package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// DocumentFindings pairs a document with its findings.
type DocumentFindings struct {
	// Document is the document identifier.
	Document string

	// Findings are the document's findings in validation order.
	Findings []lint.Finding

	// Failed is set when the document could not be read or parsed.
	Failed bool
}

// analysisContext holds temporary state during Build.
type analysisContext struct {
	ruleMap  map[string]*RuleCount
	ruleDocs map[string]map[string]bool
	docMap   map[string]*DocumentCount
	docRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:  make(map[string]*RuleCount),
		ruleDocs: make(map[string]map[string]bool),
		docMap:   make(map[string]*DocumentCount),
		docRules: make(map[string]map[string]bool),
	}
}

func normalizeSeverity(sev config.Severity) string {
	if sev == "" {
		return string(config.SeverityWarning)
	}
	return string(sev)
}

func (ctx *analysisContext) document(id string) *DocumentCount {
	if _, ok := ctx.docMap[id]; !ok {
		ctx.docMap[id] = &DocumentCount{Document: id}
		ctx.docRules[id] = make(map[string]bool)
	}
	return ctx.docMap[id]
}

func (ctx *analysisContext) rule(ruleID, ruleName string) *RuleCount {
	if _, ok := ctx.ruleMap[ruleID]; !ok {
		ctx.ruleMap[ruleID] = &RuleCount{RuleID: ruleID, RuleName: ruleName}
		ctx.ruleDocs[ruleID] = make(map[string]bool)
	}
	return ctx.ruleMap[ruleID]
}

// Build aggregates results into a Report. It has no side effects and the
// same input always yields the same Report.
func Build(results []DocumentFindings, opts Options) *Report {
	report := &Report{
		Version:    ReportVersion,
		Findings:   []FindingEntry{},
		BySeverity: make(map[string]int),
		ByRule:     []RuleCount{},
		ByDocument: []DocumentCount{},
	}

	ctx := newAnalysisContext()

	for _, result := range results {
		dc := ctx.document(result.Document)
		if result.Failed {
			dc.Failed = true
		}

		for i := range result.Findings {
			f := &result.Findings[i]
			severity := normalizeSeverity(f.Severity)

			report.Totals.Findings++
			report.BySeverity[severity]++
			dc.Findings++

			rc := ctx.rule(f.RuleID, f.RuleName)
			rc.Findings++

			switch config.Severity(severity) {
			case config.SeverityError:
				report.Totals.Errors++
				dc.Errors++
				rc.Errors++
			case config.SeverityWarning:
				report.Totals.Warnings++
				dc.Warnings++
				rc.Warnings++
			}

			ctx.docRules[result.Document][f.RuleID] = true
			ctx.ruleDocs[f.RuleID][result.Document] = true

			if opts.IncludeFindings {
				report.Findings = append(report.Findings, newFindingEntry(result.Document, severity, f))
			}
		}
	}

	for _, dc := range ctx.docMap {
		report.Totals.Documents++
		if dc.Findings > 0 {
			report.Totals.DocumentsWithFindings++
		}
		if dc.Failed {
			report.Totals.DocumentsFailed++
		}
	}

	report.ByRule = ctx.buildByRule(opts.RuleSort)
	report.ByDocument = ctx.buildByDocument()

	return report
}

func newFindingEntry(document, severity string, f *lint.Finding) FindingEntry {
	if f.Location.Document != "" {
		document = f.Location.Document
	}
	return FindingEntry{
		Document:   document,
		Section:    f.Location.Section,
		Line:       f.Location.Line,
		Column:     f.Location.Column,
		RuleID:     f.RuleID,
		RuleName:   f.RuleName,
		Severity:   severity,
		Message:    f.Message,
		Suggestion: f.Suggestion,
	}
}

func (ctx *analysisContext) buildByRule(sortBy SortField) []RuleCount {
	result := make([]RuleCount, 0, len(ctx.ruleMap))
	for ruleID, rc := range ctx.ruleMap {
		for d := range ctx.ruleDocs[ruleID] {
			rc.Documents = append(rc.Documents, d)
		}
		slices.Sort(rc.Documents)
		result = append(result, *rc)
	}
	sortRuleCounts(result, sortBy)
	return result
}

func (ctx *analysisContext) buildByDocument() []DocumentCount {
	result := make([]DocumentCount, 0, len(ctx.docMap))
	for id, dc := range ctx.docMap {
		for r := range ctx.docRules[id] {
			dc.Rules = append(dc.Rules, r)
		}
		slices.Sort(dc.Rules)
		result = append(result, *dc)
	}
	slices.SortFunc(result, func(left, right DocumentCount) int {
		return cmp.Compare(left.Document, right.Document)
	})
	return result
}

func sortRuleCounts(rules []RuleCount, sortBy SortField) {
	slices.SortFunc(rules, func(left, right RuleCount) int {
		var result int
		switch sortBy {
		case SortByAlpha:
		case SortBySeverity:
			result = cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
		default: // SortByCount
			result = cmp.Compare(right.Findings, left.Findings)
		}
		if result == 0 {
			result = cmp.Compare(left.RuleID, right.RuleID)
		}
		return result
	})
}
