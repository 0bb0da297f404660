package runner

import (
	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// DocumentOutcome is the result of validating one document of the corpus.
type DocumentOutcome struct {
	// Path is the absolute file path.
	Path string

	// ID is the document identifier used in findings.
	ID string

	// Result holds the findings. It is nil when Error is set.
	Result *lint.DocumentResult

	// Error is set when the document could not be read or processed.
	Error error
}

// Failed reports whether the document could not be read or parsed.
func (o DocumentOutcome) Failed() bool {
	return o.Error != nil || (o.Result != nil && o.Result.Failed())
}

// Stats captures aggregate information about a run.
type Stats struct {
	// DocumentsDiscovered is the number of documents found during discovery.
	DocumentsDiscovered int

	// DocumentsValidated is the number of documents that were read and parsed.
	DocumentsValidated int

	// DocumentsUnparsable is the number of documents with a PARSE finding.
	DocumentsUnparsable int

	// DocumentsErrored is the number of documents that could not be read.
	DocumentsErrored int

	// DocumentsWithFindings is the number of documents with at least one finding.
	DocumentsWithFindings int

	// FindingsTotal is the number of findings across all documents.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Documents holds one outcome per discovered document, sorted by path.
	Documents []DocumentOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// IOErrors returns the errors of documents that could not be read.
func (r *Result) IOErrors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, d := range r.Documents {
		if d.Error != nil {
			errs = append(errs, d.Error)
		}
	}
	return errs
}

// Findings returns the per-document findings in document order, ready for
// analysis.Build.
func (r *Result) Findings() []analysis.DocumentFindings {
	if r == nil {
		return nil
	}
	out := make([]analysis.DocumentFindings, 0, len(r.Documents))
	for _, d := range r.Documents {
		df := analysis.DocumentFindings{
			Document: d.ID,
			Failed:   d.Failed(),
		}
		if d.Result != nil {
			df.Findings = d.Result.Findings
		}
		out = append(out, df)
	}
	return out
}

func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[string]int),
	}
}

func (r *Result) accumulate(outcome DocumentOutcome) {
	r.Documents = append(r.Documents, outcome)

	if outcome.Error != nil {
		r.Stats.DocumentsErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	if outcome.Result.Failed() {
		r.Stats.DocumentsUnparsable++
	} else {
		r.Stats.DocumentsValidated++
	}

	count := len(outcome.Result.Findings)
	r.Stats.FindingsTotal += count
	if count > 0 {
		r.Stats.DocumentsWithFindings++
	}
	for _, f := range outcome.Result.Findings {
		severity := string(f.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.FindingsBySeverity[severity]++
	}
}
