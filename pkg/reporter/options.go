package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays the summary line after text output.
	ShowSummary bool

	// GroupByDocument groups text output by document and rule. When false,
	// every finding is printed on one self-contained line.
	GroupByDocument bool

	// Compact uses minified JSON output.
	Compact bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat

	// RuleSort controls the order of the rule table in summary output.
	RuleSort analysis.SortField
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:          os.Stdout,
		Format:          FormatText,
		Color:           "auto",
		ShowSummary:     true,
		GroupByDocument: true,
		RuleFormat:      config.RuleFormatID,
		RuleSort:        analysis.SortByCount,
	}
}
