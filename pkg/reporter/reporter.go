// Package reporter renders validation results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/runner"
)

var _ Reporter = (*reporterFacade)(nil)

// Reporter builds a report from a run and writes it.
type Reporter interface {
	// Report renders result and returns the report it was built from.
	Report(ctx context.Context, result *runner.Result) (*analysis.Report, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by building the report and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (*analysis.Report, error) {
	report := analysis.Build(result.Findings(), f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return report, fmt.Errorf("render: %w", err)
	}
	return report, nil
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	renderer, err := NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeFindings: true,
			RuleSort:        opts.RuleSort,
		},
	}, nil
}

// NewRenderer creates the Renderer for opts.Format.
func NewRenderer(opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatSummary:
		return NewSummaryRenderer(opts), nil
	case FormatText:
		return NewTextRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
