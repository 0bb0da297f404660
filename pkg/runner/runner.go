package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// Runner validates every document of a corpus with a lint.Validator.
type Runner struct {
	// Validator parses and validates single documents.
	Validator *lint.Validator

	// ReadFile reads a document. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// New creates a new Runner with the given validator.
func New(validator *lint.Validator) *Runner {
	return &Runner{Validator: validator, ReadFile: os.ReadFile}
}

// Run discovers documents under opts.Paths and validates them concurrently,
// at most opts.Jobs at a time.
//
// Outcomes are returned sorted by path regardless of completion order. A
// document that cannot be read is recorded with its error and the run
// continues. Only discovery failures and cancellation are returned as errors;
// on cancellation the partial result is returned alongside the error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{
		Documents: make([]DocumentOutcome, 0, len(files)),
		Stats:     newStats(),
	}
	result.Stats.DocumentsDiscovered = len(files)

	logger.Debug("discovered documents", logging.FieldFiles, len(files), logging.FieldWorkingDir, workDir)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	// Each worker writes only its own slot, which keeps the order stable.
	outcomes := make([]DocumentOutcome, len(files))
	done := make([]bool, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			outcome, err := r.validateOne(groupCtx, workDir, path, opts)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			done[i] = true
			return nil
		})
	}

	waitErr := group.Wait()

	for i := range outcomes {
		if done[i] {
			result.accumulate(outcomes[i])
		}
	}

	if waitErr == nil {
		waitErr = ctx.Err()
	}
	if waitErr != nil {
		return result, fmt.Errorf("run cancelled: %w", waitErr)
	}

	logger.Debug("validation complete",
		logging.FieldDocumentsValidated, result.Stats.DocumentsValidated,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal)

	return result, nil
}

// validateOne reads and validates a single document. The returned error is
// non-nil only for cancellation.
func (r *Runner) validateOne(ctx context.Context, workDir, path string, opts Options) (DocumentOutcome, error) {
	id := DocumentID(workDir, path)
	outcome := DocumentOutcome{Path: path, ID: id}

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	content, err := readFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", id, err)
		logging.FromContext(ctx).Debug("read failed", logging.FieldPath, id, logging.FieldError, err)
		return outcome, nil
	}

	docResult, err := r.Validator.ValidateFile(ctx, id, content, opts.Config)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return outcome, ctxErr
		}
		outcome.Error = err
		return outcome, nil
	}

	outcome.Result = docResult
	return outcome, nil
}
