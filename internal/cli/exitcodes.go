package cli

import "errors"

// Exit codes for docstyle.
const (
	// ExitSuccess indicates no failing findings.
	ExitSuccess = 0

	// ExitFindings indicates error findings, or warnings under --strict.
	ExitFindings = 1

	// ExitFatal indicates a configuration error, an I/O failure, or any
	// other error that prevented a complete check.
	ExitFatal = 2
)

// ErrFindings is returned when the check completed with failing findings.
// It only signals the exit code and is not printed.
var ErrFindings = errors.New("style findings")

// ExitCode maps the error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFindings):
		return ExitFindings
	default:
		return ExitFatal
	}
}
