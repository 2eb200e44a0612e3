package cli

import (
	"errors"

	"github.com/quallab/rustqual/pkg/config"
	"github.com/quallab/rustqual/pkg/report"
)

// Exit codes for rustqual.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates the check completed and found issues.
	ExitIssuesFound = 1

	// ExitConfigError indicates invalid configuration or CLI input.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrUnknownAnalyzer),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, report.ErrUnknownFormat):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
