/*
PURPOSE:
  Carries exit codes from command RunE functions to main.
  Keeps the 0/1/2 convention in one place.

REQUIREMENTS:
  User-specified:
  - 0 = no failing case under the active policy.
  - 1 = at least one failing case, or a run that died mid-suite.
  - 2 = setup error: missing binary or suite, malformed perft suite,
    unusable flags.

  Implementation-discovered:
  - Cobra's own errors (unknown flags etc.) carry no code; main maps
    anything untagged to the failure code.

ARCHITECTURE INTEGRATION:
  - Produced by: every subcommand
  - Consumed by: cmd/rook-runner/main.go

ERROR HANDLING:
  - ExitError wraps the underlying error so errors.As/Is still work.

IMPLEMENTATION RULES:
  - Subcommands never call os.Exit; they return and main decides.

USAGE:
  return cli.WrapExitError(cli.ExitSetupError, "load suite", err)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - cmd/rook-runner/main.go

MAINTENANCE:
  - None expected; three codes have been enough for every flavor.
*/

package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
const (
	ExitSuccess    = 0 // no failing case under the active policy
	ExitFailure    = 1 // at least one failing case, or the run aborted
	ExitSetupError = 2 // missing binary/file, malformed suite, bad flags
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error carries no code of its own.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
