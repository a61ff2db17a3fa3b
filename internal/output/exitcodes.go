// Package output provides styled terminal output and exit-code carrying errors for clocky.
package output

import "errors"

// Exit codes used by clocky itself. A failed remote command exits with
// whatever status the remote side reported instead.
//
//	0 = Success
//	1 = Failure (bad input, malformed time, ssh could not be launched)
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error

	// Silent errors set the exit code without printing anything. Used when
	// the remote tool already wrote its own diagnostics to the terminal.
	Silent bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: malformed time input, bad day offsets, unreadable answers.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithCause creates an error for local execution failures
// (exit code 1), such as ssh missing from PATH.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewRemoteError creates an error for a remote command that exited non-zero.
// The process exits with the same code.
func NewRemoteError(code int, message string, cause error) *ExitError {
	if code <= 0 {
		code = ExitFailure
	}
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Reword replaces the message of err while keeping its exit code.
// Errors without a code are treated as failures (exit code 1).
func Reword(err error, message string) *ExitError {
	code := GetExitCode(err)
	if code == ExitSuccess {
		code = ExitFailure
	}
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Quiet returns a copy of err that exits with the same code but prints nothing.
func Quiet(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		quiet := *exitErr
		quiet.Silent = true
		return &quiet
	}
	return &ExitError{
		Code:    ExitFailure,
		Message: err.Error(),
		Cause:   err,
		Silent:  true,
	}
}

// IsSilent reports whether err should be swallowed by the error printer.
func IsSilent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Silent
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
