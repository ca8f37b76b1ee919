package main

import "fmt"

// Exit codes for the propview CLI.
const (
	ExitOK                = 0 // Everything was rendered.
	ExitInvalidArgs       = 1 // Invalid arguments, flags or config.
	ExitInvalidSnapshot   = 2 // A snapshot or script could not be loaded.
	ExitRenderFailure     = 3 // A view could not be built or written.
	ExitExpectationFailed = 4 // A replay step left the view in the wrong state.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInvalidSnapshot:
			msg = "propview: invalid snapshot"
		case ExitRenderFailure:
			msg = "propview: rendering failed"
		case ExitExpectationFailed:
			msg = "propview: replay expectation failed"
		default:
			msg = "propview: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
