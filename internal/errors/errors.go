package errors

import (
	"errors"
	"fmt"
)

// Exit codes for devserver
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitPortError    = 3
	ExitServerError  = 4
	ExitRenderError  = 5
)

// DevError is the base error type for devserver
type DevError struct {
	Code    int
	Message string
	Cause   error
}

func (e *DevError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DevError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *DevError) ExitCode() int {
	return e.Code
}

// New creates a new DevError
func New(code int, message string) *DevError {
	return &DevError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a DevError
func Wrap(code int, message string, cause error) *DevError {
	return &DevError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *DevError {
	return Wrap(ExitConfigError, message, cause)
}

// PortUnavailable returns an error when no usable port could be found
func PortUnavailable(port int, cause error) *DevError {
	return Wrap(ExitPortError, fmt.Sprintf("no usable port starting at %d", port), cause)
}

// ServerFailed returns an error for server startup or serve failures
func ServerFailed(cause error) *DevError {
	return Wrap(ExitServerError, "server failed", cause)
}

// RenderFailed returns an error for icon rendering failures
func RenderFailed(cause error) *DevError {
	return Wrap(ExitRenderError, "favicon rendering failed", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *DevError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var devErr *DevError
	if errors.As(err, &devErr) {
		return devErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
