package errors

import (
	"errors"
	"fmt"
)

// Exit codes for hostpick
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigParse  = 2
	ExitHostNotFound = 3
	ExitLaunchFailed = 4
	ExitOptions      = 5
)

// HostpickError is the base error type for hostpick
type HostpickError struct {
	Code    int
	Message string
	Cause   error
}

func (e *HostpickError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *HostpickError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *HostpickError) ExitCode() int {
	return e.Code
}

// New creates a new HostpickError
func New(code int, message string) *HostpickError {
	return &HostpickError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HostpickError
func Wrap(code int, message string, cause error) *HostpickError {
	return &HostpickError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigParseFailed returns an error for an ssh config that failed to parse
func ConfigParseFailed(path string, cause error) *HostpickError {
	return Wrap(ExitConfigParse, fmt.Sprintf("failed to parse %s", path), cause)
}

// HostNotFound returns an error for an unknown host name
func HostNotFound(name string) *HostpickError {
	return New(ExitHostNotFound, fmt.Sprintf("host not found: %s", name))
}

// LaunchFailed returns an error for command launch failures
func LaunchFailed(cause error) *HostpickError {
	return Wrap(ExitLaunchFailed, "failed to run command", cause)
}

// TemplateError returns an error for a bad command template
func TemplateError(cause error) *HostpickError {
	return Wrap(ExitOptions, "invalid command template", cause)
}

// OptionsError returns an error for options-file issues
func OptionsError(message string, cause error) *HostpickError {
	return Wrap(ExitOptions, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var hpErr *HostpickError
	if errors.As(err, &hpErr) {
		return hpErr.ExitCode()
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
