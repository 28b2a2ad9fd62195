// Package errors provides structured error types and exit codes for suiterun.
//
// Only orchestrator-level failures are errors. A suite that exits nonzero or
// cannot be spawned is recorded in its model.SuiteResult and never surfaces
// through this package.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes. Mirrored publicly by pkg/suiterun.
const (
	ExitSuccess          = 0 // Every suite passed
	ExitRuntimeError     = 1 // At least one suite failed
	ExitConfigError      = 2 // Invalid suite file
	ExitEnvironmentError = 3 // Environment cannot support a run
	ExitReportError      = 4 // Report artifacts could not be written
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
	KindReport
)

// SuiterunError is the base error type for suiterun.
type SuiterunError struct {
	Kind    ErrorKind
	Message string
	Suite   string // Suite name if applicable
	Cause   error  // Underlying error
}

func (e *SuiterunError) Error() string {
	msg := e.Message
	if e.Suite != "" {
		msg = fmt.Sprintf("[%s] %s", e.Suite, e.Message)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *SuiterunError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *SuiterunError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation, KindNotFound:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	case KindReport:
		return ExitReportError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *SuiterunError {
	return &SuiterunError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *SuiterunError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string, cause error) *SuiterunError {
	return &SuiterunError{
		Kind:    KindConfig,
		Message: message,
		Cause:   cause,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *SuiterunError {
	return Config(fmt.Sprintf(format, args...), nil)
}

// Environment creates a new environment error.
func Environment(message string, cause error) *SuiterunError {
	return &SuiterunError{
		Kind:    KindEnvironment,
		Message: message,
		Cause:   cause,
	}
}

// Report creates an error for a failed artifact write.
func Report(message string, cause error) *SuiterunError {
	return &SuiterunError{
		Kind:    KindReport,
		Message: message,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *SuiterunError {
	return &SuiterunError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// SuiteError creates an error scoped to a single suite.
func SuiteError(suite, message string) *SuiterunError {
	return &SuiterunError{
		Kind:    KindValidation,
		Suite:   suite,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *SuiterunError {
	return &SuiterunError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *SuiterunError
	if errors.As(err, &se) {
		return se.ExitCode()
	}
	return ExitRuntimeError
}

// IsKind reports whether err is or wraps a SuiterunError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SuiterunError
	return errors.As(err, &se) && se.Kind == kind
}
