package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSuiterunError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SuiterunError
		expected string
	}{
		{
			name:     "message only",
			err:      &SuiterunError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with suite",
			err:      &SuiterunError{Suite: "pa11y", Message: "command is required"},
			expected: "[pa11y] command is required",
		},
		{
			name:     "with cause",
			err:      &SuiterunError{Message: "write report", Cause: errors.New("disk full")},
			expected: "write report: disk full",
		},
		{
			name:     "with suite and cause",
			err:      &SuiterunError{Suite: "e2e", Message: "bad run string", Cause: errors.New("unterminated quote")},
			expected: "[e2e] bad run string: unterminated quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSuiterunError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &SuiterunError{Message: "wrapper", Cause: cause}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the cause")
	}

	errNoCause := &SuiterunError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestSuiterunError_ExitCode(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindRuntime, ExitRuntimeError},
		{KindConfig, ExitConfigError},
		{KindValidation, ExitConfigError},
		{KindNotFound, ExitConfigError},
		{KindEnvironment, ExitEnvironmentError},
		{KindReport, ExitReportError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("kind_%d", tt.kind), func(t *testing.T) {
			err := &SuiterunError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	if e := New("x"); e.Kind != KindRuntime {
		t.Errorf("New().Kind = %v, want KindRuntime", e.Kind)
	}
	if e := Newf("x %d", 1); e.Message != "x 1" {
		t.Errorf("Newf().Message = %q", e.Message)
	}
	if e := Config("bad", cause); e.Kind != KindConfig || e.Cause != cause {
		t.Errorf("Config() = %+v", e)
	}
	if e := Configf("bad %s", "field"); e.Message != "bad field" || e.Kind != KindConfig {
		t.Errorf("Configf() = %+v", e)
	}
	if e := Environment("env", cause); e.Kind != KindEnvironment {
		t.Errorf("Environment().Kind = %v", e.Kind)
	}
	if e := Report("report", cause); e.Kind != KindReport {
		t.Errorf("Report().Kind = %v", e.Kind)
	}
	if e := Wrap(cause, "ctx"); e.Cause != cause {
		t.Errorf("Wrap().Cause = %v", e.Cause)
	}
	if e := SuiteError("e2e", "bad"); e.Suite != "e2e" || e.Kind != KindValidation {
		t.Errorf("SuiteError() = %+v", e)
	}
	if e := NotFound("config file", "x.json"); e.Message != "config file not found: x.json" {
		t.Errorf("NotFound().Message = %q", e.Message)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("plain"), ExitRuntimeError},
		{"config", Configf("bad"), ExitConfigError},
		{"report", Report("write", nil), ExitReportError},
		{"wrapped report", fmt.Errorf("outer: %w", Report("write", nil)), ExitReportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Report("write", nil))
	if !IsKind(err, KindReport) {
		t.Error("IsKind(KindReport) = false, want true")
	}
	if IsKind(err, KindConfig) {
		t.Error("IsKind(KindConfig) = true, want false")
	}
	if IsKind(errors.New("plain"), KindRuntime) {
		t.Error("IsKind on plain error = true, want false")
	}
}
