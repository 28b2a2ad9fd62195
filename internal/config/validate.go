package config

import (
	"fmt"
	"time"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the semantic rules the schema cannot express.
func Validate(cfg *Config) error {
	if len(cfg.Suites) == 0 {
		return &ValidationError{Field: "suites", Message: "at least one suite is required"}
	}

	seen := make(map[string]int, len(cfg.Suites))
	for i, s := range cfg.Suites {
		field := fmt.Sprintf("suites[%d]", i)
		if s.Name == "" {
			return &ValidationError{Field: field + ".name", Message: "is required"}
		}
		if prev, ok := seen[s.Name]; ok {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate suite name %q (also suites[%d])", s.Name, prev),
			}
		}
		seen[s.Name] = i

		if err := validateSuite(field, s); err != nil {
			return err
		}
	}

	if cfg.Report != nil {
		if cfg.Report.StdoutTail < 0 {
			return &ValidationError{Field: "report.stdout_tail", Message: "must not be negative"}
		}
		if cfg.Report.StderrTail < 0 {
			return &ValidationError{Field: "report.stderr_tail", Message: "must not be negative"}
		}
	}
	return nil
}

func validateSuite(field string, s SuiteConfig) error {
	switch {
	case s.Command == "" && s.Run == "":
		return &ValidationError{Field: field, Message: `one of "command" or "run" is required`}
	case s.Command != "" && s.Run != "":
		return &ValidationError{Field: field, Message: `"command" and "run" are mutually exclusive`}
	case s.Run != "" && len(s.Args) > 0:
		return &ValidationError{Field: field + ".args", Message: `cannot be combined with "run"`}
	}

	if _, err := ParseTimeout(s.Timeout); err != nil {
		return &ValidationError{Field: field + ".timeout", Message: err.Error()}
	}
	return nil
}

// ParseTimeout parses a suite timeout. An empty string means no timeout.
func ParseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("must not be negative, got %q", s)
	}
	return d, nil
}
