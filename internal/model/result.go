// Package model provides the result types shared by the runner, the report
// renderer and the console presentation layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/AndreyAkinshin/suiterun/pkg/suiterun"
)

// SuiteResult is the outcome of executing one suite. It is produced exactly
// once, when the suite's process exits or fails to start, and is never
// modified afterwards.
type SuiteResult struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CommandLine string `json:"commandLine"`

	// ExitCode is nil when the process could not be spawned or was killed
	// after exceeding its timeout.
	ExitCode   *int      `json:"exitCode"`
	DurationMs int64     `json:"durationMs"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Passed bool   `json:"passed"`

	SpawnError string `json:"spawnError,omitempty"`
	TimedOut   bool   `json:"timedOut,omitempty"`
}

// NewExitResult builds the result of a process that ran to completion.
// Passed is derived from the exit code.
func NewExitResult(name, commandLine string, exitCode int, started, finished time.Time, stdout, stderr string) SuiteResult {
	code := exitCode
	return SuiteResult{
		Name:        name,
		CommandLine: commandLine,
		ExitCode:    &code,
		DurationMs:  finished.Sub(started).Milliseconds(),
		StartedAt:   started,
		FinishedAt:  finished,
		Stdout:      stdout,
		Stderr:      stderr,
		Passed:      exitCode == 0,
	}
}

// NewSpawnFailure builds the result of a suite whose process never produced
// an exit code.
func NewSpawnFailure(name, commandLine string, cause string, started, finished time.Time) SuiteResult {
	return SuiteResult{
		Name:        name,
		CommandLine: commandLine,
		DurationMs:  finished.Sub(started).Milliseconds(),
		StartedAt:   started,
		FinishedAt:  finished,
		Passed:      false,
		SpawnError:  cause,
	}
}

// Duration returns the wall-clock duration of the suite.
func (r SuiteResult) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Status returns "PASSED" or "FAILED".
func (r SuiteResult) Status() string {
	if r.Passed {
		return StatusPassed
	}
	return StatusFailed
}

// Status labels used by both the console and the HTML report.
const (
	StatusPassed = "PASSED"
	StatusFailed = "FAILED"
)

// RunSummary aggregates every SuiteResult of one run. Results are in
// execution order, which is the declaration order of the registry.
type RunSummary struct {
	RunID           string        `json:"runId"`
	Timestamp       time.Time     `json:"timestamp"`
	TotalDurationMs int64         `json:"totalDurationMs"`
	Results         []SuiteResult `json:"results"`
	TotalTests      int           `json:"totalTests"`
	PassedCount     int           `json:"passedCount"`
	FailedCount     int           `json:"failedCount"`
	AllPassed       bool          `json:"allPassed"`
}

// Summarize computes the RunSummary for a completed run. The results slice is
// copied so later appends by the caller cannot leak into the summary.
func Summarize(results []SuiteResult, started, finished time.Time) RunSummary {
	s := RunSummary{
		RunID:           uuid.NewString(),
		Timestamp:       started,
		TotalDurationMs: finished.Sub(started).Milliseconds(),
		Results:         make([]SuiteResult, len(results)),
		TotalTests:      len(results),
	}
	copy(s.Results, results)

	for _, r := range results {
		if r.Passed {
			s.PassedCount++
		} else {
			s.FailedCount++
		}
	}
	s.AllPassed = s.FailedCount == 0
	return s
}

// TotalDuration returns the wall-clock duration of the run.
func (s RunSummary) TotalDuration() time.Duration {
	return time.Duration(s.TotalDurationMs) * time.Millisecond
}

// ExitCode maps the summary to the process exit status: success only when
// every suite passed.
func (s RunSummary) ExitCode() int {
	if s.AllPassed {
		return suiterun.ExitSuccess
	}
	return suiterun.ExitFailure
}
