// Package suiterun provides public constants for tools that invoke suiterun
// and gate on its exit status (CI pipelines, wrapper scripts).
package suiterun

// Exit codes returned by the suiterun CLI.
// A CI gate should treat ExitFailure as "tests failed" and any other nonzero
// value as "the orchestrator itself is broken".
const (
	// ExitSuccess indicates every declared suite passed.
	ExitSuccess = 0

	// ExitFailure indicates at least one suite failed or could not be spawned.
	ExitFailure = 1

	// ExitConfigError indicates an invalid suite file (parse or schema failure).
	ExitConfigError = 2

	// ExitEnvError indicates the environment could not support a run
	// (unreadable working directory, missing env file, etc.).
	ExitEnvError = 3

	// ExitReportError indicates the suites ran but the report artifacts could
	// not be written, so the run's findings were lost.
	ExitReportError = 4
)
