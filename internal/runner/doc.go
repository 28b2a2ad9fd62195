// Package runner executes suites.
//
// ProcessRunner launches one suite's process, streams its output live while
// capturing it, and always resolves a model.SuiteResult: a missing executable,
// a nonzero exit or a timeout are outcomes, not errors.
//
// Coordinator drives a suite.Registry through a SuiteRunner strictly in
// order. The next suite starts only after the previous one has fully resolved,
// and every declared suite runs regardless of earlier failures.
package runner
