// Package mocks provides shared test doubles for suiterun packages.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/AndreyAkinshin/suiterun/internal/model"
	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

// outcome is the scripted behavior for one suite.
type outcome struct {
	exitCode   int
	stdout     string
	stderr     string
	spawnError string
	delay      time.Duration
}

// Runner implements runner.SuiteRunner with scripted outcomes.
// Suites without a script exit 0 with no output.
// Use NewRunner() to create instances with a fluent builder API.
type Runner struct {
	outcomes map[string]outcome

	// RunFunc, when set, replaces the scripted outcome entirely.
	RunFunc func(ctx context.Context, d suite.Descriptor) model.SuiteResult

	mu            sync.Mutex
	runOrder      []string
	active        int
	maxConcurrent int
}

// NewRunner creates a mock runner with no scripted outcomes.
func NewRunner() *Runner {
	return &Runner{outcomes: make(map[string]outcome)}
}

// WithExit scripts a suite to exit with code and the given output.
func (m *Runner) WithExit(name string, code int, stdout, stderr string) *Runner {
	m.outcomes[name] = outcome{exitCode: code, stdout: stdout, stderr: stderr}
	return m
}

// WithSpawnError scripts a suite whose process cannot be started.
func (m *Runner) WithSpawnError(name, cause string) *Runner {
	m.outcomes[name] = outcome{spawnError: cause}
	return m
}

// WithDelay makes a suite take at least d before resolving.
func (m *Runner) WithDelay(name string, d time.Duration) *Runner {
	o := m.outcomes[name]
	o.delay = d
	m.outcomes[name] = o
	return m
}

// WithRunFunc sets the function called by Run.
func (m *Runner) WithRunFunc(fn func(ctx context.Context, d suite.Descriptor) model.SuiteResult) *Runner {
	m.RunFunc = fn
	return m
}

// Run implements runner.SuiteRunner.
func (m *Runner) Run(ctx context.Context, d suite.Descriptor) model.SuiteResult {
	m.mu.Lock()
	m.runOrder = append(m.runOrder, d.Name)
	m.active++
	if m.active > m.maxConcurrent {
		m.maxConcurrent = m.active
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.active--
		m.mu.Unlock()
	}()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, d)
	}

	o := m.outcomes[d.Name]
	started := time.Now()
	if o.delay > 0 {
		time.Sleep(o.delay)
	}
	finished := time.Now()

	var res model.SuiteResult
	if o.spawnError != "" {
		res = model.NewSpawnFailure(d.Name, d.CommandLine(), o.spawnError, started, finished)
	} else {
		res = model.NewExitResult(d.Name, d.CommandLine(), o.exitCode, started, finished, o.stdout, o.stderr)
	}
	res.Description = d.Description
	return res
}

// Test inspection methods

// RunOrder returns the suite names in the order Run was called.
func (m *Runner) RunOrder() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.runOrder))
	copy(result, m.runOrder)
	return result
}

// RunCount returns the number of times Run was called.
func (m *Runner) RunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.runOrder)
}

// MaxConcurrent returns the highest number of Run calls that were in flight
// at the same time.
func (m *Runner) MaxConcurrent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxConcurrent
}

// Reset clears execution tracking state.
func (m *Runner) Reset() {
	m.mu.Lock()
	m.runOrder = nil
	m.active = 0
	m.maxConcurrent = 0
	m.mu.Unlock()
}
