package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AndreyAkinshin/suiterun/internal/logging"
	"github.com/AndreyAkinshin/suiterun/internal/model"
	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

// waitDelay bounds how long Wait keeps reading output after the child is
// gone or killed. Grandchildren that inherited the pipes (browsers spawned by
// an E2E tool, for example) would otherwise keep Wait blocked forever.
const waitDelay = 5 * time.Second

// SuiteRunner executes one suite and returns its result.
type SuiteRunner interface {
	Run(ctx context.Context, d suite.Descriptor) model.SuiteResult
}

// ProcessRunner runs suites as child processes.
type ProcessRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// NewProcessRunner creates a runner that mirrors child output to stdout and
// stderr as it is produced. Nil writers discard the live copy; the capture is
// unaffected.
func NewProcessRunner(stdout, stderr io.Writer, logger *log.Logger) *ProcessRunner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if logger == nil {
		logger = logging.Discard()
	}
	// One lock for both streams: callers may pass the same writer twice.
	mu := &sync.Mutex{}
	return &ProcessRunner{
		stdout: &liveWriter{mu: mu, w: stdout},
		stderr: &liveWriter{mu: mu, w: stderr},
		logger: logger,
	}
}

// Run executes the suite and blocks until its process exits and both output
// streams are drained.
func (r *ProcessRunner) Run(ctx context.Context, d suite.Descriptor) model.SuiteResult {
	commandLine := d.CommandLine()

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if d.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, d.Timeout)
	}
	defer cancel()

	cmd := buildCommand(runCtx, d)
	cmd.Dir = d.WorkDir
	cmd.Env = mergeEnv(os.Environ(), d.Env)
	cmd.WaitDelay = waitDelay

	var stdout, stderr captureBuffer
	cmd.Stdout = io.MultiWriter(&stdout, r.stdout)
	cmd.Stderr = io.MultiWriter(&stderr, r.stderr)

	r.logger.Debug("starting suite", "suite", d.Name, "command", commandLine, "dir", cmd.Dir)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		finished := time.Now()
		r.logger.Warn("suite could not be spawned", "suite", d.Name, "err", err)
		res := model.NewSpawnFailure(d.Name, commandLine, fmt.Sprintf("could not start: %v", err), started, finished)
		res.Description = d.Description
		return res
	}

	waitErr := cmd.Wait()
	finished := time.Now()

	res := r.resolve(ctx, runCtx, d, commandLine, cmd, waitErr, started, finished, stdout.String(), stderr.String())
	res.Description = d.Description
	r.logger.Debug("suite finished", "suite", d.Name, "passed", res.Passed, "duration", finished.Sub(started))
	return res
}

// resolve turns the outcome of Wait into a result.
func (r *ProcessRunner) resolve(
	parent, runCtx context.Context,
	d suite.Descriptor,
	commandLine string,
	cmd *exec.Cmd,
	waitErr error,
	started, finished time.Time,
	stdout, stderr string,
) model.SuiteResult {
	// The deadline fired and the parent is still live: this suite's own timeout.
	if d.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && parent.Err() == nil {
		r.logger.Warn("suite timed out", "suite", d.Name, "timeout", d.Timeout)
		res := model.NewSpawnFailure(d.Name, commandLine, fmt.Sprintf("timed out after %s", d.Timeout), started, finished)
		res.TimedOut = true
		res.Stdout, res.Stderr = stdout, stderr
		return res
	}

	if err := parent.Err(); err != nil {
		res := model.NewSpawnFailure(d.Name, commandLine, fmt.Sprintf("interrupted: %v", err), started, finished)
		res.Stdout, res.Stderr = stdout, stderr
		return res
	}

	if cmd.ProcessState == nil {
		res := model.NewSpawnFailure(d.Name, commandLine, fmt.Sprintf("wait failed: %v", waitErr), started, finished)
		res.Stdout, res.Stderr = stdout, stderr
		return res
	}

	code := cmd.ProcessState.ExitCode()
	res := model.NewExitResult(d.Name, commandLine, code, started, finished, stdout, stderr)

	var exitErr *exec.ExitError
	switch {
	case code == -1:
		// Killed by a signal; Go reports no exit status.
		res.SpawnError = fmt.Sprintf("terminated: %s", cmd.ProcessState.String())
	case waitErr != nil && !errors.As(waitErr, &exitErr):
		// The process exited, but copying its output failed or outlived waitDelay.
		res.SpawnError = waitErr.Error()
	}
	return res
}

// buildCommand creates the exec.Cmd for a descriptor. Shell suites run
// through sh -c (PowerShell on Windows); others are executed directly.
func buildCommand(ctx context.Context, d suite.Descriptor) *exec.Cmd {
	if !d.Shell {
		return exec.CommandContext(ctx, d.Command, d.Args...)
	}
	if runtime.GOOS == "windows" {
		return buildWindowsShellCommand(ctx, d.PowerShellLine())
	}
	return exec.CommandContext(ctx, "sh", "-c", d.ShellLine())
}

// buildWindowsShellCommand creates a PowerShell command using the full path
// so a shim earlier in PATH cannot intercept it.
func buildWindowsShellCommand(ctx context.Context, cmdStr string) *exec.Cmd {
	systemRoot := os.Getenv("SYSTEMROOT")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	powershellPath := filepath.Join(systemRoot, "System32", "WindowsPowerShell", "v1.0", "powershell.exe")
	return exec.CommandContext(ctx, powershellPath, "-NoProfile", "-NonInteractive", "-Command", cmdStr)
}

// mergeEnv appends extra entries to the inherited environment in key order.
// exec uses the last value for duplicate keys, so extra wins.
func mergeEnv(base []string, extra map[string]string) []string {
	env := make([]string, 0, len(base)+len(extra))
	env = append(env, base...)

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}

// captureBuffer accumulates one output channel verbatim.
type captureBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *captureBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *captureBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// liveWriter forwards to the console and swallows write errors. A closed
// terminal must not stop the capture or break the child's pipe.
type liveWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *liveWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(p)
	return len(p), nil
}
