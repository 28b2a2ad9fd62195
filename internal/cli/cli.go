// Package cli provides the command-line entry point for suiterun.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AndreyAkinshin/suiterun/internal/errors"
	"github.com/AndreyAkinshin/suiterun/internal/output"
	"github.com/AndreyAkinshin/suiterun/internal/project"
)

// Version is set at build time.
var Version = "dev"

// QuietEnvVar suppresses the banner, suite headers and passing-suite lines.
const QuietEnvVar = "SUITERUN_QUIET"

// Run executes the CLI with the given arguments and returns an exit code.
// SIGINT and SIGTERM stop the current suite; remaining suites are recorded as
// not started and the reports are still written.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := output.New()
	w.SetQuiet(os.Getenv(QuietEnvVar) != "")
	return RunContext(ctx, args, w, project.OptionsFromEnv())
}

// RunContext is Run with explicit dependencies.
func RunContext(ctx context.Context, args []string, w *output.Writer, opts project.Options) int {
	if len(args) == 0 {
		return cmdRun(ctx, w, opts)
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(w, opts)
		return errors.ExitSuccess
	case "--version", "version":
		w.Println("suiterun %s", Version)
		return errors.ExitSuccess
	case "run":
		if len(args) > 1 {
			w.ErrorPrefix("run takes no arguments, got %q", args[1])
			return errors.ExitConfigError
		}
		return cmdRun(ctx, w, opts)
	default:
		w.ErrorPrefix("unknown command %q", args[0])
		w.Errorln("  run 'suiterun help' for usage")
		return errors.ExitConfigError
	}
}

const helpWidth = 22

func printUsage(w *output.Writer, opts project.Options) {
	w.HelpTitle("suiterun - multi-tool test orchestration and reporting")

	w.HelpSection("Usage:")
	w.HelpUsage("suiterun            Run every suite in order and write the reports")

	w.HelpSection("Commands:")
	w.HelpCommand("run", "Same as no arguments", helpWidth)
	w.HelpCommand("help", "Show this help", helpWidth)
	w.HelpCommand("version", "Show version information", helpWidth)

	// Context-aware: list the suites that would run here.
	if proj, err := project.Load(opts); err == nil {
		source := proj.ConfigPath
		if source == "" {
			source = "built-in defaults"
		}
		w.HelpSection(fmt.Sprintf("Suites (%s):", source))
		for _, d := range proj.Registry.All() {
			w.HelpCommand(d.Name, d.Description, helpWidth)
		}
	}

	w.HelpSection("Suite file:")
	w.HelpText(".suiterun/suites.json, .yaml, .yml or .toml, searched upwards from the working directory")

	w.HelpSection("Environment:")
	w.HelpEnvVar(project.ConfigEnvVar+"=<path>", "Use this suite file instead of searching", helpWidth)
	w.HelpEnvVar(project.ReportsDirEnvVar+"=<dir>", "Write reports to this directory", helpWidth)
	w.HelpEnvVar("SUITERUN_LOG_LEVEL=<lvl>", "Diagnostic log level (debug, info, warn, error)", helpWidth)
	w.HelpEnvVar(QuietEnvVar+"=1", "Only print failures and the summary", helpWidth)
	w.HelpEnvVar(output.NoColorEnvVar+"=1", "Disable colored output", helpWidth)

	w.HelpSection("Exit codes:")
	w.HelpCommand("0", "All suites passed", helpWidth)
	w.HelpCommand("1", "At least one suite failed", helpWidth)
	w.HelpCommand("2", "Invalid suite file or usage", helpWidth)
	w.HelpCommand("3", "Environment error (env file, current directory)", helpWidth)
	w.HelpCommand("4", "Reports could not be written", helpWidth)
	w.Println("")
}
