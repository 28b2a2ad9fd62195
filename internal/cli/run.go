package cli

import (
	"context"

	"github.com/AndreyAkinshin/suiterun/internal/errors"
	"github.com/AndreyAkinshin/suiterun/internal/logging"
	"github.com/AndreyAkinshin/suiterun/internal/metrics"
	"github.com/AndreyAkinshin/suiterun/internal/output"
	"github.com/AndreyAkinshin/suiterun/internal/project"
	"github.com/AndreyAkinshin/suiterun/internal/report"
	"github.com/AndreyAkinshin/suiterun/internal/runner"
)

// cmdRun loads the project, runs every suite and writes the reports.
func cmdRun(ctx context.Context, w *output.Writer, opts project.Options) int {
	logger := logging.FromEnv(w.Stderr())

	proj, err := project.Load(opts)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	for _, warning := range proj.Warnings {
		w.Warning("%s", warning)
	}
	logger.Debug("project loaded", "root", proj.Root, "config", proj.ConfigPath, "suites", proj.Registry.Len())

	w.Banner(proj.Title(), proj.Registry.All())

	pr := runner.NewProcessRunner(w.Stdout(), w.Stderr(), logger)
	coord := runner.NewCoordinator(proj.Registry, pr)
	coord.SetObserver(w)
	coord.SetLogger(logger)

	summary := coord.Run(ctx)

	w.Summary(summary)

	cfg := proj.Config.Report
	target := report.Target{Dir: proj.ReportsDir(), JSONFile: cfg.JSONFile, HTMLFile: cfg.HTMLFile}
	paths, err := report.Write(target, summary, report.OptionsFromConfig(proj.Config))
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	written := []string{paths.JSON, paths.HTML}

	if path := proj.MetricsPath(); path != "" {
		rec := metrics.NewRecorder(logger)
		rec.RecordRun(summary)
		if err := rec.WriteTextfile(path); err != nil {
			err = errors.Report("cannot write metrics", err)
			w.ErrorPrefix("%v", err)
			return errors.GetExitCode(err)
		}
		written = append(written, path)
	}

	w.ReportPaths(written...)

	if summary.AllPassed {
		w.FinalSuccess("ALL TESTS PASSED (%d of %d test suites)", summary.PassedCount, summary.TotalTests)
	} else {
		w.FinalFailure("SOME TESTS FAILED (%d of %d test suites failed)", summary.FailedCount, summary.TotalTests)
	}
	return summary.ExitCode()
}
