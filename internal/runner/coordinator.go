package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AndreyAkinshin/suiterun/internal/logging"
	"github.com/AndreyAkinshin/suiterun/internal/model"
	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

// Observer is notified as suites start and finish. It is how the console
// presentation follows a run without the coordinator writing output itself.
// Calls happen on the coordinator's goroutine, in order.
type Observer interface {
	SuiteStarted(index, total int, d suite.Descriptor)
	SuiteFinished(index, total int, r model.SuiteResult)
}

// Coordinator runs every suite of a registry once, sequentially.
// Create one per run; it holds no state between runs.
type Coordinator struct {
	registry *suite.Registry
	runner   SuiteRunner
	observer Observer
	logger   *log.Logger
	now      func() time.Time
}

// NewCoordinator creates a coordinator for the registry.
func NewCoordinator(registry *suite.Registry, runner SuiteRunner) *Coordinator {
	return &Coordinator{
		registry: registry,
		runner:   runner,
		logger:   logging.Discard(),
		now:      time.Now,
	}
}

// SetObserver registers an observer. Nil removes it.
func (c *Coordinator) SetObserver(o Observer) {
	c.observer = o
}

// SetLogger sets the diagnostic logger.
func (c *Coordinator) SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	c.logger = l
}

// Run executes all suites in declaration order and returns the summary.
//
// A failing suite never stops the run. If ctx is canceled, suites that have
// not started are recorded as failed without being launched, so the summary
// still covers every declared suite.
func (c *Coordinator) Run(ctx context.Context) model.RunSummary {
	suites := c.registry.All()
	total := len(suites)
	results := make([]model.SuiteResult, 0, total)

	started := c.now()
	for i, d := range suites {
		var res model.SuiteResult
		if err := ctx.Err(); err != nil {
			at := c.now()
			res = model.NewSpawnFailure(d.Name, d.CommandLine(), fmt.Sprintf("not started: %v", err), at, at)
			res.Description = d.Description
			c.logger.Warn("skipping suite after cancellation", "suite", d.Name)
		} else {
			if c.observer != nil {
				c.observer.SuiteStarted(i, total, d)
			}
			res = c.runner.Run(ctx, d)
		}

		results = append(results, res)
		if c.observer != nil {
			c.observer.SuiteFinished(i, total, res)
		}
	}

	summary := model.Summarize(results, started, c.now())
	c.logger.Info("run complete",
		"run_id", summary.RunID,
		"passed", summary.PassedCount,
		"failed", summary.FailedCount,
		"duration", summary.TotalDuration(),
	)
	return summary
}
