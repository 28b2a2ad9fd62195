// Package metrics records the outcome of a run as Prometheus metrics.
//
// Each run gets its own registry, so the artifact written with WriteTextfile
// describes that run and nothing else. The file is in the node_exporter
// textfile-collector format.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AndreyAkinshin/suiterun/internal/logging"
	"github.com/AndreyAkinshin/suiterun/internal/model"
)

// Namespace prefixes every metric name.
const Namespace = "suiterun"

// Suite outcome label values.
const (
	OutcomePassed     = "passed"
	OutcomeFailed     = "failed"
	OutcomeSpawnError = "spawn_error"
	OutcomeTimeout    = "timeout"
)

// Recorder holds the metrics of one run.
type Recorder struct {
	registry *prometheus.Registry
	logger   *log.Logger

	suiteDuration *prometheus.GaugeVec
	suitePassed   *prometheus.GaugeVec
	suiteExitCode *prometheus.GaugeVec
	suiteOutcomes *prometheus.CounterVec

	runSuites   *prometheus.GaugeVec
	runDuration prometheus.Gauge
	runPassed   prometheus.Gauge
	runTime     prometheus.Gauge
}

// NewRecorder creates a recorder with a fresh registry.
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		logger:   logger,
		suiteDuration: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "suite_duration_seconds",
			Help:      "Wall-clock duration of each suite",
		}, []string{"suite"}),
		suitePassed: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "suite_passed",
			Help:      "1 if the suite passed, 0 otherwise",
		}, []string{"suite"}),
		suiteExitCode: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "suite_exit_code",
			Help:      "Exit code of each suite that produced one",
		}, []string{"suite"}),
		suiteOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "suite_outcomes_total",
			Help:      "Count of suites by outcome",
		}, []string{"outcome"}),
		runSuites: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_suites",
			Help:      "Number of suites in the run by result",
		}, []string{"result"}),
		runDuration: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the whole run",
		}),
		runPassed: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_passed",
			Help:      "1 if every suite passed, 0 otherwise",
		}),
		runTime: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_timestamp_seconds",
			Help:      "Unix time the run started",
		}),
	}
}

// Outcome classifies a result for the outcome label.
func Outcome(r model.SuiteResult) string {
	switch {
	case r.Passed:
		return OutcomePassed
	case r.TimedOut:
		return OutcomeTimeout
	case r.ExitCode == nil:
		return OutcomeSpawnError
	default:
		return OutcomeFailed
	}
}

// RecordSuite records one suite result.
func (m *Recorder) RecordSuite(r model.SuiteResult) {
	outcome := Outcome(r)
	m.logger.Debug("metric set", "m", "suite", "suite", r.Name, "outcome", outcome)

	m.suiteDuration.WithLabelValues(r.Name).Set(r.Duration().Seconds())
	m.suitePassed.WithLabelValues(r.Name).Set(boolToFloat(r.Passed))
	if r.ExitCode != nil {
		m.suiteExitCode.WithLabelValues(r.Name).Set(float64(*r.ExitCode))
	}
	m.suiteOutcomes.WithLabelValues(outcome).Inc()
}

// RecordRun records every result of the summary and the run totals.
func (m *Recorder) RecordRun(s model.RunSummary) {
	for _, r := range s.Results {
		m.RecordSuite(r)
	}
	m.runSuites.WithLabelValues("total").Set(float64(s.TotalTests))
	m.runSuites.WithLabelValues("passed").Set(float64(s.PassedCount))
	m.runSuites.WithLabelValues("failed").Set(float64(s.FailedCount))
	m.runDuration.Set(s.TotalDuration().Seconds())
	m.runPassed.Set(boolToFloat(s.AllPassed))
	m.runTime.Set(float64(s.Timestamp.Unix()))
}

// Registry returns the underlying registry.
func (m *Recorder) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the recorded metrics to path, creating its directory.
func (m *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
