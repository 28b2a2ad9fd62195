// Package logging configures the diagnostic logger. Diagnostics go to stderr
// and stay quiet by default so they never mix with the live suite output a
// human is watching; raise SUITERUN_LOG_LEVEL to see them.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// LevelEnvVar selects the diagnostic log level (debug, info, warn, error, fatal).
const LevelEnvVar = "SUITERUN_LOG_LEVEL"

// DefaultLevel is used when LevelEnvVar is unset or unrecognized.
const DefaultLevel = log.WarnLevel

// ParseLevel converts a level name to log.Level, falling back to
// DefaultLevel for names charmbracelet/log does not know.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "suiterun",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// FromEnv creates a logger on w honoring SUITERUN_LOG_LEVEL. A nil w means
// stderr.
func FromEnv(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w, ParseLevel(os.Getenv(LevelEnvVar)))
}

// Discard returns a logger that drops everything. Used when a component is
// constructed without a logger.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
