// Package report renders a model.RunSummary as the JSON and HTML artifacts of
// a run.
//
// The JSON document is the summary verbatim, full captures included. The HTML
// document is for people: captured output is shown as a bounded tail with ANSI
// escape sequences removed, and every value is escaped by html/template.
package report

import (
	"time"

	"github.com/AndreyAkinshin/suiterun/internal/config"
)

// Options controls rendering of the HTML report.
type Options struct {
	// Title is the document heading.
	Title string
	// ProjectName appears in the footer when set.
	ProjectName string
	// StdoutTail and StderrTail are the maximum number of characters of
	// each capture shown in the HTML report.
	StdoutTail int
	StderrTail int
	// GeneratedAt is the generation time printed in the header. Zero means
	// time.Now at render time.
	GeneratedAt time.Time
}

// DefaultOptions returns the rendering options used without a suite file.
func DefaultOptions() Options {
	return Options{
		Title:      config.DefaultReportTitle,
		StdoutTail: config.DefaultStdoutTail,
		StderrTail: config.DefaultStderrTail,
	}
}

// OptionsFromConfig builds rendering options from a loaded configuration.
// Unset values fall back to DefaultOptions.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.ProjectName = cfg.Project.Name
	if cfg.Report == nil {
		return opts
	}
	if cfg.Report.Title != "" {
		opts.Title = cfg.Report.Title
	}
	if cfg.Report.StdoutTail > 0 {
		opts.StdoutTail = cfg.Report.StdoutTail
	}
	if cfg.Report.StderrTail > 0 {
		opts.StderrTail = cfg.Report.StderrTail
	}
	return opts
}
