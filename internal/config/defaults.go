package config

// Default configuration values.
const (
	DefaultReportsDirectory = "tests/reports"
	DefaultJSONFile         = "comprehensive_report.json"
	DefaultHTMLFile         = "comprehensive_report.html"
	DefaultReportTitle      = "Comprehensive Test Report"

	// Tail caps for captured output in the HTML report.
	DefaultStdoutTail = 5000
	DefaultStderrTail = 2000
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	r := cfg.Report
	if r.Directory == "" {
		r.Directory = DefaultReportsDirectory
	}
	if r.JSONFile == "" {
		r.JSONFile = DefaultJSONFile
	}
	if r.HTMLFile == "" {
		r.HTMLFile = DefaultHTMLFile
	}
	if r.StdoutTail == 0 {
		r.StdoutTail = DefaultStdoutTail
	}
	if r.StderrTail == 0 {
		r.StderrTail = DefaultStderrTail
	}
	if r.Title == "" {
		r.Title = DefaultReportTitle
		if cfg.Project.Title != "" {
			r.Title = cfg.Project.Title + " - " + DefaultReportTitle
		}
	}
}
