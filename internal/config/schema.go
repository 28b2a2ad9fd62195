// Package config provides loading and validation of the suite file
// (.suiterun/suites.json, .yaml/.yml or .toml).
package config

// Config represents the complete suite file.
type Config struct {
	Project ProjectConfig     `json:"project"`
	Report  *ReportConfig     `json:"report,omitempty"`
	EnvFile string            `json:"env_file,omitempty"`
	Vars    map[string]string `json:"vars,omitempty"`
	Suites  []SuiteConfig     `json:"suites"`
}

// ProjectConfig contains metadata shown in the banner and the HTML report.
type ProjectConfig struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// ReportConfig controls where artifacts go and how much captured output the
// HTML report shows. The JSON report always keeps the full capture.
type ReportConfig struct {
	Directory   string `json:"directory,omitempty"`
	JSONFile    string `json:"json_file,omitempty"`
	HTMLFile    string `json:"html_file,omitempty"`
	MetricsFile string `json:"metrics_file,omitempty"`
	Title       string `json:"title,omitempty"`
	StdoutTail  int    `json:"stdout_tail,omitempty"`
	StderrTail  int    `json:"stderr_tail,omitempty"`
}

// SuiteConfig declares one suite. Exactly one of Command or Run must be set:
// Command + Args is the exec form, Run is a single command line that is split
// into words (or handed to the shell when Shell is true).
type SuiteConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Command     string            `json:"command,omitempty"`
	Args        []string          `json:"args,omitempty"`
	Run         string            `json:"run,omitempty"`
	Cwd         string            `json:"cwd,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
	Shell       bool              `json:"shell,omitempty"`
	Timeout     string            `json:"timeout,omitempty"`
}
