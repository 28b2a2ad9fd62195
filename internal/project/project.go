package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/suiterun/internal/config"
	suiterunerrors "github.com/AndreyAkinshin/suiterun/internal/errors"
	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

// Environment variables that override discovery.
const (
	ConfigEnvVar     = "SUITERUN_CONFIG"
	ReportsDirEnvVar = "SUITERUN_REPORTS_DIR"
)

// Project represents a loaded suiterun project.
type Project struct {
	Root string
	// ConfigPath is empty when the built-in suites are used.
	ConfigPath string
	Config     *config.Config
	Registry   *suite.Registry
	Warnings   []string
}

// Options control how a project is located.
type Options struct {
	// StartDir is where discovery begins. Empty means the working directory.
	StartDir string
	// ConfigPath names the suite file explicitly and skips discovery.
	ConfigPath string
	// ReportsDir overrides report.directory.
	ReportsDir string
}

// OptionsFromEnv reads SUITERUN_CONFIG and SUITERUN_REPORTS_DIR.
func OptionsFromEnv() Options {
	return Options{
		ConfigPath: os.Getenv(ConfigEnvVar),
		ReportsDir: os.Getenv(ReportsDirEnvVar),
	}
}

// Load locates and loads a project.
//
// Without a suite file anywhere above StartDir, the built-in suites run from
// StartDir. Suite file problems are config errors; an unreadable env file or
// a missing suite working directory is an environment error.
func Load(opts Options) (*Project, error) {
	start := opts.StartDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, suiterunerrors.Environment("cannot determine working directory", err)
		}
		start = cwd
	}

	p := &Project{}
	switch {
	case opts.ConfigPath != "":
		path, err := filepath.Abs(opts.ConfigPath)
		if err != nil {
			return nil, suiterunerrors.Environment("cannot resolve config path", err)
		}
		p.Root, p.ConfigPath = rootForConfig(path), path
	default:
		root, path, err := FindConfigFrom(start)
		switch {
		case errors.Is(err, ErrNoProjectRoot):
			abs, absErr := filepath.Abs(start)
			if absErr != nil {
				return nil, suiterunerrors.Environment("cannot resolve working directory", absErr)
			}
			p.Root = abs
		case err != nil:
			return nil, suiterunerrors.Environment("cannot resolve working directory", err)
		default:
			p.Root, p.ConfigPath = root, path
		}
	}

	if p.ConfigPath == "" {
		p.Config = config.Default()
	} else {
		cfg, warnings, err := config.Load(p.ConfigPath)
		if err != nil {
			return nil, suiterunerrors.Config("failed to load "+p.ConfigPath, err)
		}
		p.Config, p.Warnings = cfg, warnings
	}

	if opts.ReportsDir != "" {
		p.Config.Report.Directory = opts.ReportsDir
	}

	env, err := config.LoadEnvFile(p.Config, p.Root)
	if err != nil {
		return nil, suiterunerrors.Environment("cannot load env file", err)
	}

	reg, err := suite.FromConfig(p.Config, p.Root, env)
	if err != nil {
		return nil, suiterunerrors.Config("invalid suite", err)
	}
	for _, d := range reg.All() {
		if warning := checkWorkDir(d); warning != "" {
			p.Warnings = append(p.Warnings, warning)
		}
	}
	p.Registry = reg

	return p, nil
}

// checkWorkDir reports a suite whose working directory is unusable. The
// suite still runs and resolves as a spawn failure.
func checkWorkDir(d suite.Descriptor) string {
	info, err := os.Stat(d.WorkDir)
	switch {
	case os.IsNotExist(err):
		return fmt.Sprintf("suite %q: working directory does not exist: %s", d.Name, d.WorkDir)
	case err != nil:
		return fmt.Sprintf("suite %q: cannot access working directory: %v", d.Name, err)
	case !info.IsDir():
		return fmt.Sprintf("suite %q: working directory is not a directory: %s", d.Name, d.WorkDir)
	}
	return ""
}

// ReportsDir returns the absolute reports directory.
func (p *Project) ReportsDir() string {
	dir := p.Config.Report.Directory
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.Root, dir)
}

// MetricsPath returns the absolute metrics textfile path, or "" when metrics
// are not configured.
func (p *Project) MetricsPath() string {
	name := p.Config.Report.MetricsFile
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.ReportsDir(), name)
}

// Title returns the report and banner title.
func (p *Project) Title() string {
	return p.Config.Report.Title
}
