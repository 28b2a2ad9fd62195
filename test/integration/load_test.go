package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/AndreyAkinshin/suiterun/internal/errors"
	"github.com/AndreyAkinshin/suiterun/internal/project"
)

func TestMinimalProject(t *testing.T) {
	t.Parallel()

	proj, err := project.Load(project.Options{StartDir: fixture("minimal")})
	if err != nil {
		t.Fatalf("failed to load minimal project: %v", err)
	}

	if proj.Config.Project.Name != "minimal-project" {
		t.Errorf("expected project name %q, got %q", "minimal-project", proj.Config.Project.Name)
	}
	if proj.Registry.Len() != 1 {
		t.Errorf("expected 1 suite, got %d", proj.Registry.Len())
	}
}

func TestYAMLProject(t *testing.T) {
	t.Parallel()
	root := fixture("yaml")

	proj, err := project.Load(project.Options{StartDir: filepath.Join(root, ".suiterun")})
	if err != nil {
		t.Fatalf("failed to load yaml project: %v", err)
	}

	if proj.Title() != "YAML Suites" {
		t.Errorf("Title() = %q", proj.Title())
	}
	lint, ok := proj.Registry.Get("lint")
	if !ok {
		t.Fatal("lint suite missing")
	}
	if lint.Args[1] != root {
		t.Errorf("${root} = %q, want %q", lint.Args[1], root)
	}
	audit, _ := proj.Registry.Get("audit")
	if audit.Command != "node" || len(audit.Args) != 3 || audit.Args[2] != "http://localhost:8000" {
		t.Errorf("audit = %s %v", audit.Command, audit.Args)
	}
	if audit.Timeout != 10*time.Minute {
		t.Errorf("audit timeout = %v, want 10m", audit.Timeout)
	}
}

func TestTOMLProject(t *testing.T) {
	t.Parallel()

	proj, err := project.Load(project.Options{StartDir: fixture("toml")})
	if err != nil {
		t.Fatalf("failed to load toml project: %v", err)
	}

	names := proj.Registry.Names()
	if len(names) != 2 || names[0] != "pa11y" || names[1] != "mocha" {
		t.Errorf("Names() = %v, want [pa11y mocha]", names)
	}
	mocha, _ := proj.Registry.Get("mocha")
	if mocha.CommandLine() != "npx mocha tests/api_endpoints.test.js --timeout 30000" {
		t.Errorf("mocha CommandLine() = %q", mocha.CommandLine())
	}
}

func TestInvalidProject(t *testing.T) {
	t.Parallel()

	_, err := project.Load(project.Options{StartDir: fixture("invalid")})
	if err == nil {
		t.Fatal("expected error for suite with both command and run")
	}
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", got, errors.ExitConfigError)
	}
}

func TestExplicitConfigOutsideProject(t *testing.T) {
	t.Parallel()
	path := filepath.Join(fixture("toml"), ".suiterun", "suites.toml")

	proj, err := project.Load(project.Options{StartDir: t.TempDir(), ConfigPath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if proj.Root != fixture("toml") {
		t.Errorf("Root = %q, want %q", proj.Root, fixture("toml"))
	}
}
