package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/suiterun/internal/cli"
	"github.com/AndreyAkinshin/suiterun/internal/model"
	"github.com/AndreyAkinshin/suiterun/internal/output"
	"github.com/AndreyAkinshin/suiterun/internal/project"
	"github.com/AndreyAkinshin/suiterun/internal/runner"
)

func TestMixedProject_EndToEnd(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()
	reports := t.TempDir()

	var stdout, stderr bytes.Buffer
	w := output.NewWithWriters(&stdout, &stderr, false)
	code := cli.RunContext(context.Background(), nil, w, project.Options{
		StartDir:   fixture("mixed"),
		ReportsDir: reports,
	})

	if code != 1 {
		t.Fatalf("exit code = %d, want 1\nstdout:\n%s\nstderr:\n%s", code, stdout.String(), stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(reports, "comprehensive_report.json"))
	if err != nil {
		t.Fatalf("JSON report not written: %v", err)
	}
	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("invalid JSON report: %v", err)
	}

	if summary.TotalTests != 3 || summary.PassedCount != 2 || summary.FailedCount != 1 || summary.AllPassed {
		t.Errorf("summary counts = %d/%d/%d allPassed=%v", summary.TotalTests, summary.PassedCount, summary.FailedCount, summary.AllPassed)
	}

	byName := map[string]model.SuiteResult{}
	for _, r := range summary.Results {
		byName[r.Name] = r
	}
	if got := byName["A"].Stdout; got != "ok\n" {
		t.Errorf("A stdout = %q", got)
	}
	if got := byName["B"].Stderr; got != "boom\n" {
		t.Errorf("B stderr = %q", got)
	}
	if got := byName["C"].Stdout; got != "hello http://localhost:8000" {
		t.Errorf("C stdout = %q, want env from vars and env file", got)
	}

	html, err := os.ReadFile(filepath.Join(reports, "comprehensive_report.html"))
	if err != nil {
		t.Fatalf("HTML report not written: %v", err)
	}
	for _, want := range []string{"Atlas CRM - Comprehensive Test Report", "SOME TESTS FAILED", "2 of 3 test suites passed", "E2E Testing"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("HTML report missing %q", want)
		}
	}
}

func TestMixedProject_SequentialOrder(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()

	proj, err := project.Load(project.Options{StartDir: fixture("mixed")})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	coord := runner.NewCoordinator(proj.Registry, runner.NewProcessRunner(nil, nil, nil))
	summary := coord.Run(context.Background())

	want := []string{"A", "B", "C"}
	for i, r := range summary.Results {
		if r.Name != want[i] {
			t.Errorf("Results[%d] = %s, want %s", i, r.Name, want[i])
		}
		if i > 0 && r.StartedAt.Before(summary.Results[i-1].FinishedAt) {
			t.Errorf("%s started before %s finished", r.Name, summary.Results[i-1].Name)
		}
	}
}

func TestMinimalProject_AllPassed(t *testing.T) {
	skipWithoutShell(t)
	t.Parallel()

	var stdout bytes.Buffer
	w := output.NewWithWriters(&stdout, &bytes.Buffer{}, false)
	code := cli.RunContext(context.Background(), nil, w, project.Options{
		StartDir:   fixture("minimal"),
		ReportsDir: t.TempDir(),
	})

	if code != 0 {
		t.Errorf("exit code = %d, want 0\n%s", code, stdout.String())
	}
	if !strings.Contains(stdout.String(), "ALL TESTS PASSED") {
		t.Errorf("missing final status:\n%s", stdout.String())
	}
}
