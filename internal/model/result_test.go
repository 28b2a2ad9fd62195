package model

import (
	"encoding/json"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var (
	t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	t1 = t0.Add(1500 * time.Millisecond)
)

func TestNewExitResult(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantPass bool
	}{
		{"zero passes", 0, true},
		{"one fails", 1, false},
		{"signal fails", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewExitResult("suite", "cmd arg", tt.code, t0, t1, "out", "err")
			if r.Passed != tt.wantPass {
				t.Errorf("Passed = %v, want %v", r.Passed, tt.wantPass)
			}
			if r.ExitCode == nil || *r.ExitCode != tt.code {
				t.Errorf("ExitCode = %v, want %d", r.ExitCode, tt.code)
			}
			if r.DurationMs != 1500 {
				t.Errorf("DurationMs = %d, want 1500", r.DurationMs)
			}
		})
	}
}

func TestNewSpawnFailure(t *testing.T) {
	r := NewSpawnFailure("missing", "nope --x", "exec: \"nope\": executable file not found in $PATH", t0, t1)

	if r.Passed {
		t.Error("spawn failure must not pass")
	}
	if r.ExitCode != nil {
		t.Errorf("ExitCode = %d, want nil", *r.ExitCode)
	}
	if r.SpawnError == "" {
		t.Error("SpawnError is empty")
	}
	if r.Status() != StatusFailed {
		t.Errorf("Status() = %q, want %q", r.Status(), StatusFailed)
	}
}

func TestSuiteResult_JSONExitCodeNull(t *testing.T) {
	r := NewSpawnFailure("missing", "nope", "not found", t0, t1)
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := raw["exitCode"]; !ok || v != nil {
		t.Errorf("exitCode = %v (present=%v), want explicit null", v, ok)
	}
	if raw["spawnError"] != "not found" {
		t.Errorf("spawnError = %v", raw["spawnError"])
	}
}

func TestSummarize_Mixed(t *testing.T) {
	results := []SuiteResult{
		NewExitResult("A", "a", 0, t0, t1, "ok", ""),
		NewExitResult("B", "b", 1, t1, t1.Add(time.Second), "", "boom"),
	}

	s := Summarize(results, t0, t1.Add(time.Second))

	if s.TotalTests != 2 || s.PassedCount != 1 || s.FailedCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.TotalTests, s.PassedCount, s.FailedCount)
	}
	if s.AllPassed {
		t.Error("AllPassed = true, want false")
	}
	if s.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", s.ExitCode())
	}
	if s.TotalDurationMs != 2500 {
		t.Errorf("TotalDurationMs = %d, want 2500", s.TotalDurationMs)
	}
	if s.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestSummarize_CopiesResults(t *testing.T) {
	results := []SuiteResult{NewExitResult("A", "a", 0, t0, t1, "", "")}
	s := Summarize(results, t0, t1)

	results[0].Name = "mutated"
	if s.Results[0].Name != "A" {
		t.Errorf("summary aliases caller slice: Name = %q", s.Results[0].Name)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		failed int
		want   int
	}{
		{"no failures", 0, 0},
		{"two failures", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := RunSummary{TotalTests: 3, PassedCount: 3 - tt.failed, FailedCount: tt.failed, AllPassed: tt.failed == 0}
			if got := s.ExitCode(); (got == 0) != (tt.want == 0) {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarize_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outcomes := rapid.SliceOfN(rapid.IntRange(-1, 3), 1, 30).Draw(t, "exitCodes")
		spawnFails := rapid.SliceOfN(rapid.Bool(), len(outcomes), len(outcomes)).Draw(t, "spawnFails")

		results := make([]SuiteResult, len(outcomes))
		for i, code := range outcomes {
			if spawnFails[i] {
				results[i] = NewSpawnFailure("s", "c", "failed", t0, t1)
			} else {
				results[i] = NewExitResult("s", "c", code, t0, t1, "", "")
			}
		}

		s := Summarize(results, t0, t1)

		if s.PassedCount+s.FailedCount != s.TotalTests || s.TotalTests != len(s.Results) {
			t.Fatalf("counts inconsistent: %d+%d != %d (len %d)", s.PassedCount, s.FailedCount, s.TotalTests, len(s.Results))
		}
		allPassed := true
		for _, r := range s.Results {
			allPassed = allPassed && r.Passed
		}
		if s.AllPassed != (s.FailedCount == 0) || s.AllPassed != allPassed {
			t.Fatalf("AllPassed = %v, FailedCount = %d, every passed = %v", s.AllPassed, s.FailedCount, allPassed)
		}
		if (s.ExitCode() == 0) != s.AllPassed {
			t.Fatalf("ExitCode() = %d with AllPassed = %v", s.ExitCode(), s.AllPassed)
		}
	})
}
