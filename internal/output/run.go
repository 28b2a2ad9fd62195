package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AndreyAkinshin/suiterun/internal/model"
	"github.com/AndreyAkinshin/suiterun/internal/suite"
)

var printer = message.NewPrinter(language.English)

// Banner prints the run header and the list of tools being used.
func (w *Writer) Banner(title string, suites []suite.Descriptor) {
	if w.quiet {
		return
	}
	rule := strings.Repeat("═", 60)
	if w.color {
		w.Println("%s%s%s", bold+cyan, rule, reset)
		w.Println("%s  %s%s", bold, title, reset)
		w.Println("%s%s%s", bold+cyan, rule, reset)
	} else {
		w.Println("%s", rule)
		w.Println("  %s", title)
		w.Println("%s", rule)
	}
	w.Println("")
	w.Println("Tools being used:")
	for _, d := range suites {
		if d.Description != "" {
			w.Println("  - %s (%s)", d.Name, d.Description)
		} else {
			w.Println("  - %s", d.Name)
		}
	}
}

// SuiteStarted prints the header above a suite's live output.
func (w *Writer) SuiteStarted(index, total int, d suite.Descriptor) {
	if w.quiet {
		return
	}
	w.Println("")
	label := fmt.Sprintf("─── [%d/%d] %s ───", index+1, total, d.Name)
	if w.color {
		w.Println("%s%s%s", bold+cyan, label, reset)
		w.Println("%s$ %s%s", dim, d.CommandLine(), reset)
	} else {
		w.Println("%s", label)
		w.Println("$ %s", d.CommandLine())
	}
}

// SuiteFinished prints the outcome line of a suite.
func (w *Writer) SuiteFinished(index, total int, r model.SuiteResult) {
	if w.quiet && r.Passed {
		return
	}
	detail := formatDuration(r.Duration())
	if r.SpawnError != "" {
		detail += ", " + r.SpawnError
	} else if r.ExitCode != nil && *r.ExitCode != 0 {
		detail += ", exit code " + strconv.Itoa(*r.ExitCode)
	}

	switch {
	case r.Passed && w.color:
		w.Println("%s[%s] %s ✓%s %s(%s)%s", green, r.Name, r.Status(), reset, dim, detail, reset)
	case r.Passed:
		w.Println("[%s] %s (%s)", r.Name, r.Status(), detail)
	case w.color:
		w.Println("%s[%s] %s ✗%s %s(%s)%s", red, r.Name, r.Status(), reset, dim, detail, reset)
	default:
		w.Println("[%s] %s (%s)", r.Name, r.Status(), detail)
	}
}

// Summary prints the totals and the per-suite result table.
func (w *Writer) Summary(s model.RunSummary) {
	w.Println("")
	if w.color {
		w.Println("%s=== Test Summary ===%s", bold+cyan, reset)
	} else {
		w.Println("=== Test Summary ===")
	}
	w.Println("")
	w.summaryItem("Total Duration", formatDuration(s.TotalDuration()), "")
	w.summaryItem("Total Suites", strconv.Itoa(s.TotalTests), "")
	w.summaryItem("Passed", strconv.Itoa(s.PassedCount), green)
	w.summaryItem("Failed", strconv.Itoa(s.FailedCount), red)
	w.Println("")
	w.Print("%s", w.resultTable(s))
}

func (w *Writer) summaryItem(label, value, valueColor string) {
	if w.color && valueColor != "" {
		w.Println("  %s%s:%s %s%s%s", dim, label, reset, valueColor, value, reset)
	} else if w.color {
		w.Println("  %s%s:%s %s", dim, label, reset, value)
	} else {
		w.Println("  %s: %s", label, value)
	}
}

// resultTable renders one row per suite in execution order.
func (w *Writer) resultTable(s model.RunSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Suite", "Status", "Duration", "Exit Code", "Output"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Exit Code", Align: text.AlignRight},
		{Name: "Output", Align: text.AlignRight},
	})

	for _, r := range s.Results {
		exitCode := "n/a"
		if r.ExitCode != nil {
			exitCode = strconv.Itoa(*r.ExitCode)
		}
		chars := utf8.RuneCountInString(r.Stdout) + utf8.RuneCountInString(r.Stderr)
		t.AppendRow(table.Row{
			r.Name,
			r.Status(),
			formatDuration(r.Duration()),
			exitCode,
			printer.Sprintf("%d chars", chars),
		})
	}

	overall := model.StatusPassed
	if !s.AllPassed {
		overall = model.StatusFailed
	}
	t.AppendFooter(table.Row{
		"TOTAL",
		overall,
		formatDuration(s.TotalDuration()),
		"",
		fmt.Sprintf("%d/%d", s.PassedCount, s.TotalTests),
	})

	switch {
	case !w.color:
		t.SetStyle(table.StyleLight)
	case s.AllPassed:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}
	return t.Render() + "\n"
}

// ReportPaths prints where the artifacts were written.
func (w *Writer) ReportPaths(paths ...string) {
	w.Println("")
	w.Println("Reports saved to:")
	for _, p := range paths {
		if p == "" {
			continue
		}
		if w.color {
			w.Println("  %s%s%s", cyan, p, reset)
		} else {
			w.Println("  %s", p)
		}
	}
}

// formatDuration formats a duration for the console.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
