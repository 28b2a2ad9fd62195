package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AndreyAkinshin/suiterun/internal/model"
)

//go:embed templates/report.html.tmpl
var htmlTemplate string

// printer formats counts with thousands separators ("5,000").
var printer = message.NewPrinter(language.English)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"seconds": func(ms int64, precision int) string {
		return strconv.FormatFloat(float64(ms)/1000, 'f', precision, 64) + "s"
	},
	"count": func(n int) string {
		return printer.Sprintf("%d", n)
	},
}).Parse(htmlTemplate))

// htmlData is the view model of the HTML report.
type htmlData struct {
	Title           string
	ProjectName     string
	GeneratedAt     string
	TotalDurationMs int64
	AllPassed       bool
	Total           int
	Passed          int
	Failed          int
	Suites          []htmlSuite
}

// htmlSuite is the view of one SuiteResult.
type htmlSuite struct {
	Name        string
	Description string
	CommandLine string
	ExitCode    string
	DurationMs  int64
	Passed      bool
	Status      string
	SpawnError  string
	TimedOut    bool
	Stdout      *outputTail
	Stderr      *outputTail
}

// RenderHTML writes the human-readable report for s.
//
// Stdout and stderr are reduced to their last opts.StdoutTail and
// opts.StderrTail characters with ANSI sequences removed. A stream whose
// display text is empty or whitespace-only gets no section. All values,
// including the captures, are HTML-escaped.
func RenderHTML(w io.Writer, s model.RunSummary, opts Options) error {
	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	data := htmlData{
		Title:           opts.Title,
		ProjectName:     opts.ProjectName,
		GeneratedAt:     generated.Format(time.RFC3339),
		TotalDurationMs: s.TotalDurationMs,
		AllPassed:       s.AllPassed,
		Total:           s.TotalTests,
		Passed:          s.PassedCount,
		Failed:          s.FailedCount,
		Suites:          make([]htmlSuite, 0, len(s.Results)),
	}
	for _, r := range s.Results {
		data.Suites = append(data.Suites, newHTMLSuite(r, opts))
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

func newHTMLSuite(r model.SuiteResult, opts Options) htmlSuite {
	hs := htmlSuite{
		Name:        r.Name,
		Description: r.Description,
		CommandLine: r.CommandLine,
		ExitCode:    "n/a",
		DurationMs:  r.DurationMs,
		Passed:      r.Passed,
		Status:      r.Status(),
		SpawnError:  r.SpawnError,
		TimedOut:    r.TimedOut,
	}
	if r.ExitCode != nil {
		hs.ExitCode = strconv.Itoa(*r.ExitCode)
	}
	if t := tail(r.Stdout, opts.StdoutTail); !t.blank() {
		hs.Stdout = &t
	}
	if t := tail(r.Stderr, opts.StderrTail); !t.blank() {
		hs.Stderr = &t
	}
	return hs
}
