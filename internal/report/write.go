package report

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/AndreyAkinshin/suiterun/internal/config"
	"github.com/AndreyAkinshin/suiterun/internal/errors"
	"github.com/AndreyAkinshin/suiterun/internal/model"
)

// Paths holds the locations of the written artifacts.
type Paths struct {
	JSON string
	HTML string
}

// Target names the artifacts of a run.
type Target struct {
	Dir      string
	JSONFile string
	HTMLFile string
}

// DefaultTarget returns the artifact names under dir used without a suite
// file.
func DefaultTarget(dir string) Target {
	return Target{Dir: dir, JSONFile: config.DefaultJSONFile, HTMLFile: config.DefaultHTMLFile}
}

// Paths returns the artifact file paths, joined onto Dir.
func (t Target) Paths() Paths {
	return Paths{
		JSON: filepath.Join(t.Dir, t.JSONFile),
		HTML: filepath.Join(t.Dir, t.HTMLFile),
	}
}

// Write renders both artifacts and stores them under t.Dir, creating the
// directory if needed. Nothing is written unless both render. Each file is
// replaced atomically; the HTML goes first so a failed write leaves the
// previous JSON in place. Failures are returned as report errors.
func Write(t Target, s model.RunSummary, opts Options) (Paths, error) {
	paths := t.Paths()

	var jsonBuf, htmlBuf bytes.Buffer
	if err := WriteJSON(&jsonBuf, s); err != nil {
		return paths, errors.Report("cannot render JSON report", err)
	}
	if err := RenderHTML(&htmlBuf, s, opts); err != nil {
		return paths, errors.Report("cannot render HTML report", err)
	}

	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return paths, errors.Report("cannot create reports directory "+t.Dir, err)
	}
	if err := atomic.WriteFile(paths.HTML, &htmlBuf); err != nil {
		return paths, errors.Report("cannot write "+paths.HTML, err)
	}
	if err := atomic.WriteFile(paths.JSON, &jsonBuf); err != nil {
		return paths, errors.Report("cannot write "+paths.JSON, err)
	}

	return paths, nil
}
