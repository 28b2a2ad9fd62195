// Package integration contains end-to-end tests for suiterun that load the
// projects under test/fixtures and run them through the real process runner.
package integration

import (
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
// The result is cached for efficiency since runtime.Caller is relatively expensive.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func fixture(name string) string {
	return filepath.Join(fixturesDir(), name)
}

// skipWithoutShell skips tests whose fixtures rely on sh.
func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixtures use POSIX sh")
	}
}
