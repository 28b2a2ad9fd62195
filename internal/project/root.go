// Package project locates a suiterun project and loads its suites.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirName is the name of the suiterun configuration directory.
const ConfigDirName = ".suiterun"

// ConfigBaseName is the suite file name without extension.
const ConfigBaseName = "suites"

// ConfigExtensions lists the accepted suite file formats in lookup order.
var ConfigExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// ErrNoProjectRoot is returned when no suite file is found.
var ErrNoProjectRoot = errors.New(".suiterun/suites.{json,yaml,yml,toml} not found in this directory or any parent")

// FindRoot walks up from the current working directory until it finds a
// suite file.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds a suite file.
func FindRootFrom(startDir string) (string, error) {
	root, _, err := FindConfigFrom(startDir)
	return root, err
}

// FindConfigFrom walks up from startDir and returns the project root and the
// path of its suite file.
func FindConfigFrom(startDir string) (root, configPath string, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}

	for {
		if path, ok := configIn(dir); ok {
			return dir, path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", "", ErrNoProjectRoot
		}
		dir = parent
	}
}

// configIn returns the first suite file present in dir/.suiterun.
func configIn(dir string) (string, bool) {
	for _, ext := range ConfigExtensions {
		path := filepath.Join(dir, ConfigDirName, ConfigBaseName+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// rootForConfig derives the project root of an explicitly named suite file:
// the parent of .suiterun when the file lives there, its own directory
// otherwise.
func rootForConfig(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}
