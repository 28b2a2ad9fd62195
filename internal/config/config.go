package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/suiterun/internal/schema"
)

// Load reads a suite file, applies defaults and validates it.
// Warnings report ignored (unknown) fields.
func Load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes suite file contents in the format named by ext (".json",
// ".yaml", ".yml" or ".toml"). Every format is normalized to JSON first so
// schema validation and unknown-field detection behave the same everywhere.
func Parse(ext string, data []byte) (*Config, []string, error) {
	jsonData, err := toJSON(ext, data)
	if err != nil {
		return nil, nil, err
	}

	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := LoadWithWarnings(jsonData)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// toJSON converts YAML and TOML documents to JSON bytes.
func toJSON(ext string, data []byte) ([]byte, error) {
	var doc any
	switch strings.ToLower(ext) {
	case ".json", "":
		return data, nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".toml":
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
		doc = m
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	return buf.Bytes(), nil
}

// Default returns the built-in configuration used when a project has no
// suite file: the Playwright, Mocha, Lighthouse and Pa11y suites.
func Default() *Config {
	cfg := &Config{
		Suites: []SuiteConfig{
			{
				Name:        "Playwright E2E + axe-core Accessibility",
				Description: "E2E Testing",
				Command:     "npx",
				Args:        []string{"playwright", "test", "tests/comprehensive_functionality.spec.js", "--reporter=list"},
			},
			{
				Name:        "Mocha/Chai API Endpoint Tests",
				Description: "API Testing",
				Command:     "npx",
				Args:        []string{"mocha", "tests/api_endpoints.test.js", "--timeout", "30000"},
			},
			{
				Name:        "Lighthouse Performance Audit",
				Description: "Performance",
				Command:     "node",
				Args:        []string{"tests/lighthouse_audit.js"},
			},
			{
				Name:        "Pa11y WCAG Accessibility Audit",
				Description: "WCAG Audit",
				Command:     "node",
				Args:        []string{"tests/pa11y_accessibility.js"},
			},
		},
	}
	applyDefaults(cfg)
	return cfg
}
