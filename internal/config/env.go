package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFile reads the dotenv file named by cfg.EnvFile, relative to root.
// The process environment is left untouched; the returned entries are passed
// to every suite. A config without env_file yields a nil map.
func LoadEnvFile(cfg *Config, root string) (map[string]string, error) {
	if cfg.EnvFile == "" {
		return nil, nil
	}
	path := cfg.EnvFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", cfg.EnvFile, err)
	}
	return env, nil
}
