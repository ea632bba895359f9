package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable consulted for the YAML file when no
// path is given on the command line.
const PathEnv = "CONFIG_PATH"

// DefaultPath returns the config file path from PathEnv, or "" when unset.
func DefaultPath() string {
	return os.Getenv(PathEnv)
}

// Load builds the configuration. Values come from env-default tags, then the
// YAML file at path, then environment variables. An empty path skips the
// file; a non-empty one must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
