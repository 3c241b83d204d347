// Package config loads optional launcher settings.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kkyr/fig"
)

// EnvPrefix prefixes environment overrides, e.g. KIERO_LAUNCHER_PAUSE=never.
const EnvPrefix = "KIERO_LAUNCHER"

// FileName is the config file looked up next to the launcher.
const FileName = "launcher.yaml"

// Config holds launcher settings. Every field is optional; zero values mean
// the built-in behavior.
type Config struct {
	Entry   string `fig:"entry"`                  // application file, relative to the launcher
	Python  string `fig:"python"`                 // generic interpreter name for the PATH fallback
	Pause   string `fig:"pause" default:"always"` // always, never or auto
	Verbose bool   `fig:"verbose"`
}

// Load reads FileName from dir, or the file at path when path is set, and
// applies environment overrides. A missing file in dir is not an error. The
// returned string is the file that was read, empty if none.
func Load(dir, path string) (Config, string, error) {
	var cfg Config

	file, dirs := FileName, []string{dir}
	if path != "" {
		file, dirs = filepath.Base(path), []string{filepath.Dir(path)}
	}

	err := fig.Load(&cfg, fig.File(file), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	switch {
	case err == nil:
		return cfg, filepath.Join(dirs[0], file), nil
	case errors.Is(err, fig.ErrFileNotFound) && path == "":
		cfg = Config{}
		if err := fig.Load(&cfg, fig.IgnoreFile(), fig.UseEnv(EnvPrefix)); err != nil {
			return Config{}, "", fmt.Errorf("failed to load config from environment: %w", err)
		}
		return cfg, "", nil
	default:
		return Config{}, "", fmt.Errorf("failed to load config: %w", err)
	}
}
