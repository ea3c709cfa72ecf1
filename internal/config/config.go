// Package config resolves client settings from flags, environment and an
// optional TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"todoterm/internal/api"
)

// Environment overrides. Flags beat env, env beats the config file.
const (
	EnvAPIURL = "TODOTERM_API_URL"
	EnvTheme  = "TODOTERM_THEME"
)

type Config struct {
	// APIURL is the backend base URL. Empty means api.DefaultBaseURL,
	// i.e. a locally running backend.
	APIURL string `toml:"api_url"`

	// Theme forces the palette: light, dark or auto.
	Theme string `toml:"theme"`

	// LogFile receives diagnostics while the TUI owns the terminal.
	LogFile string `toml:"log_file"`
}

// DefaultPath returns ~/.config/todoterm/config.toml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todoterm", "config.toml")
}

// Load reads the config file at path (DefaultPath when empty) and applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
	return cfg, nil
}

// ResolveAPIURL applies the flag override and the default, in that order.
func (c Config) ResolveAPIURL(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.APIURL); v != "" {
		return v
	}
	return api.DefaultBaseURL
}
