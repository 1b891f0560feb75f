package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SHINEYZOOM_"

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Explicit RC file, normally from SHINEYZOOM_CONFIG
	EnvFile      string // dotenv file read before environment overrides
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	if overridePath == "" {
		overridePath = os.Getenv(EnvPrefix + "CONFIG")
	}
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
		EnvFile:      ".env",
	}
}

// Load builds the effective configuration: defaults, then the RC file, then
// the dotenv file and process environment.
func (l *Loader) Load() (*Config, error) {
	cfg := New()

	if path := l.GetConfigPath(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = parseInto(cfg, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if l.EnvFile != "" {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(l.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file %s: %w", l.EnvFile, err)
		}
	}

	if err := ApplyEnv(cfg, os.Environ()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies SHINEYZOOM_* entries in KEY=VALUE form. SHINEYZOOM_ZOOM
// sets zoom, SHINEYZOOM_NOTIFY_COPY sets notify.copy and so on.
func ApplyEnv(cfg *Config, environ []string) error {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		var err error
		switch {
		case key == "config":
		case strings.HasPrefix(key, "notify_"):
			err = setNotifyField(&cfg.Notify, strings.TrimPrefix(key, "notify_"), value)
		default:
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			return fmt.Errorf("environment %s: %w", name, err)
		}
	}
	return nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Variable override path
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Local run directory (dev mode)
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".shineyzoomrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	// 3. XDG Config Path
	home, _ := os.UserHomeDir()
	xdgPath := filepath.Join(home, ".config", "shineyzoom", "config.rc")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}
