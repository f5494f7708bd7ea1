// Package config loads thrones settings using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kerbaras/thrones/pkg/sources"
)

const (
	// EnvPrefix is stripped from environment variables before mapping them to keys.
	EnvPrefix = "THRONES_"

	DefaultBaseURL = sources.DefaultBaseURL

	DefaultTimeout = 15 * time.Second

	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

type Config struct {
	API APIConfig `koanf:"api" validate:"required"`
	Log LogConfig `koanf:"log" validate:"required"`
}

// APIConfig points at the character feed.
type APIConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Token   string        `koanf:"token"    validate:"required"`
	Timeout time.Duration `koanf:"timeout"  validate:"required,min=100ms"`
}

type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=text json logfmt"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// Home returns the directory holding the default config and log file.
func Home() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".thrones"
	}
	return filepath.Join(homeDir, ".thrones")
}

func defaults() map[string]any {
	return map[string]any{
		"api.base_url": DefaultBaseURL,
		"api.token":    "",
		"api.timeout":  DefaultTimeout.String(),

		"log.level":            "info",
		"log.format":           "text",
		"log.file.enabled":     true,
		"log.file.path":        filepath.Join(Home(), "thrones.log"),
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    false,
	}
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. overrides (command line flags)
//  2. Environment variables (THRONES_ prefix)
//  3. The YAML file at path, or ~/.thrones/config.yaml when path is empty
//  4. Default values
//
// An explicitly requested file must exist; the default one is optional.
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
	} else if err := loadFileIfExists(k, filepath.Join(Home(), "config.yaml")); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps THRONES_API_BASE_URL to api.base_url: only the first
// underscore separates the section from the key, except for the log.file
// subsection (THRONES_LOG_FILE_MAX_SIZE is log.file.max_size).
func envKey(s string) string {
	key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	if rest, ok := strings.CutPrefix(key, "log.file_"); ok {
		key = "log.file." + rest
	}
	return key
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
