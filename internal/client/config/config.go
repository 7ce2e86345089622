// Package config loads the gophnotes client configuration from a TOML file.
//
// A missing file is not an error: every field has a default, so the client
// works without any configuration. Empty values in the file fall back to the
// same defaults. Paths starting with "~" are expanded to the home directory.
//
// Example config.toml:
//
//	server_url = "http://localhost:8080"
//	db_path = "~/.local/share/gophnotes/notes.db"
//	log_level = "warn"
//
//	[sync]
//	concurrency = 4
//	explicit_create = false
//	on_start = true
//
//	[connectivity]
//	probe_interval = "5s"
//	probe_timeout = "3s"
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigPath    = "~/.config/gophnotes/config.toml"
	defaultDBPath        = "~/.local/share/gophnotes/notes.db"
	defaultServerURL     = "http://localhost:8080"
	defaultLogLevel      = "warn"
	defaultConcurrency   = 4
	defaultProbeInterval = 5 * time.Second
	defaultProbeTimeout  = 3 * time.Second
)

// Config is the resolved client configuration.
type Config struct {
	ServerURL    string
	DBPath       string
	LogLevel     string
	Connectivity Connectivity
	Sync         Sync
}

// Sync настройки прохода синхронизации
type Sync struct {
	Concurrency    int
	ExplicitCreate bool
	OnStart        bool
}

// Connectivity настройки опроса доступности сервера
type Connectivity struct {
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerURL: defaultServerURL,
		DBPath:    mustExpand(defaultDBPath),
		LogLevel:  defaultLogLevel,
		Sync: Sync{
			Concurrency: defaultConcurrency,
			OnStart:     true,
		},
		Connectivity: Connectivity{
			ProbeInterval: defaultProbeInterval,
			ProbeTimeout:  defaultProbeTimeout,
		},
	}
}

type rawConfig struct {
	Sync struct {
		Concurrency    *int  `toml:"concurrency"`
		ExplicitCreate *bool `toml:"explicit_create"`
		OnStart        *bool `toml:"on_start"`
	} `toml:"sync"`
	Connectivity struct {
		ProbeInterval string `toml:"probe_interval"`
		ProbeTimeout  string `toml:"probe_timeout"`
	} `toml:"connectivity"`
	ServerURL string `toml:"server_url"`
	DBPath    string `toml:"db_path"`
	LogLevel  string `toml:"log_level"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.Sync.Concurrency != nil {
		cfg.Sync.Concurrency = *raw.Sync.Concurrency
	}
	if raw.Sync.ExplicitCreate != nil {
		cfg.Sync.ExplicitCreate = *raw.Sync.ExplicitCreate
	}
	if raw.Sync.OnStart != nil {
		cfg.Sync.OnStart = *raw.Sync.OnStart
	}
	if cfg.Connectivity.ProbeInterval, err = parseDuration(raw.Connectivity.ProbeInterval, defaultProbeInterval); err != nil {
		return Config{}, fmt.Errorf("parse config: probe_interval: %w", err)
	}
	if cfg.Connectivity.ProbeTimeout, err = parseDuration(raw.Connectivity.ProbeTimeout, defaultProbeTimeout); err != nil {
		return Config{}, fmt.Errorf("parse config: probe_timeout: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server_url %q: expected http(s)://host[:port]", c.ServerURL)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Sync.Concurrency < 1 {
		return fmt.Errorf("invalid sync.concurrency %d: must be at least 1", c.Sync.Concurrency)
	}
	if c.Connectivity.ProbeInterval <= 0 || c.Connectivity.ProbeTimeout <= 0 {
		return fmt.Errorf("connectivity durations must be positive")
	}
	return nil
}

// ParseLevel converts a log_level value to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: use debug, info, warn or error", level)
	}
	return l, nil
}

func parseDuration(raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	return time.ParseDuration(raw)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves "~" and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
