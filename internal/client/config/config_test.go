package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultServerURL, cfg.ServerURL)
	assert.Equal(t, filepath.Join(home, ".local/share/gophnotes/notes.db"), cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Sync{Concurrency: 4, OnStart: true}, cfg.Sync)
	assert.Equal(t, 5*time.Second, cfg.Connectivity.ProbeInterval)
	assert.Equal(t, 3*time.Second, cfg.Connectivity.ProbeTimeout)
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "gophnotes")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`server_url = "https://notes.example.com"`), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com", cfg.ServerURL)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
server_url = "  http://10.0.0.5:9999  "
db_path = "  ~/notes/local.db  "
log_level = "DEBUG"

[sync]
concurrency = 8
explicit_create = true
on_start = false

[connectivity]
probe_interval = "750ms"
probe_timeout = "2s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:9999", cfg.ServerURL)
	assert.True(t, strings.HasPrefix(cfg.DBPath, home))
	assert.Equal(t, filepath.Join(home, "notes/local.db"), cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Sync{Concurrency: 8, ExplicitCreate: true, OnStart: false}, cfg.Sync)
	assert.Equal(t, 750*time.Millisecond, cfg.Connectivity.ProbeInterval)
	assert.Equal(t, 2*time.Second, cfg.Connectivity.ProbeTimeout)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
server_url = "   "
db_path = ""

[connectivity]
probe_interval = " "
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid toml", content: `server_url = [`, wantErr: "parse config"},
		{name: "bad duration", content: "[connectivity]\nprobe_interval = \"soon\"", wantErr: "probe_interval"},
		{name: "bad server url", content: `server_url = "localhost:8080"`, wantErr: "invalid server_url"},
		{name: "bad log level", content: `log_level = "loud"`, wantErr: "invalid log_level"},
		{name: "zero concurrency", content: "[sync]\nconcurrency = 0", wantErr: "sync.concurrency"},
		{name: "negative timeout", content: "[connectivity]\nprobe_timeout = \"-1s\"", wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("info")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
}
