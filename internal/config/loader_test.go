package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T, env map[string]string) (*Loader, string, string) {
	t.Helper()
	home := t.TempDir()
	work := t.TempDir()
	l := NewLoader(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	l.HomeDir = home
	l.WorkDir = work
	l.Getenv = func(k string) string { return env[k] }
	return l, home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoader_DefaultsWhenNothingConfigured(t *testing.T) {
	l, _, _ := newTestLoader(t, nil)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_Precedence(t *testing.T) {
	l, home, work := newTestLoader(t, map[string]string{
		EnvFPS:          "12",
		EnvOTLPEndpoint: "collector:4318",
	})

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
display:
  fps: 50
  cell_aspect: 2.2
log:
  level: warn
`)
	writeFile(t, filepath.Join(work, ProjectConfigFile), `
display:
  cell_aspect: 1.8
telemetry:
  service_name: rehearsal
`)

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Display.FPS, "env beats files")
	assert.Equal(t, 1.8, cfg.Display.CellAspect, "project beats user")
	assert.Equal(t, "warn", cfg.Log.Level, "user config applies when nothing overrides it")
	assert.Equal(t, "rehearsal", cfg.Telemetry.ServiceName)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
}

func TestLoader_FindsProjectConfigInParent(t *testing.T) {
	l, _, work := newTestLoader(t, nil)
	writeFile(t, filepath.Join(work, ProjectConfigFile), "display:\n  fps: 15\n")
	l.WorkDir = filepath.Join(work, "talks", "2026")
	require.NoError(t, os.MkdirAll(l.WorkDir, 0755))

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Display.FPS)
}

func TestLoader_ExplicitFileMustExist(t *testing.T) {
	l, _, work := newTestLoader(t, nil)
	l.Explicit = filepath.Join(work, "nope.yaml")
	_, err := l.Load()
	require.Error(t, err)

	writeFile(t, l.Explicit, "log:\n  file: /tmp/deck.log\n")
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/deck.log", cfg.Log.File)
}

func TestLoader_InvalidProjectConfigIsSkipped(t *testing.T) {
	var logs bytes.Buffer
	l, _, work := newTestLoader(t, nil)
	l.logger = slog.New(slog.NewTextHandler(&logs, nil))
	writeFile(t, filepath.Join(work, ProjectConfigFile), "display: [")

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.True(t, strings.Contains(logs.String(), "Failed to load project config"))
}

func TestLoader_InvalidFPSEnvIgnored(t *testing.T) {
	l, _, _ := newTestLoader(t, map[string]string{EnvFPS: "fast"})
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Display.FPS)
}

func TestEnsureUserConfig(t *testing.T) {
	l, home, _ := newTestLoader(t, nil)
	require.NoError(t, l.EnsureUserConfig())

	path := filepath.Join(home, UserConfigDir, UserConfigFile)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Existing files are left alone.
	writeFile(t, path, "display:\n  fps: 5\n")
	require.NoError(t, l.EnsureUserConfig())
	cfg, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Display.FPS)
}

func TestNewLogger(t *testing.T) {
	logger, closer, err := NewLogger(LogConfig{Level: "info"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "logs", "deck.log")
	logger, closer, err = NewLogger(LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("slide changed", slog.Int("index", 2))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slide changed")
	assert.Contains(t, string(data), "index=2")

	_, _, err = NewLogger(LogConfig{Level: "chatty"})
	require.Error(t, err)
}
