package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "agentdeck.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/agentdeck"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"

	// EnvLogFile overrides log.file.
	EnvLogFile = "AGENTDECK_LOG_FILE"
	// EnvLogLevel overrides log.level.
	EnvLogLevel = "AGENTDECK_LOG_LEVEL"
	// EnvFPS overrides display.fps.
	EnvFPS = "AGENTDECK_FPS"
	// EnvOTLPEndpoint is the standard OpenTelemetry endpoint variable; overrides telemetry.endpoint.
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// EnvServiceName is the standard OpenTelemetry service name variable.
	EnvServiceName = "OTEL_SERVICE_NAME"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger

	// Explicit, when set, is loaded after the project config (e.g. from --config).
	Explicit string
	// WorkDir is where the project config search starts; defaults to the cwd.
	WorkDir string
	// HomeDir is where the user config lives; defaults to os.UserHomeDir.
	HomeDir string
	// Getenv reads environment overrides; defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, Getenv: os.Getenv}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/agentdeck/config.yaml)
// 3. Project config (agentdeck.yaml in current or parent directories)
// 4. Explicit config file (--config)
// 5. Environment variables
//
// Command-line flags are applied by the caller after Load.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if err := config.Overlay(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if err := config.Overlay(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	// An explicitly requested file must exist and parse.
	if l.Explicit != "" {
		if err := config.Overlay(l.Explicit); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded explicit config", slog.String("path", l.Explicit))
	}

	l.applyEnv(config)

	return config, nil
}

// applyEnv overlays environment variables onto config
func (l *Loader) applyEnv(config *Config) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvLogFile); v != "" {
		config.Log.File = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}
	if v := getenv(EnvFPS); v != "" {
		if fps, err := strconv.Atoi(v); err == nil {
			config.Display.FPS = fps
		} else {
			l.logger.Warn("Ignoring invalid frame rate", slog.String("env", EnvFPS), slog.String("value", v))
		}
	}
	if v := getenv(EnvOTLPEndpoint); v != "" {
		config.Telemetry.Endpoint = v
	}
	if v := getenv(EnvServiceName); v != "" {
		config.Telemetry.ServiceName = v
	}
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return nil
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home := l.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for agentdeck.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	dir := l.WorkDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
