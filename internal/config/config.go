// Package config provides configuration loading and management for agentdeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete agentdeck configuration
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Keys      KeysConfig      `yaml:"keys"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// DisplayConfig configures how the deck is drawn in the terminal
type DisplayConfig struct {
	// FPS is the frame rate for scene animation and transitions (1-120)
	FPS int `yaml:"fps"`
	// CellAspect is how many times taller than wide a terminal cell is
	CellAspect float64 `yaml:"cell_aspect"`
	// AltScreen starts the deck in the alternate screen ("fullscreen")
	AltScreen bool `yaml:"alt_screen"`
	// Mouse enables clicking the on-screen controls
	Mouse bool `yaml:"mouse"`
	// Transitions enables the slide-in animation between slides
	Transitions bool `yaml:"transitions"`
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key notation
// ("right", "left", " ", "ctrl+c").
type KeysConfig struct {
	Advance    []string `yaml:"advance"`
	Retreat    []string `yaml:"retreat"`
	Fullscreen []string `yaml:"fullscreen"`
	Help       []string `yaml:"help"`
	Quit       []string `yaml:"quit"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// File receives log output; empty discards logs (the TUI owns stdout)
	File string `yaml:"file"`
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// TelemetryConfig configures OTLP trace export
type TelemetryConfig struct {
	// Endpoint is the OTLP/HTTP collector, as host:port or an http(s) base URL;
	// empty disables export
	Endpoint string `yaml:"endpoint"`
	// ServiceName is reported as service.name
	ServiceName string `yaml:"service_name"`
	// Insecure sends traces over plain HTTP to a host:port endpoint. A URL
	// endpoint takes this from its scheme.
	Insecure bool `yaml:"insecure"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:         30,
			CellAspect:  2.0,
			AltScreen:   true,
			Mouse:       true,
			Transitions: true,
		},
		Keys: KeysConfig{
			Advance:    []string{"right", " "},
			Retreat:    []string{"left"},
			Fullscreen: []string{"f"},
			Help:       []string{"?"},
			Quit:       []string{"q", "ctrl+c"},
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Endpoint:    "",
			ServiceName: "agentdeck",
			Insecure:    true,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 120 {
		return fmt.Errorf("display.fps must be between 1 and 120")
	}
	if c.Display.CellAspect <= 0 {
		return fmt.Errorf("display.cell_aspect must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	seen := make(map[string]string)
	for _, group := range c.Keys.groups() {
		if len(group.keys) == 0 {
			return fmt.Errorf("keys.%s must bind at least one key", group.name)
		}
		for _, k := range group.keys {
			k = CanonicalKey(k)
			if k == "" {
				return fmt.Errorf("keys.%s contains an empty key", group.name)
			}
			if prev, ok := seen[k]; ok && prev != group.name {
				return fmt.Errorf("key %q is bound to both keys.%s and keys.%s", k, prev, group.name)
			}
			seen[k] = group.name
		}
	}
	return nil
}

// CanonicalKey returns k in Bubble Tea key notation. "space" and "SPC" are
// accepted as spellings of " ".
func CanonicalKey(k string) string {
	if k == "space" || k == "SPC" {
		return " "
	}
	return k
}

type keyGroup struct {
	name string
	keys []string
}

func (k KeysConfig) groups() []keyGroup {
	return []keyGroup{
		{"advance", k.Advance},
		{"retreat", k.Retreat},
		{"fullscreen", k.Fullscreen},
		{"help", k.Help},
		{"quit", k.Quit},
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.Overlay(path); err != nil {
		return nil, err
	}
	return config, nil
}

// Overlay applies the YAML file at path on top of c. Keys absent from the
// file keep their current values; lists present in the file replace ours.
func (c *Config) Overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
