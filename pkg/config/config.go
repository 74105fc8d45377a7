// Package config provides configuration types and loading for deckmockd.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deckmock/deckmockd/pkg/deck"
)

// DefaultPort is the port the mock server listens on by default.
const DefaultPort = 8080

// DefaultHTMLFile is the default location of the deck editor page, relative
// to the working directory.
const DefaultHTMLFile = "web/DeckEditorPage.html"

// Config is the full server configuration.
type Config struct {
	// Port is the HTTP port for the mock deck API.
	Port int `json:"port" yaml:"port"`

	// ControlPort is the port for the control API. 0 disables it.
	ControlPort int `json:"controlPort" yaml:"controlPort"`

	// HTMLFile is the path to the deck editor page served at / and
	// /deck-editor. The file is read on every request so edits show up on
	// reload.
	HTMLFile string `json:"htmlFile" yaml:"htmlFile"`

	// Logging configures the operational logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Seeds are the decks loaded at startup. When omitted the built-in
	// development decks are used.
	Seeds []deck.Seed `json:"seeds,omitempty" yaml:"seeds,omitempty"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`
	// Format is the output format (text, json).
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in configuration: port 8080, control API
// disabled, default editor page and the three built-in seed decks.
func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		ControlPort: 0,
		HTMLFile:    DefaultHTMLFile,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Seeds: deck.DefaultSeeds(),
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ControlPort < 0 || c.ControlPort > 65535 {
		return fmt.Errorf("controlPort must be between 0 and 65535, got %d", c.ControlPort)
	}
	if c.ControlPort != 0 && c.ControlPort == c.Port {
		return fmt.Errorf("controlPort %d conflicts with port", c.ControlPort)
	}
	if c.HTMLFile == "" {
		return fmt.Errorf("htmlFile cannot be empty")
	}

	seen := make(map[string]struct{}, len(c.Seeds))
	for i, seed := range c.Seeds {
		if seed.Path == "" {
			return fmt.Errorf("seed %d: path cannot be empty", i)
		}
		if !strings.HasPrefix(seed.Path, "/") {
			return fmt.Errorf("seed %d: path %q must start with /", i, seed.Path)
		}
		if _, dup := seen[seed.Path]; dup {
			return fmt.Errorf("seed %d: duplicate path %q", i, seed.Path)
		}
		seen[seed.Path] = struct{}{}
	}
	return nil
}
