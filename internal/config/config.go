// Package config holds the settings shared by the fishsprite commands.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 240
	DefaultHeight     = 140
	DefaultBackground = "#1b3a4b"
	DefaultFormat     = "png"
	DefaultSize       = "MEDIUM"
)

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// BodySize overrides the species' size-category body size when > 0.
	BodySize    float64 `yaml:"body_size"`
	Background  string  `yaml:"background"`
	Format      string  `yaml:"format"`
	Size        string  `yaml:"size"`
	Seed        int64   `yaml:"seed"`
	SpeciesFile string  `yaml:"species_file"`
	LogLevel    string  `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: DefaultBackground,
		Format:     DefaultFormat,
		Size:       DefaultSize,
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas must be positive, got %dx%d", c.Width, c.Height)
	}
	switch strings.ToLower(c.Format) {
	case "png", "svg":
	default:
		return fmt.Errorf("unknown format %q (want png or svg)", c.Format)
	}
	if c.BodySize < 0 {
		return fmt.Errorf("body size must not be negative")
	}
	return nil
}
