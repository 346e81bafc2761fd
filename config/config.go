// Package config loads settings for the splatter viewer.
package config

import (
	"fmt"
	"os"

	"github.com/milk9111/splatter/splatter"
	"gopkg.in/yaml.v3"
)

// Viewer configures the interactive splatter viewer.
type Viewer struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	FPS          int    `yaml:"fps"`
	Effect       int    `yaml:"effect"`
	Size         string `yaml:"size"`
	Warm         bool   `yaml:"warm"`
	MaxSplatters int    `yaml:"max_splatters"`
}

// Default returns the settings used when no config file is given.
func Default() Viewer {
	return Viewer{
		Width:        1280,
		Height:       720,
		FPS:          12,
		Effect:       0,
		Size:         splatter.Regular.String(),
		Warm:         true,
		MaxSplatters: 64,
	}
}

// Load reads a YAML config on top of Default. An empty path returns the
// defaults unchanged.
func Load(path string) (Viewer, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Viewer{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Viewer{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Viewer{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges. Effect ids outside the table are allowed; they
// draw as the default effect.
func (v Viewer) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.FPS <= 0 || v.FPS > 60 {
		return fmt.Errorf("fps must be in 1..60, got %d", v.FPS)
	}
	if v.MaxSplatters <= 0 {
		return fmt.Errorf("max_splatters must be positive, got %d", v.MaxSplatters)
	}
	if _, err := splatter.ParseSize(v.Size); err != nil {
		return err
	}
	return nil
}

// SplatterSize returns the configured size variant.
func (v Viewer) SplatterSize() splatter.Size {
	s, err := splatter.ParseSize(v.Size)
	if err != nil {
		return splatter.Regular
	}
	return s
}
