package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid viewport size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Globe.FocalLength <= 0 {
		return fmt.Errorf("focal_length must be positive, got %v", c.Globe.FocalLength)
	}
	if c.Globe.ParticlesPerArc < 1 {
		return fmt.Errorf("particles_per_arc must be at least 1, got %d", c.Globe.ParticlesPerArc)
	}
	switch c.Clock.Mode {
	case "fixed", "delta":
	default:
		return fmt.Errorf("unknown clock mode %q", c.Clock.Mode)
	}
	if c.Clock.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Clock.FPS)
	}
	if c.Capture.Headless && c.Capture.Frames <= 0 {
		return fmt.Errorf("headless mode needs a positive frame count, got %d", c.Capture.Frames)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ShockGlobe")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ShockGlobe")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shockglobe")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shockglobe")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
