// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Globe   GlobeConfig   `yaml:"globe"`
	Clock   ClockConfig   `yaml:"clock"`
	Feed    FeedConfig    `yaml:"feed"`
	Capture CaptureConfig `yaml:"capture"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	PixelRatio float64 `yaml:"pixel_ratio"` // 0 = read from the display
}

// GlobeConfig holds projection and interaction tuning.
type GlobeConfig struct {
	FocalLength     float64       `yaml:"focal_length"`
	RadiusRatio     float64       `yaml:"radius_ratio"` // sphere radius as a share of min(width, height)
	InitialYaw      float64       `yaml:"initial_yaw"`
	InitialPitch    float64       `yaml:"initial_pitch"`
	DragSensitivity float64       `yaml:"drag_sensitivity"`
	AutoRotateSpeed float64       `yaml:"auto_rotate_speed"` // yaw radians per frame
	ResumeDelay     time.Duration `yaml:"resume_delay"`
	PitchLimit      float64       `yaml:"pitch_limit"` // 0 = unbounded
	ParticlesPerArc int           `yaml:"particles_per_arc"`
	ArcElevation    float64       `yaml:"arc_elevation"`
}

// ClockConfig controls how the animation clock advances.
type ClockConfig struct {
	Mode string  `yaml:"mode"` // "fixed" or "delta"
	Step float64 `yaml:"step"` // clock units per frame in fixed mode
	FPS  int     `yaml:"fps"`  // headless frame rate
}

// FeedConfig holds scene data source settings.
type FeedConfig struct {
	URL            string        `yaml:"url"`
	Scenario       string        `yaml:"scenario"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
	MaxReconnects  int           `yaml:"max_reconnects"`
}

// CaptureConfig holds screenshot and headless output settings.
type CaptureConfig struct {
	Dir      string `yaml:"dir"`
	Prefix   string `yaml:"prefix"`
	Headless bool   `yaml:"headless"`
	Frames   int    `yaml:"frames"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "ShockGlobe",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Globe: GlobeConfig{
			FocalLength:     680,
			RadiusRatio:     0.36,
			InitialYaw:      -0.9,
			InitialPitch:    -0.1,
			DragSensitivity: 0.004,
			AutoRotateSpeed: 0.0009,
			ResumeDelay:     4 * time.Second,
			ParticlesPerArc: 3,
			ArcElevation:    0.38,
		},
		Clock: ClockConfig{
			Mode: "fixed",
			Step: 0.016,
			FPS:  60,
		},
		Feed: FeedConfig{
			ReconnectDelay: 2 * time.Second,
			MaxReconnects:  10,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "shockglobe",
			Frames: 120,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
