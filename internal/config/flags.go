package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFeed       = flag.String("feed", "", "Backend websocket URL for live scene data")
	flagScenario   = flag.String("scenario", "", "YAML scenario file to load at startup")
	flagHeadless   = flag.Bool("headless", false, "Render to PNG files instead of a window")
	flagFrames     = flag.Int("frames", 0, "Number of frames to render in headless mode")
	flagOut        = flag.String("out", "", "Output directory for screenshots and headless frames")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Viewport width")
	flagHeight     = flag.Int("height", 0, "Viewport height")
	flagWrite      = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFeed != "" {
		cfg.Feed.URL = *flagFeed
	}
	if *flagScenario != "" {
		cfg.Feed.Scenario = *flagScenario
	}
	if *flagHeadless {
		cfg.Capture.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Capture.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Capture.Dir = *flagOut
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
