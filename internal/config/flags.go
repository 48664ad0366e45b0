package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagBackend      = flag.String("backend", "", "Window backend (sdl, glfw)")
	flagShape        = flag.String("shape", "", "Built-in mesh (cube, sphere)")
	flagFrames       = flag.Uint64("frames", 0, "Stop after this many frames")
	flagCaptureFrame = flag.Uint64("capture-frame", 0, "Write this frame to a PNG")
	flagWriteConfig  = flag.String("write-config", "", "Write the effective config to this path and exit")
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
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
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
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagShape != "" {
		cfg.Mesh.Shape = *flagShape
	}
	if *flagFrames > 0 {
		cfg.Animation.MaxFrames = *flagFrames
	}
	if *flagCaptureFrame > 0 {
		cfg.Debug.CaptureFrame = *flagCaptureFrame
	}
}
