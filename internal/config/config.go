// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"

	ShapeCube   = "cube"
	ShapeSphere = "sphere"
)

// Config holds all program settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Mesh      MeshConfig      `yaml:"mesh"`
	Camera    CameraConfig    `yaml:"camera"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Animation AnimationConfig `yaml:"animation"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings. The size is read once at startup.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// MeshConfig selects the built-in geometry.
type MeshConfig struct {
	Shape string `yaml:"shape"` // "cube" or "sphere"
}

// CameraConfig holds the fixed camera and projection.
type CameraConfig struct {
	Eye        [3]float32 `yaml:"eye"`
	Target     [3]float32 `yaml:"target"`
	Up         [3]float32 `yaml:"up"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// LightingConfig holds the point light and ambient term.
type LightingConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Ambient   [3]float32 `yaml:"ambient"`
	Shininess float32    `yaml:"shininess"`
}

// AnimationConfig holds the per-frame rotation.
type AnimationConfig struct {
	DegreesPerFrame float32    `yaml:"degrees_per_frame"`
	Axis            [3]float32 `yaml:"axis"`
	MaxFrames       uint64     `yaml:"max_frames"` // 0 = run until the window closes
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	ShowFPS      bool   `yaml:"show_fps"`
	CaptureFrame uint64 `yaml:"capture_frame"` // 1-based, 0 = off
	CaptureDir   string `yaml:"capture_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "spinlight",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
		},
		Mesh: MeshConfig{
			Shape: ShapeCube,
		},
		Camera: CameraConfig{
			Eye:        [3]float32{0, 0, 0.5},
			Target:     [3]float32{0, 0, -0.5},
			Up:         [3]float32{0, 1, 0},
			FOVDegrees: 90,
			Near:       0.1,
			Far:        100.0,
		},
		Lighting: LightingConfig{
			Position:  [3]float32{1, 1, 1},
			Color:     [3]float32{1, 1, 1},
			Ambient:   [3]float32{0.2, 0.2, 0.2},
			Shininess: 32,
		},
		Animation: AnimationConfig{
			DegreesPerFrame: 1,
			Axis:            [3]float32{1, 0, 0},
		},
		Debug: DebugConfig{
			CaptureDir: "captures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that would make setup fail or misbehave.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case BackendSDL, BackendGLFW:
	default:
		errs = append(errs, fmt.Errorf("unknown window backend %q", c.Window.Backend))
	}
	switch c.Mesh.Shape {
	case ShapeCube, ShapeSphere:
	default:
		errs = append(errs, fmt.Errorf("unknown mesh shape %q", c.Mesh.Shape))
	}
	if c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %.1f must be in (0, 180)", c.Camera.FOVDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera depth range %.3f..%.3f is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Lighting.Shininess <= 0 {
		errs = append(errs, fmt.Errorf("lighting shininess %.1f must be positive", c.Lighting.Shininess))
	}
	if c.Animation.Axis == [3]float32{} {
		errs = append(errs, errors.New("animation axis must not be zero"))
	}
	if c.Debug.CaptureFrame > 0 && c.Animation.MaxFrames > 0 && c.Debug.CaptureFrame > c.Animation.MaxFrames {
		errs = append(errs, fmt.Errorf("capture frame %d is after the last frame %d", c.Debug.CaptureFrame, c.Animation.MaxFrames))
	}
	return errors.Join(errs...)
}
