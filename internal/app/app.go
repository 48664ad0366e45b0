// Package app sets up the window, GPU context and scene, and runs the render loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/internal/engine/capture"
	"github.com/Faultbox/spinlight/internal/engine/frame"
	"github.com/Faultbox/spinlight/internal/engine/lighting"
	"github.com/Faultbox/spinlight/internal/engine/mesh"
	"github.com/Faultbox/spinlight/internal/engine/renderer"
	"github.com/Faultbox/spinlight/internal/engine/window"
	"github.com/Faultbox/spinlight/internal/logger"
	"github.com/Faultbox/spinlight/pkg/math"
)

// State is the lifecycle state of an App.
type State int

const (
	// StateUninitialized means setup has not completed.
	StateUninitialized State = iota
	// StateRunning means every GPU resource is bound and frames can be drawn.
	StateRunning
	// StateClosed means the GPU context and surface were released.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNotRunning is returned by Run when setup did not complete or Close was called.
var ErrNotRunning = errors.New("app is not running")

// GPU is the rendering context the loop draws with.
type GPU interface {
	frame.Target
	SetCamera(view, proj math.Mat4)
	SetLighting(p lighting.Phong)
	ReadPixels() (pixels []byte, width, height int)
	Close()
}

// Backend creates the platform resources. Tests substitute fakes.
type Backend struct {
	OpenSurface func(cfg window.Config) (window.Surface, error)
	NewGPU      func(m *mesh.Mesh, width, height int) (GPU, error)
}

// DefaultBackend uses a real window and OpenGL.
func DefaultBackend() Backend {
	return Backend{
		OpenSurface: window.Open,
		NewGPU: func(m *mesh.Mesh, width, height int) (GPU, error) {
			r, err := renderer.New(m, width, height)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// App owns the surface, the GPU context and the frame updater.
type App struct {
	cfg   *config.Config
	state State
	log   *zap.Logger

	surface window.Surface
	gpu     GPU

	camera   *camera.Fixed
	lighting lighting.Phong
	updater  *frame.Updater
	capture  *capture.Writer
}

// New performs the full setup with the default backend.
func New(cfg *config.Config, m *mesh.Mesh) (*App, error) {
	return NewWithBackend(cfg, m, DefaultBackend())
}

// NewWithBackend validates the geometry, opens the surface, builds the GPU
// context and uploads the static uniforms. Any failure releases what was
// already acquired and returns the error; the app is never left half set up.
func NewWithBackend(cfg *config.Config, m *mesh.Mesh, backend Backend) (*App, error) {
	a := &App{
		cfg:      cfg,
		state:    StateUninitialized,
		log:      logger.Named("app"),
		camera:   cameraFromConfig(cfg.Camera),
		lighting: lightingFromConfig(cfg.Lighting),
		updater:  updaterFromConfig(cfg.Animation),
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating mesh: %w", err)
	}

	var err error
	a.surface, err = backend.OpenSurface(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The surface size is read once; the projection does not follow resizes.
	width, height := a.surface.Size()

	a.gpu, err = backend.NewGPU(m, width, height)
	if err != nil {
		a.surface.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.gpu.SetCamera(a.camera.ViewMatrix(), a.camera.ProjectionMatrix(width, height))
	a.gpu.SetLighting(a.lighting)

	if cfg.Debug.CaptureFrame > 0 {
		a.capture = capture.NewWriter(cfg.Debug.CaptureDir, "spinlight_"+logger.RunID)
	}

	a.state = StateRunning
	a.log.Info("setup complete",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return a, nil
}

// State returns the lifecycle state.
func (a *App) State() State {
	return a.state
}

// Updater exposes the frame updater (read-only use).
func (a *App) Updater() *frame.Updater {
	return a.updater
}

// Run draws frames until the window closes, ctx is cancelled or the
// configured frame limit is reached.
func (a *App) Run(ctx context.Context) error {
	if a.state != StateRunning {
		return ErrNotRunning
	}

	loop := &frame.Loop{
		Updater:   a.updater,
		Target:    a.gpu,
		Driver:    frame.DriverFunc(a.present),
		MaxFrames: a.cfg.Animation.MaxFrames,
		AfterDraw: a.afterDraw(),
	}

	a.log.Info("starting render loop", zap.Uint64("max_frames", a.cfg.Animation.MaxFrames))
	err := loop.Run(ctx)
	a.log.Info("render loop stopped", zap.Uint64("frames", a.updater.Frames()))

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// present swaps buffers and pumps window events.
func (a *App) present() bool {
	a.surface.SwapBuffers()
	return !a.surface.PollQuit()
}

// afterDraw builds the per-frame hook: FPS logging and frame capture.
func (a *App) afterDraw() frame.Hook {
	frameCount := 0
	fpsTimer := time.Now()

	return func(n uint64) error {
		if a.capture != nil && n == a.cfg.Debug.CaptureFrame {
			pixels, w, h := a.gpu.ReadPixels()
			path, err := a.capture.WriteFrame(n, pixels, w, h)
			if err != nil {
				return fmt.Errorf("capturing frame %d: %w", n, err)
			}
			a.log.Info("frame captured", zap.Uint64("frame", n), zap.String("path", path))
		}

		if a.cfg.Debug.ShowFPS {
			frameCount++
			if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
				a.log.Debug("fps",
					zap.Float64("fps", float64(frameCount)/elapsed.Seconds()),
					zap.Uint64("frame", n),
				)
				frameCount = 0
				fpsTimer = time.Now()
			}
		}
		return nil
	}
}

// Close releases the GPU context and then the surface. Safe to call twice.
func (a *App) Close() {
	if a.state == StateClosed {
		return
	}
	a.log.Info("closing")

	if a.gpu != nil {
		a.gpu.Close()
		a.gpu = nil
	}
	if a.surface != nil {
		a.surface.Close()
		a.surface = nil
	}
	a.state = StateClosed
}
