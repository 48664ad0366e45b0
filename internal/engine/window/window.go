// Package window creates the rendering surface and its OpenGL context.
package window

import (
	"fmt"
	"runtime"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Surface is a window with a current OpenGL 4.1 core context.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	// SwapBuffers presents the back buffer, waiting for vsync if enabled.
	SwapBuffers()
	// PollQuit pumps window events and reports whether the user closed the window.
	PollQuit() bool
	// Close destroys the context and the window.
	Close()
}

// ContextUnavailableError is returned when the window or its GL context
// cannot be created.
type ContextUnavailableError struct {
	Backend string
	Err     error
}

func (e *ContextUnavailableError) Error() string {
	return fmt.Sprintf("%s: rendering context unavailable: %v", e.Backend, e.Err)
}

func (e *ContextUnavailableError) Unwrap() error {
	return e.Err
}

// Open creates a window using the configured backend.
func Open(cfg Config) (Surface, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDLSurface(cfg)
	case BackendGLFW:
		return newGLFWSurface(cfg)
	default:
		return nil, &ContextUnavailableError{
			Backend: cfg.Backend,
			Err:     fmt.Errorf("unknown window backend %q", cfg.Backend),
		}
	}
}
