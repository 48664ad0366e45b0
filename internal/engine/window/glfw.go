package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/logger"
)

// glfwSurface wraps a GLFW window and its OpenGL context.
type glfwSurface struct {
	config Config
	window *glfw.Window
}

func newGLFWSurface(cfg Config) (*glfwSurface, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, &ContextUnavailableError{Backend: BackendGLFW, Err: fmt.Errorf("glfwInit failed: %w", err)}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &ContextUnavailableError{Backend: BackendGLFW, Err: fmt.Errorf("glfwCreateWindow failed: %w", err)}
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		logger.Debug("window resize ignored",
			zap.Int("width", width),
			zap.Int("height", height),
		)
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &glfwSurface{config: cfg, window: win}, nil
}

// Close destroys the window and terminates GLFW.
func (w *glfwSurface) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwSurface) SwapBuffers() {
	w.window.SwapBuffers()
}

// Size returns the framebuffer size in pixels.
func (w *glfwSurface) Size() (int, int) {
	return w.window.GetFramebufferSize()
}

// PollQuit processes pending events and reports a close request.
func (w *glfwSurface) PollQuit() bool {
	glfw.PollEvents()
	return w.window.ShouldClose()
}
