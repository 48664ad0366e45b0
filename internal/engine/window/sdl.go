package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/engine/input"
	"github.com/Faultbox/spinlight/internal/logger"
)

// sdlSurface wraps an SDL2 window and OpenGL context.
type sdlSurface struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	input     *input.Input
}

func newSDLSurface(cfg Config) (*sdlSurface, error) {
	w := &sdlSurface{
		config: cfg,
		input:  input.New(),
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, &ContextUnavailableError{Backend: BackendSDL, Err: fmt.Errorf("SDL_Init failed: %w", err)}
	}

	// Set OpenGL attributes BEFORE creating window.
	// OpenGL 4.1 Core Profile is the newest macOS supports.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, &ContextUnavailableError{Backend: BackendSDL, Err: fmt.Errorf("SDL_CreateWindow failed: %w", err)}
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, &ContextUnavailableError{Backend: BackendSDL, Err: fmt.Errorf("SDL_GL_CreateContext failed: %w", err)}
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *sdlSurface) Close() {
	logger.Info("closing window", zap.String("backend", BackendSDL))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *sdlSurface) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the drawable size in pixels.
func (w *sdlSurface) Size() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// PollQuit drains pending SDL events.
func (w *sdlSurface) PollQuit() bool {
	quit := w.input.Update()
	for _, ev := range w.input.Events() {
		if ev.Type == input.EventWindowResize {
			// The projection is fixed at setup.
			logger.Debug("window resize ignored",
				zap.Int("width", ev.Width),
				zap.Int("height", ev.Height),
			)
		}
	}
	return quit
}
