package frame

import (
	"context"

	"github.com/Faultbox/spinlight/pkg/math"
)

// Target receives per-frame transforms and draws the mesh.
type Target interface {
	// Submit uploads the model and normal matrices.
	Submit(model math.Mat4, normal math.Mat3)
	// Draw clears the surface and draws the mesh.
	Draw()
}

// Driver paces the loop.
type Driver interface {
	// Next presents the finished frame and blocks until the display can take
	// another one. It returns false once the surface is gone.
	Next() bool
}

// DriverFunc adapts a function to Driver.
type DriverFunc func() bool

// Next calls f.
func (f DriverFunc) Next() bool { return f() }

// Hook runs after a frame is drawn and before it is presented. frame is
// 1-based. A non-nil error stops the loop.
type Hook func(frame uint64) error

// Loop repeatedly advances the updater and draws the result.
type Loop struct {
	Updater *Updater
	Target  Target
	Driver  Driver

	// MaxFrames stops the loop after that many frames; 0 runs until the
	// driver or the context stops it.
	MaxFrames uint64

	// AfterDraw is optional.
	AfterDraw Hook
}

// Run executes frames until ctx is cancelled, the driver reports shutdown,
// MaxFrames is reached or a hook fails. Only cancellation and hook failures
// produce an error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.Updater.Advance()
		l.Target.Submit(l.Updater.Model(), l.Updater.NormalMatrix())
		l.Target.Draw()

		n := l.Updater.Frames()
		if l.AfterDraw != nil {
			if err := l.AfterDraw(n); err != nil {
				return err
			}
		}

		if !l.Driver.Next() {
			return nil
		}
		if l.MaxFrames > 0 && n >= l.MaxFrames {
			return nil
		}
	}
}
