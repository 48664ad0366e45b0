package frame

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/spinlight/pkg/math"
)

type recordingTarget struct {
	calls   []string
	models  []math.Mat4
	normals []math.Mat3
}

func (r *recordingTarget) Submit(model math.Mat4, normal math.Mat3) {
	r.calls = append(r.calls, "submit")
	r.models = append(r.models, model)
	r.normals = append(r.normals, normal)
}

func (r *recordingTarget) Draw() {
	r.calls = append(r.calls, "draw")
}

// countingDriver reports shutdown after limit presents.
type countingDriver struct {
	target *recordingTarget
	limit  int
	count  int
}

func (d *countingDriver) Next() bool {
	d.target.calls = append(d.target.calls, "present")
	d.count++
	return d.count < d.limit
}

func TestLoopOrderAndShutdown(t *testing.T) {
	target := &recordingTarget{}
	driver := &countingDriver{target: target, limit: 3}
	u := NewUpdater(oneDegree, xAxis)

	loop := &Loop{Updater: u, Target: target, Driver: driver}
	require.NoError(t, loop.Run(context.Background()))

	assert.Equal(t, []string{
		"submit", "draw", "present",
		"submit", "draw", "present",
		"submit", "draw", "present",
	}, target.calls)
	assert.Equal(t, uint64(3), u.Frames())
}

func TestLoopFirstFrameIsAlreadyRotated(t *testing.T) {
	target := &recordingTarget{}
	loop := &Loop{
		Updater:   NewUpdater(oneDegree, xAxis),
		Target:    target,
		Driver:    DriverFunc(func() bool { return true }),
		MaxFrames: 1,
	}
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, target.models, 1)
	assert.True(t, target.models[0].ApproxEqual(math.RotateX(oneDegree), 1e-6))
	assert.True(t, target.normals[0].ApproxEqual(math.RotateX(oneDegree).Mat3(), 1e-6))
}

func TestLoopMaxFrames(t *testing.T) {
	target := &recordingTarget{}
	loop := &Loop{
		Updater:   NewUpdater(oneDegree, xAxis),
		Target:    target,
		Driver:    DriverFunc(func() bool { return true }),
		MaxFrames: 360,
	}
	require.NoError(t, loop.Run(context.Background()))

	assert.Len(t, target.models, 360)
	assert.True(t, target.models[359].ApproxEqual(math.Identity(), 1e-4))
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := &recordingTarget{}
	frames := 0
	loop := &Loop{
		Updater: NewUpdater(oneDegree, xAxis),
		Target:  target,
		Driver: DriverFunc(func() bool {
			frames++
			if frames == 5 {
				cancel()
			}
			return true
		}),
	}

	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, target.models, 5)
}

func TestLoopHook(t *testing.T) {
	errStop := errors.New("stop")
	var seen []uint64
	loop := &Loop{
		Updater: NewUpdater(oneDegree, xAxis),
		Target:  &recordingTarget{},
		Driver:  DriverFunc(func() bool { return true }),
		AfterDraw: func(frame uint64) error {
			seen = append(seen, frame)
			if frame == 4 {
				return errStop
			}
			return nil
		},
	}

	err := loop.Run(context.Background())
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []uint64{1, 2, 3, 4}, seen)
}
