// Package camera provides the fixed camera used to view the spinning mesh.
package camera

import (
	"github.com/Faultbox/spinlight/pkg/math"
)

// Fixed is a camera that never moves after setup.
type Fixed struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FOVY float32 // Vertical field of view (radians)
	Near float32
	Far  float32
}

// ViewMatrix returns the view matrix for this camera.
func (c *Fixed) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a surface of the
// given size. The aspect is taken once, at setup; resizes are not tracked.
func (c *Fixed) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.FOVY, aspect, c.Near, c.Far)
}
