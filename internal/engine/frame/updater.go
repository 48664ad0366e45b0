// Package frame advances the model transform and drives the render loop.
package frame

import (
	"github.com/Faultbox/spinlight/pkg/math"
)

// Updater owns the model matrix and the normal matrix derived from it.
type Updater struct {
	model  math.Mat4
	normal math.Mat3

	step float32
	axis math.Vec3

	frames uint64
}

// NewUpdater creates an updater at the identity transform that rotates by
// step radians about axis on every Advance.
func NewUpdater(step float32, axis math.Vec3) *Updater {
	return &Updater{
		model:  math.Identity(),
		normal: math.Identity3(),
		step:   step,
		axis:   axis,
	}
}

// Advance rotates the model matrix by one step on top of all previous steps
// and recomputes the normal matrix as the inverse-transpose of its 3x3 part.
// A singular 3x3 part leaves the previous normal matrix in place.
func (u *Updater) Advance() {
	u.model = math.Rotate(u.model, u.step, u.axis)
	if nm, ok := math.NormalMatrix(u.model); ok {
		u.normal = nm
	}
	u.frames++
}

// Model returns the current model matrix.
func (u *Updater) Model() math.Mat4 {
	return u.model
}

// NormalMatrix returns the current normal matrix.
func (u *Updater) NormalMatrix() math.Mat3 {
	return u.normal
}

// Frames returns how many times Advance has been called.
func (u *Updater) Frames() uint64 {
	return u.frames
}
