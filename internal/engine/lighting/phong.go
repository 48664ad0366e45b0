// Package lighting holds the light parameters of the scene and a host-side
// evaluation of the lit fragment shader.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/spinlight/pkg/math"
)

// DefaultShininess is the specular exponent used by the lit shader.
const DefaultShininess = 32

// PointLight is a single point light source.
type PointLight struct {
	Position math.Vec3 // World position
	Color    math.Vec3 // RGB color, not clamped
}

// Phong describes the ambient + diffuse + specular model of the lit shader.
// The viewer sits at the world origin.
type Phong struct {
	Light     PointLight
	Ambient   math.Vec3
	Shininess float32
}

// Default returns the scene lighting: a white light at (1,1,1) and a dim
// grey ambient term.
func Default() Phong {
	return Phong{
		Light: PointLight{
			Position: math.Vec3{X: 1, Y: 1, Z: 1},
			Color:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Ambient:   math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Shininess: DefaultShininess,
	}
}

// Terms is the breakdown of a shaded color.
type Terms struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Color returns ambient + diffuse + specular. Components may exceed 1.
func (t Terms) Color() math.Vec3 {
	return t.Ambient.Add(t.Diffuse).Add(t.Specular)
}

// Evaluate computes the lighting terms for a world-space position and normal,
// exactly like the fragment shader does. The normal is normalized first, as
// the interpolated varying would be.
func (p Phong) Evaluate(position, normal math.Vec3) Terms {
	n := normal.Normalize()
	lightDir := p.Light.Position.Sub(position).Normalize()

	diff := max32(n.Dot(lightDir), 0)

	viewDir := position.Negate().Normalize()
	reflectDir := lightDir.Negate().Reflect(n)
	spec := pow32(max32(viewDir.Dot(reflectDir), 0), p.Shininess)

	return Terms{
		Ambient:  p.Ambient,
		Diffuse:  p.Light.Color.Scale(diff),
		Specular: p.Light.Color.Scale(spec),
	}
}

// Shade returns the final fragment color (alpha is always 1).
func (p Phong) Shade(position, normal math.Vec3) math.Vec3 {
	return p.Evaluate(position, normal).Color()
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func pow32(x, y float32) float32 {
	return float32(gomath.Pow(float64(x), float64(y)))
}
