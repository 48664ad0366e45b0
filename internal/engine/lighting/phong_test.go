package lighting

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/spinlight/pkg/math"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got math.Vec3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msg)
	assert.InDelta(t, want.Y, got.Y, eps, msg)
	assert.InDelta(t, want.Z, got.Z, eps, msg)
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, p.Light.Position)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, p.Light.Color)
	assert.Equal(t, math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}, p.Ambient)
	assert.Equal(t, float32(32), p.Shininess)
}

func TestDiffuseFacingLight(t *testing.T) {
	p := Default()
	pos := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	normal := p.Light.Position.Sub(pos) // straight at the light

	terms := p.Evaluate(pos, normal)
	assertVec(t, p.Light.Color, terms.Diffuse, "full diffuse when facing the light")
	assert.GreaterOrEqual(t, terms.Diffuse.X, terms.Ambient.X)
	assert.GreaterOrEqual(t, terms.Diffuse.Y, terms.Ambient.Y)
	assert.GreaterOrEqual(t, terms.Diffuse.Z, terms.Ambient.Z)
}

func TestDiffuseFacingAway(t *testing.T) {
	p := Default()
	pos := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	normal := pos.Sub(p.Light.Position)

	terms := p.Evaluate(pos, normal)
	assert.Equal(t, math.Vec3{}, terms.Diffuse)
	assert.Equal(t, math.Vec3{}, terms.Specular)
	assertVec(t, p.Ambient, terms.Color(), "only ambient is left")
}

func TestSpecularParallelToView(t *testing.T) {
	p := Default()
	p.Light.Position = math.Vec3{Z: 1}
	pos := math.Vec3{Z: -1}
	normal := math.Vec3{Z: 1}

	terms := p.Evaluate(pos, normal)
	assertVec(t, p.Light.Color, terms.Specular, "reflection points at the viewer")
}

func TestSpecularPerpendicularToView(t *testing.T) {
	p := Default()
	p.Light.Position = math.Vec3{X: 1, Z: -1}
	pos := math.Vec3{Z: -1}
	normal := math.Vec3{Z: 1}

	terms := p.Evaluate(pos, normal)
	assertVec(t, math.Vec3{}, terms.Specular, "reflection is perpendicular to the view direction")
}

func TestShadeFixture(t *testing.T) {
	p := Default()

	got := p.Shade(math.Vec3{}, math.Vec3{Z: 1})

	// Light direction is (1,1,1)/sqrt(3); the view vector from the origin to
	// itself is zero, so there is no specular highlight.
	diffuse := float32(1 / gomath.Sqrt(3))
	want := math.Vec3{X: 0.2 + diffuse, Y: 0.2 + diffuse, Z: 0.2 + diffuse}
	assertVec(t, want, got, "ambient + diffuse")
}

func TestShadeIsNotClamped(t *testing.T) {
	p := Default()
	p.Light.Position = math.Vec3{Z: 1}

	got := p.Shade(math.Vec3{Z: -1}, math.Vec3{Z: 1})
	// ambient 0.2 + diffuse 1 + specular 1
	assertVec(t, math.Vec3{X: 2.2, Y: 2.2, Z: 2.2}, got, "color above unit range")
}

func TestEvaluateNormalizesNormal(t *testing.T) {
	p := Default()
	pos := math.Vec3{X: 0.1, Y: -0.2, Z: -0.4}

	a := p.Evaluate(pos, math.Vec3{X: 0, Y: 0, Z: 5})
	b := p.Evaluate(pos, math.Vec3{X: 0, Y: 0, Z: 1})
	assertVec(t, b.Color(), a.Color(), "normal length must not matter")
}
