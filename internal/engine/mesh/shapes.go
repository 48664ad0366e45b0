package mesh

import (
	"fmt"
	gomath "math"
)

// Shape names accepted by ByName.
const (
	ShapeCube   = "cube"
	ShapeSphere = "sphere"
)

// ByName returns one of the built-in meshes.
func ByName(name string) (*Mesh, error) {
	switch name {
	case ShapeCube, "":
		return Cube(0.25), nil
	case ShapeSphere:
		return UVSphere(0.3, 32, 16), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// cubeFaces lists the outward normal and the four corners of every face,
// counter-clockwise when seen from outside.
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

// Cube returns an axis-aligned cube centered on the origin with flat face
// normals. halfSize is the distance from the center to each face.
func Cube(halfSize float32) *Mesh {
	m := &Mesh{
		Positions: make([]float32, 0, 6*4*3),
		Normals:   make([]float32, 0, 6*4*3),
		Indices:   make([]uint16, 0, 6*6),
	}

	for _, face := range cubeFaces {
		base := uint16(len(m.Positions) / 3)
		for _, c := range face.corners {
			m.Positions = append(m.Positions, c[0]*halfSize, c[1]*halfSize, c[2]*halfSize)
			m.Normals = append(m.Normals, face.normal[0], face.normal[1], face.normal[2])
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// UVSphere returns a latitude/longitude sphere with smooth normals.
func UVSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		theta := float64(r) * gomath.Pi / float64(rings)
		sinT, cosT := gomath.Sincos(theta)
		for s := 0; s <= segments; s++ {
			phi := float64(s) * 2 * gomath.Pi / float64(segments)
			sinP, cosP := gomath.Sincos(phi)

			nx := float32(sinT * cosP)
			ny := float32(cosT)
			nz := float32(sinT * sinP)
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Positions = append(m.Positions, nx*radius, ny*radius, nz*radius)
		}
	}

	stride := uint16(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint16(r)*stride + uint16(s)
			b := a + stride
			m.Indices = append(m.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return m
}
