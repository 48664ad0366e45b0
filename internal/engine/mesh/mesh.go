// Package mesh holds the immutable geometry uploaded to the GPU.
package mesh

import "fmt"

// Mesh is an indexed triangle mesh with per-vertex normals.
// Positions and Normals are flat xyz triples; Indices reference vertices.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// DegenerateError reports geometry that cannot be drawn as indexed triangles.
type DegenerateError struct {
	Reason string
}

func (e *DegenerateError) Error() string {
	return "degenerate geometry: " + e.Reason
}

func degenerate(format string, args ...any) error {
	return &DegenerateError{Reason: fmt.Sprintf(format, args...)}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the buffers line up and every index is in range.
func (m *Mesh) Validate() error {
	if m == nil || len(m.Positions) == 0 {
		return degenerate("no vertex positions")
	}
	if len(m.Positions)%3 != 0 {
		return degenerate("position buffer length %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) {
		return degenerate("%d normal floats for %d position floats", len(m.Normals), len(m.Positions))
	}
	if len(m.Indices) == 0 {
		return degenerate("no indices")
	}
	if len(m.Indices)%3 != 0 {
		return degenerate("index count %d is not a multiple of 3", len(m.Indices))
	}

	vertexCount := m.VertexCount()
	if vertexCount > 1<<16 {
		return degenerate("%d vertices exceed the 16-bit index range", vertexCount)
	}
	for i, idx := range m.Indices {
		if int(idx) >= vertexCount {
			return degenerate("index %d at position %d is out of range (vertices: %d)", idx, i, vertexCount)
		}
	}
	return nil
}
