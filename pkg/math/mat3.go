package math

// Mat3 is a 3x3 matrix in column-major order, used for normal transforms.
type Mat3 [9]float32

// Identity3 returns a 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[8]*m[4]-m[5]*m[7]) +
		m[1]*(-m[8]*m[3]+m[5]*m[6]) +
		m[2]*(m[7]*m[3]-m[4]*m[6])
}

// Inverse returns the inverse of the matrix.
// ok is false (and the result zero) when the matrix is singular.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		return Mat3{}, false
	}
	id := 1.0 / det

	return Mat3{
		b01 * id, (-a22*a01 + a02*a21) * id, (a12*a01 - a02*a11) * id,
		b11 * id, (a22*a00 - a02*a20) * id, (-a12*a00 + a02*a10) * id,
		b21 * id, (-a21*a00 + a01*a20) * id, (a11*a00 - a01*a10) * id,
	}, true
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float32) bool {
	for i := range m {
		d := m[i] - other[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 block of m.
// It is computed in full even for pure rotations, so scaled or sheared model
// matrices transform normals correctly. ok is false when the block is singular.
func NormalMatrix(m Mat4) (Mat3, bool) {
	inv, ok := m.Mat3().Inverse()
	if !ok {
		return Mat3{}, false
	}
	return inv.Transpose(), true
}
