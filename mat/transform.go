package mat

import (
	"math"

	pcmat "github.com/seqsense/pcgol/mat"
)

// Scale multiplies rows 0, 1 and 2 by sx, sy and sz.
func (m *Matrix4x4) Scale(sx, sy, sz float32) {
	s := [3]float32{sx, sy, sz}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			m.m[i][j] *= s[i]
		}
	}
}

// Translate moves the origin along the matrix's own axes.
func (m *Matrix4x4) Translate(tx, ty, tz float32) {
	for j := 0; j < 4; j++ {
		m.m[3][j] += m.m[0][j]*tx + m.m[1][j]*ty + m.m[2][j]*tz
	}
}

// Rotate rotates by angle degrees around the axis (x, y, z).
// A zero length axis leaves m unchanged.
func (m *Matrix4x4) Rotate(angle, x, y, z float32) {
	mag := pcmat.NewVec3(x, y, z).Norm()
	if !(mag > 0) {
		return
	}
	x /= mag
	y /= mag
	z /= mag

	rad := float64(angle) * math.Pi / 180
	s := float32(math.Sin(rad))
	c := float32(math.Cos(rad))
	omc := 1 - c

	xs, ys, zs := x*s, y*s, z*s

	m.compose(Matrix4x4{m: Grid{
		{omc*x*x + c, omc*x*y - zs, omc*z*x + ys, 0},
		{omc*x*y + zs, omc*y*y + c, omc*y*z - xs, 0},
		{omc*z*x - ys, omc*y*z + xs, omc*z*z + c, 0},
		{0, 0, 0, 1},
	}})
}
