package mat

import (
	"math"
)

// Frustum applies an off-axis perspective projection.
// It does nothing unless right > left, top > bottom, far > near and both
// clipping distances are positive.
func (m *Matrix4x4) Frustum(left, right, bottom, top, near, far float32) {
	dx := right - left
	dy := top - bottom
	dz := far - near
	if dx <= 0 || dy <= 0 || dz <= 0 || near <= 0 || far <= 0 {
		return
	}

	m.compose(Matrix4x4{m: Grid{
		{2 * near / dx, 0, 0, 0},
		{0, 2 * near / dy, 0, 0},
		{(right + left) / dx, (top + bottom) / dy, -(near + far) / dz, -1},
		{0, 0, -2 * near * far / dz, 0},
	}})
}

// Perspective applies a symmetric frustum from a vertical field of view in
// degrees and an aspect ratio (width / height).
func (m *Matrix4x4) Perspective(fovy, aspect, near, far float32) {
	h := float32(math.Tan(float64(fovy)/360*math.Pi)) * near
	w := h * aspect
	m.Frustum(-w, w, -h, h, near, far)
}
