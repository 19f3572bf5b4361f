package mat

// Orthographic applies a parallel projection. Reversed ranges are allowed,
// empty ones leave m unchanged.
func (m *Matrix4x4) Orthographic(left, right, bottom, top, near, far float32) {
	dx := right - left
	dy := top - bottom
	dz := far - near
	if dx == 0 || dy == 0 || dz == 0 {
		return
	}

	o := New()
	o.m[0][0] = 2 / dx
	o.m[1][1] = 2 / dy
	o.m[2][2] = -2 / dz
	o.m[3][0] = -(right + left) / dx
	o.m[3][1] = -(top + bottom) / dy
	o.m[3][2] = -(near + far) / dz
	m.compose(o)
}
