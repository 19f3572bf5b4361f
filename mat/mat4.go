package mat

// Grid is a row-major 4x4 grid, indexed as g[row][col].
type Grid [4][4]float32

// Matrix4x4 is a homogeneous transform. Its zero value is the zero matrix,
// use New to get an identity.
type Matrix4x4 struct {
	m Grid
}

// New returns the identity matrix.
func New() Matrix4x4 {
	return Matrix4x4{m: Grid{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// FromGrid copies g into a new matrix.
func FromGrid(g Grid) Matrix4x4 {
	return Matrix4x4{m: g}
}

// Clone returns an independent copy of m.
func (m Matrix4x4) Clone() Matrix4x4 {
	return Matrix4x4{m: m.m}
}

// Grid returns a copy of the underlying grid.
func (m Matrix4x4) Grid() Grid {
	return m.m
}

// At returns m[row][col].
func (m Matrix4x4) At(row, col int) float32 {
	return m.m[row][col]
}

// Mul returns m * a. Neither operand is modified.
func (m Matrix4x4) Mul(a Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.m[i][k] * a.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// Equal reports whether all entries differ by less than the float64
// machine epsilon.
func (m Matrix4x4) Equal(a Matrix4x4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !floatEqual(m.m[i][j], a.m[i][j]) {
				return false
			}
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (m Matrix4x4) NotEqual(a Matrix4x4) bool {
	return !m.Equal(a)
}

// compose replaces m with m * d.
func (m *Matrix4x4) compose(d Matrix4x4) {
	*m = m.Mul(d)
}
