package mat

import (
	"testing"
)

var gridA = Grid{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{8, 7, 6, 5},
	{4, 3, 2, 1},
}

func assertNear(t *testing.T, m Matrix4x4, i, j int, expected float32) {
	t.Helper()
	diff := m.At(i, j) - expected
	if diff < -0.01 || 0.01 < diff {
		t.Errorf("m(%d, %d) expected to be %0.3f, got %0.3f",
			i, j, expected, m.At(i, j),
		)
	}
}

func TestNew(t *testing.T) {
	g := New().Grid()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if g[i][j] != expected {
				t.Errorf("m(%d, %d) expected to be %0.1f, got %0.3f", i, j, expected, g[i][j])
			}
		}
	}
}

func TestCopy(t *testing.T) {
	g := gridA
	m := FromGrid(g)
	g[0][0] = 100
	if m.At(0, 0) != 1 {
		t.Error("FromGrid must copy the grid")
	}

	c := m.Clone()
	c.Scale(2, 2, 2)
	if !m.Equal(FromGrid(gridA)) {
		t.Error("Clone must not share the grid")
	}

	out := m.Grid()
	out[1][1] = 100
	if m.At(1, 1) != 6 {
		t.Error("Grid must return a copy")
	}
}

func TestMul(t *testing.T) {
	a := FromGrid(gridA)

	if r := New().Mul(a); !r.Equal(a) {
		t.Errorf("identity * A expected to be\n%v\ngot\n%v", a, r)
	}
	if r := a.Mul(New()); !r.Equal(a) {
		t.Errorf("A * identity expected to be\n%v\ngot\n%v", a, r)
	}

	expected := FromGrid(Grid{
		{51, 47, 43, 39},
		{123, 119, 115, 111},
		{111, 115, 119, 123},
		{39, 43, 47, 51},
	})
	if r := a.Mul(a); !r.Equal(expected) {
		t.Errorf("A * A expected to be\n%v\ngot\n%v", expected, r)
	}
	if !a.Equal(FromGrid(gridA)) {
		t.Error("Mul must not modify the operands")
	}
}

func TestMul_Order(t *testing.T) {
	s := New()
	s.Scale(2, 2, 2)
	tr := New()
	tr.Translate(1, 2, 3)

	st := s.Mul(tr)
	ts := tr.Mul(s)
	if st.Equal(ts) {
		t.Fatal("Mul must not be commutative for scale and translate")
	}
	assertNear(t, st, 3, 0, 1)
	assertNear(t, ts, 3, 0, 2)
}

func TestEqual(t *testing.T) {
	a := FromGrid(gridA)
	b := FromGrid(gridA)

	testCases := map[string]struct {
		a, b     Matrix4x4
		expected bool
	}{
		"Same":      {a, b, true},
		"Self":      {a, a, true},
		"Identity":  {New(), New(), true},
		"Different": {a, New(), false},
		"WithinEpsilon": {
			New(),
			FromGrid(Grid{
				{1, 1e-17, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			}),
			true,
		},
		"OutOfEpsilon": {
			New(),
			FromGrid(Grid{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 1e-6, 1},
			}),
			false,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if eq := tt.a.Equal(tt.b); eq != tt.expected {
				t.Errorf("Equal is expected to be %v", tt.expected)
			}
			if eq := tt.b.Equal(tt.a); eq != tt.expected {
				t.Errorf("Equal must be symmetric")
			}
			if neq := tt.a.NotEqual(tt.b); neq == tt.expected {
				t.Errorf("NotEqual is expected to be %v", !tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	expected := "1.000 0.000 0.000 0.000\n" +
		"0.000 1.000 0.000 0.000\n" +
		"0.000 0.000 1.000 0.000\n" +
		"0.000 0.000 0.000 1.000"
	if s := New().String(); s != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, s)
	}
}
