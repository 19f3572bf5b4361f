package main

import (
	"errors"
	"strconv"
	"strings"

	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/glmatrix/mat"
)

const (
	defaultMaxHistory = 32
	maxHistoryLimit   = 1 << 16
)

type console struct {
	m    mat.Matrix4x4
	hist *history
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errNothingToUndo = errors.New("nothing to undo")
var errHistorySize = errors.New("history size out of range")

func newConsole(maxHistory int) *console {
	return &console{
		m:    mat.New(),
		hist: newHistory(maxHistory),
	}
}

// Matrix returns the current matrix.
func (c *console) Matrix() mat.Matrix4x4 {
	return c.m
}

// SetMatrix replaces the current matrix without recording history.
func (c *console) SetMatrix(m mat.Matrix4x4) {
	c.m = m
}

func (c *console) apply(fn func(m *mat.Matrix4x4)) [][]float32 {
	c.hist.push(c.m)
	fn(&c.m)
	return gridRows(c.m)
}

func gridRows(m mat.Matrix4x4) [][]float32 {
	g := m.Grid()
	rows := make([][]float32, 4)
	for i := range g {
		rows[i] = g[i][:]
	}
	return rows
}

func gridOf(args []float32) mat.Grid {
	var g mat.Grid
	for i := 0; i < 4; i++ {
		copy(g[i][:], args[4*i:4*i+4])
	}
	return g
}

var consoleCommands = map[string]func(c *console, args []float32) ([][]float32, error){
	"show": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return gridRows(c.m), nil
	},
	"identity": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) { *m = mat.New() }), nil
	},
	"set": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 16 {
			return nil, errArgumentNumber
		}
		g := gridOf(args)
		return c.apply(func(m *mat.Matrix4x4) { *m = mat.FromGrid(g) }), nil
	},
	"mul": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 16 {
			return nil, errArgumentNumber
		}
		a := mat.FromGrid(gridOf(args))
		return c.apply(func(m *mat.Matrix4x4) { *m = m.Mul(a) }), nil
	},
	"scale": func(c *console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1:
			return c.apply(func(m *mat.Matrix4x4) { m.Scale(args[0], args[0], args[0]) }), nil
		case 3:
			return c.apply(func(m *mat.Matrix4x4) { m.Scale(args[0], args[1], args[2]) }), nil
		default:
			return nil, errArgumentNumber
		}
	},
	"translate": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) { m.Translate(args[0], args[1], args[2]) }), nil
	},
	"rotate": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 4 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) { m.Rotate(args[0], args[1], args[2], args[3]) }), nil
	},
	"frustum": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 6 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) {
			m.Frustum(args[0], args[1], args[2], args[3], args[4], args[5])
		}), nil
	},
	"perspective": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 4 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) { m.Perspective(args[0], args[1], args[2], args[3]) }), nil
	},
	"ortho": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 6 {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Matrix4x4) {
			m.Orthographic(args[0], args[1], args[2], args[3], args[4], args[5])
		}), nil
	},
	"transform": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		v := c.m.Transform(pcmat.NewVec3(args[0], args[1], args[2]))
		return [][]float32{{v[0], v[1], v[2]}}, nil
	},
	"transform_affine": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		v := c.m.TransformAffine(pcmat.NewVec3(args[0], args[1], args[2]))
		return [][]float32{{v[0], v[1], v[2]}}, nil
	},
	"undo": func(c *console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		m, ok := c.hist.undo()
		if !ok {
			return nil, errNothingToUndo
		}
		c.m = m
		return gridRows(c.m), nil
	},
	"max_history": func(c *console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
			return [][]float32{{float32(c.hist.MaxHistory())}}, nil
		case 1:
			if !(0 <= args[0] && args[0] <= maxHistoryLimit) {
				return nil, errHistorySize
			}
			c.hist.SetMaxHistory(int(args[0]))
			return [][]float32{{float32(c.hist.MaxHistory())}}, nil
		default:
			return nil, errArgumentNumber
		}
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
