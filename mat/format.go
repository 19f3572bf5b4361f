package mat

import (
	"strconv"
	"strings"
)

// String formats m one row per line with 3 decimals.
func (m Matrix4x4) String() string {
	lines := make([]string, 4)
	for i, row := range m.m {
		vals := make([]string, 4)
		for j, v := range row {
			vals[j] = strconv.FormatFloat(float64(v), 'f', 3, 32)
		}
		lines[i] = strings.Join(vals, " ")
	}
	return strings.Join(lines, "\n")
}
