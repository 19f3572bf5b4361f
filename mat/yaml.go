package mat

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var errGridRows = errors.New("matrix must have 4 rows")

// MarshalYAML encodes m as four rows of four values.
func (m Matrix4x4) MarshalYAML() (interface{}, error) {
	rows := make([][]float32, 4)
	for i := range rows {
		rows[i] = m.m[i][:]
	}
	n := &yaml.Node{}
	if err := n.Encode(rows); err != nil {
		return nil, err
	}
	for _, row := range n.Content {
		row.Style = yaml.FlowStyle
	}
	return n, nil
}

func (m *Matrix4x4) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]float32
	if err := value.Decode(&rows); err != nil {
		return err
	}
	if len(rows) != 4 {
		return fmt.Errorf("%w, got %d", errGridRows, len(rows))
	}
	var g Grid
	for i, row := range rows {
		if len(row) != 4 {
			return fmt.Errorf("row %d must have 4 values, got %d", i, len(row))
		}
		copy(g[i][:], row)
	}
	m.m = g
	return nil
}
