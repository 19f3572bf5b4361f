package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/glmatrix/mat"
)

// script is a sequence of console commands loaded from YAML.
type script struct {
	Initial  *mat.Matrix4x4 `yaml:"initial"`
	History  *int           `yaml:"history"`
	Commands []string       `yaml:"commands"`
}

func loadScript(r io.Reader) (*script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &script{}
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return s, nil
}

func (s *script) newConsole() *console {
	n := defaultMaxHistory
	if s.History != nil {
		n = *s.History
	}
	c := newConsole(n)
	if s.Initial != nil {
		c.SetMatrix(*s.Initial)
	}
	return c
}

// run executes the commands in order and stops at the first failure.
func (s *script) run(c *console, w io.Writer) error {
	for i, line := range s.Commands {
		res, err := c.Run(line)
		if err != nil {
			return fmt.Errorf("command %d %q: %w", i, line, err)
		}
		if res == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "> %s\n%s\n", line, res); err != nil {
			return err
		}
	}
	return nil
}

type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

var errOutputFormat = errors.New("unknown output format")

func writeMatrix(w io.Writer, m mat.Matrix4x4, format outputFormat) error {
	switch format {
	case outputText:
		_, err := fmt.Fprintln(w, m.String())
		return err
	case outputYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %s", errOutputFormat, format)
	}
}
