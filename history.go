package main

import (
	"github.com/seqsense/glmatrix/mat"
)

// history keeps the matrices replaced by mutating commands.
type history struct {
	history    []mat.Matrix4x4
	maxHistory int
}

func newHistory(n int) *history {
	h := &history{}
	h.SetMaxHistory(n)
	return h
}

func (h *history) MaxHistory() int {
	return h.maxHistory
}

func (h *history) SetMaxHistory(m int) {
	if m < 0 {
		m = 0
	}
	h.maxHistory = m
	if n := len(h.history); n > m {
		h.history = h.history[n-m:]
	}
}

func (h *history) push(m mat.Matrix4x4) {
	if h.maxHistory == 0 {
		return
	}
	h.history = append(h.history, m.Clone())
	if len(h.history) > h.maxHistory {
		h.history = h.history[1:]
	}
}

func (h *history) undo() (mat.Matrix4x4, bool) {
	n := len(h.history)
	if n == 0 {
		return mat.Matrix4x4{}, false
	}
	m := h.history[n-1]
	h.history = h.history[:n-1]
	return m, true
}
