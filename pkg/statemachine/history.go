package statemachine

import "slices"

// history is a fixed-capacity, most-recent-first record of states.
type history[S comparable] struct {
	items    []S
	capacity int
}

func newHistory[S comparable](capacity int, initial S) *history[S] {
	items := make([]S, 1, capacity)
	items[0] = initial
	return &history[S]{items: items, capacity: capacity}
}

// push prepends s and drops the oldest entry once capacity is exceeded.
func (h *history[S]) push(s S) {
	if len(h.items) < h.capacity {
		var zero S
		h.items = append(h.items, zero)
	}
	copy(h.items[1:], h.items)
	h.items[0] = s
}

// resize changes the capacity, dropping the oldest entries that no longer fit.
func (h *history[S]) resize(capacity int) {
	if len(h.items) > capacity {
		clear(h.items[capacity:])
		h.items = h.items[:capacity]
	}
	h.capacity = capacity
}

func (h *history[S]) at(i int) (S, bool) {
	if i < 0 || i >= len(h.items) {
		var zero S
		return zero, false
	}
	return h.items[i], true
}

func (h *history[S]) snapshot() []S {
	return slices.Clone(h.items)
}
