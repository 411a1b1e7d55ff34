package statemachine

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/statetrack/pkg/logger"
)

// DefaultHistorySize is the number of states kept in history unless configured otherwise.
const DefaultHistorySize = 3

// Callback is a side effect run when the machine is written to a state.
// A panicking callback is not recovered: the panic reaches the caller of
// SetState or Trigger and the remaining callbacks are skipped.
type Callback func()

// Machine tracks the current state, a bounded history of recent states
// and the callbacks registered per state.
//
// Machine performs no locking. Use it from a single goroutine or guard
// it externally. Callbacks run synchronously on the caller's goroutine
// and may call back into the machine.
type Machine[S comparable] struct {
	states   []S
	current  S
	history  *history[S]
	registry *registry[S]
	logger   *slog.Logger
}

// New creates a machine over the declared states, starting in starting.
// The declared states are informational only and starting is not checked
// against them.
func New[S comparable](states []S, starting S, opts ...Option) *Machine[S] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Machine[S]{
		states:   slices.Clone(states),
		current:  starting,
		history:  newHistory(o.historySize, starting),
		registry: newRegistry[S](),
		logger:   o.logger.With(logger.Component("statemachine")),
	}
	m.logger.Debug("state machine created", logger.State(starting), logger.HistorySize(o.historySize))
	return m
}

// State returns the current state.
func (m *Machine[S]) State() S {
	return m.current
}

// SetState dispatches the callbacks registered for s, then makes s the
// current state and records it in history. Writing the current state
// again dispatches as well.
//
// Callbacks observe the previous state through State.
func (m *Machine[S]) SetState(s S) {
	m.dispatch(s, false)

	m.current = s
	m.history.push(s)
}

// Trigger re-runs the callbacks of the current state without touching
// the current state or history.
func (m *Machine[S]) Trigger() {
	m.dispatch(m.current, true)
}

// History returns recent states, newest first. The first element is the
// current state.
func (m *Machine[S]) History() []S {
	return m.history.snapshot()
}

// HistorySize returns the maximum number of states kept in history.
func (m *Machine[S]) HistorySize() int {
	return m.history.capacity
}

// SetHistorySize changes the history capacity. Shrinking drops the oldest
// entries; the current state is always kept. Sizes below 1 are ignored.
func (m *Machine[S]) SetHistorySize(size int) {
	if size < 1 {
		return
	}
	m.history.resize(size)
	m.logger.Debug("history resized", logger.HistorySize(size))
}

// Previous returns the state recorded before the latest write.
func (m *Machine[S]) Previous() (S, bool) {
	return m.history.at(1)
}

// States returns the declared state set in declaration order.
func (m *Machine[S]) States() []S {
	return slices.Clone(m.states)
}

// Declares reports whether s is part of the declared state set.
// Membership is never enforced by the machine itself.
func (m *Machine[S]) Declares(s S) bool {
	return slices.Contains(m.states, s)
}

// On registers cb to run whenever the machine is written to state.
// Repeated registrations are kept and each one runs. A nil cb is ignored.
func (m *Machine[S]) On(key Key, state S, cb Callback) {
	if cb == nil {
		return
	}
	m.registry.add(key, state, cb)
	m.logger.Debug("callback registered", logger.Key(key), logger.State(state))
}

// OnStates registers one callback per state under the same key.
// The order in which distinct states are registered is unspecified.
func (m *Machine[S]) OnStates(key Key, callbacks map[S]Callback) {
	for state, cb := range callbacks {
		m.On(key, state, cb)
	}
}

// RemoveCallback removes all callbacks registered under key for state.
// It is a no-op when nothing matches.
func (m *Machine[S]) RemoveCallback(state S, key Key) {
	if n := m.registry.remove(state, key); n > 0 {
		m.logger.Debug("callbacks removed", logger.Key(key), logger.State(state), logger.Callbacks(n))
	}
}

// RemoveCallbacks removes all callbacks registered under key for every state.
// It is a no-op when nothing matches.
func (m *Machine[S]) RemoveCallbacks(key Key) {
	if n := m.registry.removeKey(key); n > 0 {
		m.logger.Debug("callbacks removed", logger.Key(key), logger.Callbacks(n))
	}
}

// CallbackCount returns the number of callbacks registered for state.
func (m *Machine[S]) CallbackCount(state S) int {
	return m.registry.count(state)
}

// HasKey reports whether any callback is registered under key.
func (m *Machine[S]) HasKey(key Key) bool {
	return m.registry.hasKey(key)
}

func (m *Machine[S]) dispatch(state S, trigger bool) {
	callbacks := m.registry.callbacks(state)
	m.logger.Debug("dispatching callbacks",
		logger.State(state),
		logger.Callbacks(len(callbacks)),
		slog.Bool("trigger", trigger),
	)

	for _, cb := range callbacks {
		cb()
	}
}
