package statemachine

import "log/slog"

type registration[S comparable] struct {
	key      Key
	state    S
	callback Callback
}

// Builder provides a fluent API for building a machine with callbacks
// registered up front.
type Builder[S comparable] struct {
	states        []S
	starting      S
	opts          []Option
	currentKey    Key
	registrations []registration[S]
}

// NewBuilder creates a builder for a machine over states, starting in starting.
func NewBuilder[S comparable](states []S, starting S) *Builder[S] {
	return &Builder[S]{
		states:   states,
		starting: starting,
	}
}

// HistorySize sets the history capacity of the machine.
func (b *Builder[S]) HistorySize(size int) *Builder[S] {
	b.opts = append(b.opts, WithHistorySize(size))
	return b
}

// Logger sets the machine logger.
func (b *Builder[S]) Logger(l *slog.Logger) *Builder[S] {
	b.opts = append(b.opts, WithLogger(l))
	return b
}

// For sets the key used by subsequent On calls.
func (b *Builder[S]) For(key Key) *Builder[S] {
	b.currentKey = key
	return b
}

// On queues a callback for state under the current key.
func (b *Builder[S]) On(state S, cb Callback) *Builder[S] {
	b.registrations = append(b.registrations, registration[S]{
		key:      b.currentKey,
		state:    state,
		callback: cb,
	})
	return b
}

// Build returns the machine with all queued callbacks registered in order.
func (b *Builder[S]) Build() *Machine[S] {
	m := New(b.states, b.starting, b.opts...)
	for _, r := range b.registrations {
		m.On(r.key, r.state, r.callback)
	}
	return m
}
