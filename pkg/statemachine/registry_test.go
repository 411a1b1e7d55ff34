package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statetrack/pkg/statemachine"
)

// recorder collects callback names in dispatch order.
type recorder struct {
	calls []string
}

func (r *recorder) cb(name string) statemachine.Callback {
	return func() { r.calls = append(r.calls, name) }
}

func (r *recorder) take() []string {
	out := r.calls
	r.calls = nil
	return out
}

func TestOn(t *testing.T) {
	t.Parallel()

	t.Run("preserves registration order", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		rec := &recorder{}
		k1, k2 := statemachine.NewKey(), statemachine.NewKey()

		m.On(k1, Running, rec.cb("a"))
		m.On(k2, Running, rec.cb("b"))
		m.On(k1, Running, rec.cb("c"))

		m.SetState(Running)
		assert.Equal(t, []string{"a", "b", "c"}, rec.take())
	})

	t.Run("keeps duplicate registrations", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()

		calls := 0
		cb := func() { calls++ }
		m.On(key, Done, cb)
		m.On(key, Done, cb)

		m.SetState(Done)
		assert.Equal(t, 2, calls)
		assert.Equal(t, 2, m.CallbackCount(Done))
	})

	t.Run("ignores nil callback", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()

		m.On(key, Running, nil)
		assert.Equal(t, 0, m.CallbackCount(Running))
		assert.False(t, m.HasKey(key))
		assert.NotPanics(t, func() { m.SetState(Running) })
	})

	t.Run("zero key is a valid key", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		var zero statemachine.Key

		calls := 0
		m.On(zero, Running, func() { calls++ })
		assert.True(t, m.HasKey(zero))

		m.SetState(Running)
		assert.Equal(t, 1, calls)

		m.RemoveCallbacks(zero)
		assert.False(t, m.HasKey(zero))
	})
}

func TestOnStates(t *testing.T) {
	t.Parallel()

	t.Run("registers each state", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		rec := &recorder{}
		key := statemachine.NewKey()

		m.OnStates(key, map[phase]statemachine.Callback{
			Running: rec.cb("running"),
			Done:    rec.cb("done"),
		})

		assert.Equal(t, 1, m.CallbackCount(Running))
		assert.Equal(t, 1, m.CallbackCount(Done))

		m.SetState(Running)
		assert.Equal(t, []string{"running"}, rec.take())
		m.SetState(Done)
		assert.Equal(t, []string{"done"}, rec.take())
	})

	t.Run("appends after existing registrations", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		rec := &recorder{}
		k1, k2 := statemachine.NewKey(), statemachine.NewKey()

		m.On(k1, Running, rec.cb("single-1"))
		m.OnStates(k2, map[phase]statemachine.Callback{
			Running: rec.cb("multi"),
			Done:    rec.cb("multi-done"),
		})
		m.On(k1, Running, rec.cb("single-2"))

		m.SetState(Running)
		assert.Equal(t, []string{"single-1", "multi", "single-2"}, rec.take())
	})

	t.Run("skips nil callbacks", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()

		m.OnStates(key, map[phase]statemachine.Callback{
			Running: nil,
			Done:    func() {},
		})
		assert.Equal(t, 0, m.CallbackCount(Running))
		assert.Equal(t, 1, m.CallbackCount(Done))
	})

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()

		m.OnStates(key, nil)
		assert.False(t, m.HasKey(key))
	})
}

func TestRemoveCallback(t *testing.T) {
	t.Parallel()

	t.Run("removes only matching key under state", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		rec := &recorder{}
		k1, k2 := statemachine.NewKey(), statemachine.NewKey()

		m.On(k1, Running, rec.cb("k1-a"))
		m.On(k2, Running, rec.cb("k2-a"))
		m.On(k1, Running, rec.cb("k1-b"))
		m.On(k2, Running, rec.cb("k2-b"))
		m.On(k1, Done, rec.cb("k1-done"))

		m.RemoveCallback(Running, k1)

		m.SetState(Running)
		assert.Equal(t, []string{"k2-a", "k2-b"}, rec.take())

		m.SetState(Done)
		assert.Equal(t, []string{"k1-done"}, rec.take())
		assert.True(t, m.HasKey(k1))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		k1, k2 := statemachine.NewKey(), statemachine.NewKey()

		m.On(k1, Running, func() {})
		m.On(k2, Running, func() {})

		m.RemoveCallback(Running, k1)
		require.Equal(t, 1, m.CallbackCount(Running))

		m.RemoveCallback(Running, k1)
		assert.Equal(t, 1, m.CallbackCount(Running))
		assert.False(t, m.HasKey(k1))
		assert.True(t, m.HasKey(k2))
	})

	t.Run("no-op for unknown state or key", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()
		m.On(key, Running, func() {})

		assert.NotPanics(t, func() {
			m.RemoveCallback(Done, key)
			m.RemoveCallback(Running, statemachine.NewKey())
			m.RemoveCallback(Failed, statemachine.NewKey())
		})
		assert.Equal(t, 1, m.CallbackCount(Running))
	})
}

func TestRemoveCallbacks(t *testing.T) {
	t.Parallel()

	t.Run("spans all states", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		rec := &recorder{}
		k1, k2 := statemachine.NewKey(), statemachine.NewKey()

		m.On(k1, Running, rec.cb("k1-running"))
		m.On(k1, Done, rec.cb("k1-done"))
		m.On(k2, Running, rec.cb("k2-running"))
		m.On(k2, Done, rec.cb("k2-done"))

		m.RemoveCallbacks(k1)
		assert.False(t, m.HasKey(k1))
		assert.True(t, m.HasKey(k2))

		m.SetState(Running)
		m.SetState(Done)
		assert.Equal(t, []string{"k2-running", "k2-done"}, rec.take())
	})

	t.Run("removes multi-state registrations", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()

		m.OnStates(key, map[phase]statemachine.Callback{
			Idle:    func() {},
			Running: func() {},
			Done:    func() {},
		})

		m.RemoveCallbacks(key)
		for _, s := range phases {
			assert.Equal(t, 0, m.CallbackCount(s), "state %s", s)
		}
	})

	t.Run("idempotent and no-op for unknown key", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)
		key := statemachine.NewKey()
		other := statemachine.NewKey()
		m.On(other, Running, func() {})

		m.RemoveCallbacks(key)
		m.On(key, Done, func() {})
		m.RemoveCallbacks(key)
		m.RemoveCallbacks(key)

		assert.Equal(t, 0, m.CallbackCount(Done))
		assert.Equal(t, 1, m.CallbackCount(Running))
	})

	t.Run("named keys match by name", func(t *testing.T) {
		t.Parallel()
		m := statemachine.New(phases, Idle)

		m.On(statemachine.NamedKey("toolbar"), Running, func() {})
		m.On(statemachine.NamedKey("sidebar"), Running, func() {})

		m.RemoveCallbacks(statemachine.NamedKey("toolbar"))
		assert.Equal(t, 1, m.CallbackCount(Running))
		assert.True(t, m.HasKey(statemachine.NamedKey("sidebar")))
	})
}
