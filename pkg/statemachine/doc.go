// Package statemachine provides a generic state tracker that runs registered
// callbacks whenever it is written to a state.
//
// A Machine holds a current state drawn from a declared set, keeps a bounded
// history of recent states and maps each state to an ordered list of
// callbacks. It is meant to be embedded in larger components (UI controllers,
// workflow steps, connection managers) that need to react to state changes
// without maintaining observer bookkeeping themselves.
//
// # Architecture
//
// The machine is built from three parts:
//  1. A state cell plus the declared state set. The set is informational:
//     assigning a state outside of it is accepted silently.
//  2. A fixed-capacity history, newest first. It always contains the current
//     state and defaults to three entries.
//  3. A registry map[State][]entry keeping (Key, Callback) pairs in
//     registration order, plus a per-key index for bulk removal.
//
// Every SetState dispatches the callbacks registered for the target state,
// even if it equals the current one, and only then updates the current state
// and history. Trigger dispatches for the current state without changing
// anything.
//
// # Usage
//
// States can be any comparable type. A closed enumeration works best:
//
//	type Phase int
//
//	const (
//	    Idle Phase = iota
//	    Running
//	    Done
//	)
//
//	m := statemachine.New([]Phase{Idle, Running, Done}, Idle)
//
//	key := statemachine.NewKey()
//	m.On(key, Running, func() { log.Println("started") })
//	m.OnStates(key, map[Phase]statemachine.Callback{
//	    Done: func() { log.Println("finished") },
//	})
//
//	m.SetState(Running) // prints "started"
//	m.SetState(Done)    // prints "finished"
//	m.History()         // [Done Running Idle]
//
//	m.RemoveCallbacks(key)
//
// # Keys
//
// A Key is an opaque handle used to group registrations. NewKey returns a
// unique key per call, NamedKey derives a stable key from a name.
//
// # Configuration
//
// History size can be set with WithHistorySize or loaded from the
// environment (STATEMACHINE_HISTORY_SIZE) through LoadConfig and applied with
// WithConfig or NewFromConfig.
//
// # Error Handling
//
// Machine operations never fail. A callback that panics is not recovered:
// the panic propagates to the caller of SetState or Trigger, the remaining
// callbacks of that dispatch are skipped and the write does not take effect.
//
// # Concurrency
//
// Machine is not safe for concurrent use. All dispatch is synchronous on the
// caller's goroutine. Callbacks may call back into the machine; dispatch
// iterates over a snapshot of the callback list, so registrations made during
// a dispatch apply from the next one.
package statemachine
