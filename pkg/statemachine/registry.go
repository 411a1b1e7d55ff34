package statemachine

type entry struct {
	key      Key
	callback Callback
}

// registry maps each state to its callbacks in registration order.
// index counts registrations per key and state, so removal by key only
// visits the states the key was registered under.
type registry[S comparable] struct {
	entries map[S][]entry
	index   map[Key]map[S]int
}

func newRegistry[S comparable]() *registry[S] {
	return &registry[S]{
		entries: make(map[S][]entry),
		index:   make(map[Key]map[S]int),
	}
}

func (r *registry[S]) add(key Key, state S, cb Callback) {
	r.entries[state] = append(r.entries[state], entry{key: key, callback: cb})

	states, ok := r.index[key]
	if !ok {
		states = make(map[S]int)
		r.index[key] = states
	}
	states[state]++
}

// remove drops every entry for key under state and returns how many were removed.
func (r *registry[S]) remove(state S, key Key) int {
	states, ok := r.index[key]
	if !ok || states[state] == 0 {
		return 0
	}

	list := r.entries[state]
	kept := make([]entry, 0, len(list)-states[state])
	for _, e := range list {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	removed := len(list) - len(kept)

	if len(kept) == 0 {
		delete(r.entries, state)
	} else {
		r.entries[state] = kept
	}

	delete(states, state)
	if len(states) == 0 {
		delete(r.index, key)
	}
	return removed
}

// removeKey drops every entry for key across all states.
func (r *registry[S]) removeKey(key Key) int {
	removed := 0
	for state := range r.index[key] {
		removed += r.remove(state, key)
	}
	return removed
}

// callbacks returns a copy of the dispatch list for state.
// Dispatch iterates the copy so callbacks may register or remove
// entries without affecting the dispatch in progress.
func (r *registry[S]) callbacks(state S) []Callback {
	list := r.entries[state]
	if len(list) == 0 {
		return nil
	}
	out := make([]Callback, len(list))
	for i, e := range list {
		out[i] = e.callback
	}
	return out
}

func (r *registry[S]) count(state S) int {
	return len(r.entries[state])
}

func (r *registry[S]) hasKey(key Key) bool {
	_, ok := r.index[key]
	return ok
}
