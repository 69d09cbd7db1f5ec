// Package store holds the action-value table of a learning agent.
package store

import (
	"slices"

	"quixo/game"

	"github.com/samber/lo"
)

// Entry is the estimated value of taking Action in some state.
type Entry struct {
	Action game.Action
	Value  float64
}

// Store maps a canonical board key to the entries recorded for it. Entries
// keep their insertion order and an action appears at most once per state.
// A Store has a single owner and is not safe for concurrent use.
type Store struct {
	states  map[game.Key][]Entry
	entries int
}

func New() *Store {
	return &Store{states: make(map[game.Key][]Entry)}
}

// Lookup returns a copy of the entries stored for state. ok is false when the
// state has never been recorded, which is distinct from a recorded value of 0.
func (s *Store) Lookup(state game.Key) (entries []Entry, ok bool) {
	stored, ok := s.states[state]
	if !ok {
		return nil, false
	}
	return slices.Clone(stored), true
}

// Has reports whether state has at least one entry.
func (s *Store) Has(state game.Key) bool {
	_, ok := s.states[state]
	return ok
}

// Value returns the stored value of action in state.
func (s *Store) Value(state game.Key, action game.Action) (float64, bool) {
	for _, e := range s.states[state] {
		if e.Action == action {
			return e.Value, true
		}
	}
	return 0, false
}

// Best returns the entry with the highest value. Ties go to the entry
// inserted first.
func (s *Store) Best(state game.Key) (Entry, bool) {
	stored, ok := s.states[state]
	if !ok || len(stored) == 0 {
		return Entry{}, false
	}
	return lo.MaxBy(stored, func(a, b Entry) bool {
		return a.Value > b.Value
	}), true
}

// Upsert records value for (state, action), overwriting any previous value.
func (s *Store) Upsert(state game.Key, action game.Action, value float64) {
	stored := s.states[state]
	for i := range stored {
		if stored[i].Action == action {
			stored[i].Value = value
			return
		}
	}
	s.states[state] = append(stored, Entry{Action: action, Value: value})
	s.entries++
}

// Len returns the number of distinct states.
func (s *Store) Len() int {
	return len(s.states)
}

// Entries returns the number of (state, action) pairs.
func (s *Store) Entries() int {
	return s.entries
}
