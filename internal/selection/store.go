// Package selection keeps per-grid click selection across reruns of a page.
package selection

import (
	"sort"
	"sync"

	"github.com/lucky7xz/datacard/internal/card"
)

// State is the selection of one grid. The zero value is unselected.
type State struct {
	Selected bool
	Index    int
	Record   card.Record
}

// Store maps grid identity keys to their selection. It is owned by the
// hosting session and outlives every individual render.
type Store struct {
	mu     sync.Mutex
	states map[string]State
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{states: make(map[string]State)}
}

// Set records an activation for key and returns the new state.
func (s *Store) Set(key string, index int, rec card.Record) State {
	st := State{Selected: true, Index: index, Record: rec.Clone()}
	s.mu.Lock()
	s.states[key] = st
	s.mu.Unlock()
	return st
}

// Get returns the state for key; unknown keys are unselected.
func (s *Store) Get(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[key]
}

// Forget drops the state for key.
func (s *Store) Forget(key string) {
	s.mu.Lock()
	delete(s.states, key)
	s.mu.Unlock()
}

// Retain drops every key not in keep and returns the dropped keys, sorted.
func (s *Store) Retain(keep map[string]bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dropped []string
	for k := range s.states {
		if !keep[k] {
			delete(s.states, k)
			dropped = append(dropped, k)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// Keys lists the keys that hold a selection, sorted.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.states))
	for k := range s.states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
