package table

import (
	"sync"

	"github.com/ganot/assetgrid/internal/domain/layout"
)

// Sessions tracks per-client table state. Each client session keeps an
// independent State per variant, created on first access. State values are
// immutable; Update swaps the stored value under the lock so concurrent
// clients never observe a half-applied transition.
type Sessions struct {
	mu     sync.Mutex
	states map[string]map[layout.Variant]State
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{states: map[string]map[layout.Variant]State{}}
}

// Get returns the state for one session and variant, creating the variant's
// initial state if the session has never touched it.
func (s *Sessions) Get(sessionID string, v layout.Variant) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(sessionID, v)
}

// Update applies fn to the current state and stores the result.
func (s *Sessions) Update(sessionID string, v layout.Variant, fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.getLocked(sessionID, v))
	s.states[sessionID][v] = next
	return next
}

// Drop forgets all state for one session.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

func (s *Sessions) getLocked(sessionID string, v layout.Variant) State {
	byVariant, ok := s.states[sessionID]
	if !ok {
		byVariant = map[layout.Variant]State{}
		s.states[sessionID] = byVariant
	}
	st, ok := byVariant[v]
	if !ok {
		st = NewState(v)
		byVariant[v] = st
	}
	return st
}
