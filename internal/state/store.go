// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "sync"

// Store owns the current [State]. Dispatch is the only way to change it.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns a Store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the held state and returns the states before and
// after.
func (s *Store) Dispatch(a Action) (prev, next State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.state
	s.state = Reduce(prev, a)
	return prev, s.state
}
