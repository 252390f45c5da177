// Package console implements the operator-facing core of the admin console:
// one generic resource store, filter view and transition executor shared by
// every moderatable entity kind instead of four copies of the same logic.
package console

import "sync"

// Store holds the current known list of one entity kind. Loads are fenced by
// a generation counter: a load that was superseded by a newer one is dropped
// on arrival, so a slow response can never overwrite fresher data.
type Store[T any] struct {
	id func(T) string

	mu      sync.RWMutex
	items   []T
	loadGen uint64
	doneGen uint64
}

func NewStore[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// BeginLoad reserves a generation token for a load that is about to start.
func (s *Store[T]) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadGen++
	return s.loadGen
}

// CompleteLoad installs the loaded list if gen is still the newest load.
// It reports whether the result was accepted.
func (s *Store[T]) CompleteLoad(gen uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.loadGen || gen <= s.doneGen {
		return false
	}
	s.doneGen = gen
	s.items = append([]T(nil), items...)
	return true
}

// ReplaceOne merges one authoritative entity back into the list by identity.
// Entities with other IDs are untouched.
func (s *Store[T]) ReplaceOne(id string, updated T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = updated
			return true
		}
	}
	return false
}

// RemoveOne deletes the entity with the given identity, preserving order.
func (s *Store[T]) RemoveOne(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds a newly created entity to the end of the list.
func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Get returns the entity with the given identity, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the current list in load order.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
