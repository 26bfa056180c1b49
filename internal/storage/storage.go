package storage

import (
	"sync"
)

// Store is an in-memory record store that remembers insertion order
type Store[T any] struct {
	records map[string]T
	order   []string
	mu      sync.RWMutex
}

func New[T any]() *Store[T] {
	return &Store[T]{
		records: make(map[string]T),
	}
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, exists := s.records[id]
	return record, exists
}

// Set inserts or replaces a record. Replacing keeps its position.
func (s *Store[T]) Set(id string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}
	s.records[id] = record
}

// GetAll returns the records in insertion order
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

// Find returns the first record matching fn, in insertion order
func (s *Store[T]) Find(fn func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if rec := s.records[id]; fn(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes a record and reports whether it existed
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return false
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

