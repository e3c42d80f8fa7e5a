package repository

import (
	"sync"

	"carwash/internal/usecase/interfaces"
)

// memoryStore keeps records in insertion order with a key index. Reads hand
// out copies so callers never share the backing slice with writers.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
	key   func(T) string
}

func newMemoryStore[T any](key func(T) string) *memoryStore[T] {
	return &memoryStore[T]{index: map[string]int{}, key: key}
}

func (s *memoryStore[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *memoryStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s *memoryStore[T]) insert(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.key(item)
	if _, ok := s.index[id]; ok {
		return interfaces.ErrRecordExists
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

func (s *memoryStore[T]) replace(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[s.key(item)]
	if !ok {
		return interfaces.ErrRecordNotFound
	}
	s.items[i] = item
	return nil
}

func (s *memoryStore[T]) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return interfaces.ErrRecordNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.key(s.items[j])] = j
	}
	return nil
}
