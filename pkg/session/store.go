package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 30 * time.Minute
)

// Store keeps values in memory under generated ids. Entries expire after ttl without
// access and the least recently used entry is evicted once size is reached.
// Store is safe for concurrent use.
type Store[T any] struct {
	items *expirable.LRU[string, T]
}

// NewStore creates a Store. Non-positive arguments fall back to the defaults.
func NewStore[T any](size int, ttl time.Duration) *Store[T] {
	if size <= 0 {
		size = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store[T]{
		items: expirable.NewLRU[string, T](size, nil, ttl),
	}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Add stores v under id, replacing any previous value.
func (s *Store[T]) Add(id string, v T) {
	s.items.Add(id, v)
}

// Get returns the value under id and restarts its expiry.
func (s *Store[T]) Get(id string) (T, bool) {
	v, ok := s.items.Get(id)
	if ok {
		s.items.Add(id, v)
	}
	return v, ok
}

// Remove deletes id and reports whether it was present.
func (s *Store[T]) Remove(id string) bool {
	return s.items.Remove(id)
}

// Len returns the number of live entries.
func (s *Store[T]) Len() int {
	return s.items.Len()
}
