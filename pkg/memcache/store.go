package mem

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	seq       uint64
	expiresAt time.Time
}

// Store is a mutex-guarded in-memory TTL cache. Expired entries are treated
// as absent and evicted lazily on the next lookup; no background janitor.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[string]entry[V]),
	}
}

// Get returns the live value for key, or false if missing or expired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a newer value may have landed.
		if cur, still := s.data[key]; still && time.Now().After(cur.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[V]{value: value, expiresAt: time.Now().Add(ttl)}
}

// SetIfNewer stores value only when no live entry with a higher sequence
// number exists, so a slow write issued for an older request cannot clobber
// the result of a newer one. Reports whether the write happened.
func (s *Store[V]) SetIfNewer(key string, value V, seq uint64, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.data[key]; ok && cur.seq > seq && time.Now().Before(cur.expiresAt) {
		return false
	}
	s.data[key] = entry[V]{value: value, seq: seq, expiresAt: time.Now().Add(ttl)}
	return true
}

// Delete removes key if present.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len counts live (unexpired) entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	now := time.Now()
	for _, e := range s.data {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}
