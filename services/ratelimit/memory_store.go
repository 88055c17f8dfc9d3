package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps counters in a map guarded by a mutex.
// Keys are only removed by Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*Counter
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]*Counter)}
}

func (s *MemoryStore) Take(_ context.Context, key string, limit int, window time.Duration, now time.Time) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok || now.After(c.ResetAt) {
		c = &Counter{Count: 1, ResetAt: now.Add(window)}
		s.counters[key] = c
		return Result{Allowed: true, Counter: *c}, nil
	}

	if c.Count >= limit {
		return Result{Allowed: false, Counter: *c}, nil
	}

	c.Count++
	return Result{Allowed: true, Counter: *c}, nil
}

// Sweep drops counters whose window ended before now and returns how many
// were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, c := range s.counters {
		if now.After(c.ResetAt) {
			delete(s.counters, key)
			removed++
		}
	}
	return removed
}

// Len reports how many keys are tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}
