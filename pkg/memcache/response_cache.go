package mem

import (
	"sync"
	"time"
)

// ResponseCache is a small TTL cache for aggregate payloads (market pulse,
// price index). Entries are checked for expiry on read; no janitor.
type ResponseCache interface {
	Set(key string, value interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type responseCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResponseCache() ResponseCache {
	return &responseCache{
		data: make(map[string]entry),
	}
}

func (s *responseCache) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *responseCache) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}
