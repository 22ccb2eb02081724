package repository

import (
	"context"
	"sync"
	"time"

	"gamedex/internal/domain/repository"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryPreferenceStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryPreferenceStore is the fallback when no Redis address is
// configured; preferences then only survive the process.
func NewMemoryPreferenceStore() repository.PreferenceStore {
	return &memoryPreferenceStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return "", false, nil
	}

	return entry.value, true, nil
}

func (s *memoryPreferenceStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *memoryPreferenceStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}
