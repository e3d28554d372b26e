package external

import (
	"context"
	"sync"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// MemoryKeyValueStore implements KeyValueStore in process memory. Expired
// entries are dropped lazily on access and by Sweep.
type MemoryKeyValueStore struct {
	data  map[string]memoryItem
	mutex sync.RWMutex
	stats storeStats
	now   func() time.Time
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

type storeStats struct {
	hits   int64
	misses int64
	mutex  sync.RWMutex
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		data: make(map[string]memoryItem),
		now:  time.Now,
	}
}

func (s *MemoryKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.RLock()
	item, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists || s.now().After(item.expiresAt) {
		s.stats.recordMiss()
		return nil, errors.NewNotFoundError("key not found")
	}

	s.stats.recordHit()
	return append([]byte(nil), item.data...), nil
}

func (s *MemoryKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("store TTL must be positive")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = memoryItem{
		data:      append([]byte(nil), value...),
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

func (s *MemoryKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryKeyValueStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	s.mutex.RLock()
	item, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return false, nil
	}

	return !s.now().After(item.expiresAt), nil
}

func (s *MemoryKeyValueStore) Clear(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data = make(map[string]memoryItem)
	return nil
}

// Sweep removes expired entries and returns how many were dropped
func (s *MemoryKeyValueStore) Sweep() int {
	now := s.now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	for key, item := range s.data {
		if now.After(item.expiresAt) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included
func (s *MemoryKeyValueStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Ping always succeeds for the in-process store
func (s *MemoryKeyValueStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryKeyValueStore) GetStats() ports.StoreStats {
	return s.stats.snapshot()
}

func (s *storeStats) recordHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hits++
}

func (s *storeStats) recordMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.misses++
}

func (s *storeStats) snapshot() ports.StoreStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := s.hits + s.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(s.hits) / float64(total)
	}

	return ports.StoreStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
