package sessionstore

import (
	"context"
	"sync"
	"time"

	"pixorva/internal/domain/entity"
)

type memoryEntry struct {
	principal entity.Principal
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sid string, principal *entity.Principal, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sid] = memoryEntry{principal: *principal, expiresAt: s.now().Add(ttl)}

	return nil
}

func (s *MemoryStore) Find(_ context.Context, sid string) (*entity.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sid]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, sid)

		return nil, nil
	}
	principal := entry.principal

	return &principal, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sid)

	return nil
}
