package member

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and local development. The
// HTTP runtime services requests concurrently, so access is mutex-guarded.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Member
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Member),
	}
}

func recordKey(provider, providerUserID string) string {
	return provider + ":" + providerUserID
}

func (s *MemoryStore) Upsert(_ context.Context, m *Member) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := *m

	if existing, ok := s.records[recordKey(m.Provider, m.ProviderUserID)]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = uuid.New()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	s.records[recordKey(m.Provider, m.ProviderUserID)] = &stored

	out := stored
	return &out, nil
}

func (s *MemoryStore) Get(_ context.Context, provider, providerUserID string) (*Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.records[recordKey(provider, providerUserID)]
	if !ok {
		return nil, nil
	}

	out := *stored
	return &out, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
