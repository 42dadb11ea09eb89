package infrastructure

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SiteSelectionStore persists which site each admin is currently working on.
// The selection survives across sessions of the same admin; it is keyed by
// the admin's subject ID, never by anything request-scoped.
type SiteSelectionStore interface {
	// Get returns the stored selection; ok is false when the admin never
	// selected a site.
	Get(ctx context.Context, adminID uuid.UUID) (siteID uuid.UUID, ok bool, err error)
	Set(ctx context.Context, adminID, siteID uuid.UUID) error
}

// MemorySiteSelectionStore keeps selections in process memory. Used by tests
// and single-node development setups.
type MemorySiteSelectionStore struct {
	mu         sync.RWMutex
	selections map[uuid.UUID]uuid.UUID
}

func NewMemorySiteSelectionStore() *MemorySiteSelectionStore {
	return &MemorySiteSelectionStore{selections: make(map[uuid.UUID]uuid.UUID)}
}

func (s *MemorySiteSelectionStore) Get(ctx context.Context, adminID uuid.UUID) (uuid.UUID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	siteID, ok := s.selections[adminID]
	return siteID, ok, nil
}

func (s *MemorySiteSelectionStore) Set(ctx context.Context, adminID, siteID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[adminID] = siteID
	return nil
}
