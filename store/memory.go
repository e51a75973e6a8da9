package store

import (
	"context"
	"sync"

	"staymate/models"
)

// Memory is the default in-memory listing store. Listings live for the
// lifetime of the process; only ratings persist externally.
type Memory struct {
	mu       sync.RWMutex
	listings []models.Listing
}

func NewMemory(seed []models.Listing) *Memory {
	m := &Memory{listings: make([]models.Listing, len(seed))}
	copy(m.listings, seed)
	return m
}

func (m *Memory) List(_ context.Context) ([]models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Listing, len(m.listings))
	copy(out, m.listings)
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (models.Listing, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.listings {
		if l.ListingID == id {
			return l, true, nil
		}
	}
	return models.Listing{}, false, nil
}

func (m *Memory) Prepend(_ context.Context, l models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = append([]models.Listing{l}, m.listings...)
	return nil
}
