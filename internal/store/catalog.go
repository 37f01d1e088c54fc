package store

import (
	"dress-rental-service/internal/model"
	"sync"

	"github.com/google/uuid"
)

// IDFunc generates entity ids
type IDFunc func() string

// NewID returns a random UUID string
func NewID() string {
	return uuid.New().String()
}

// CatalogStore owns the in-memory dress collection
type CatalogStore struct {
	mu      sync.RWMutex
	dresses []model.Dress
	newID   IDFunc
}

// NewCatalogStore builds a store holding a copy of seed, in order
func NewCatalogStore(seed []model.Dress) *CatalogStore {
	dresses := make([]model.Dress, len(seed))
	copy(dresses, seed)
	return &CatalogStore{dresses: dresses, newID: NewID}
}

// ListDresses returns a snapshot of the collection, newest first
func (s *CatalogStore) ListDresses() []model.Dress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Dress, len(s.dresses))
	copy(out, s.dresses)
	return out
}

// GetDress looks a dress up by id
func (s *CatalogStore) GetDress(id string) (model.Dress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dresses {
		if d.ID == id {
			return d, true
		}
	}
	return model.Dress{}, false
}

// Count returns the number of dresses
func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dresses)
}

// AddDress stores a new dress at the front of the collection. A draft without
// a name, with a zero price or an unknown category leaves the collection unchanged.
func (s *CatalogStore) AddDress(draft model.DressDraft) (model.Dress, error) {
	if draft.Name == "" || draft.Price.IsZero() || !draft.Category.Valid() {
		return model.Dress{}, ErrInvalidDress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueID()
	dress := draft.NewDress(id)
	s.dresses = append([]model.Dress{dress}, s.dresses...)
	return dress, nil
}

// UpdateDress merges patch onto the dress with the given id
func (s *CatalogStore) UpdateDress(id string, patch model.DressPatch) (model.Dress, error) {
	if patch.Name != nil && *patch.Name == "" {
		return model.Dress{}, ErrInvalidDress
	}
	if patch.Price != nil && patch.Price.IsZero() {
		return model.Dress{}, ErrInvalidDress
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return model.Dress{}, ErrInvalidDress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.dresses {
		if d.ID == id {
			s.dresses[i] = patch.Apply(d)
			return s.dresses[i], nil
		}
	}
	return model.Dress{}, ErrDressNotFound
}

// uniqueID draws ids until one is unused. Caller holds the write lock.
func (s *CatalogStore) uniqueID() string {
	for {
		id := s.newID()
		taken := false
		for _, d := range s.dresses {
			if d.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
