package store

import (
	"dress-rental-service/internal/model"
	"sync"
)

// RentalStore owns the in-memory booking collection
type RentalStore struct {
	mu      sync.RWMutex
	rentals []model.Rental
	newID   IDFunc
}

// NewRentalStore builds a store holding a copy of seed, in order
func NewRentalStore(seed []model.Rental) *RentalStore {
	rentals := make([]model.Rental, len(seed))
	copy(rentals, seed)
	return &RentalStore{rentals: rentals, newID: NewID}
}

// ListRentals returns a snapshot of the collection, most recently added first
func (s *RentalStore) ListRentals() []model.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Rental, len(s.rentals))
	copy(out, s.rentals)
	return out
}

// AddRental books a dress. New rentals are always Confirmed, whatever the draft says.
// The dress id is not checked against the catalog.
func (s *RentalStore) AddRental(draft model.RentalDraft) (model.Rental, error) {
	if draft.CustomerName == "" || draft.DressID == "" || draft.Date == "" {
		return model.Rental{}, ErrInvalidRental
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rental := model.Rental{
		ID:            s.uniqueID(),
		DressID:       draft.DressID,
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		Date:          draft.Date,
		Status:        model.RentalStatusConfirmed,
	}
	s.rentals = append([]model.Rental{rental}, s.rentals...)
	return rental, nil
}

func (s *RentalStore) uniqueID() string {
	for {
		id := s.newID()
		taken := false
		for _, r := range s.rentals {
			if r.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
