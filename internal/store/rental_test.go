package store

import (
	"dress-rental-service/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRentalAlwaysConfirmed(t *testing.T) {
	for _, status := range []model.RentalStatus{"", model.RentalStatusPending, model.RentalStatusReturned, model.RentalStatusConfirmed} {
		s := NewRentalStore(nil)

		rental, err := s.AddRental(model.RentalDraft{
			DressID:      "1",
			CustomerName: "Dana",
			Date:         "2025-06-12",
			Status:       status,
		})
		require.NoError(t, err)

		assert.Equal(t, model.RentalStatusConfirmed, rental.Status)
		assert.Equal(t, model.RentalStatusConfirmed, s.ListRentals()[0].Status)
	}
}

func TestAddRentalPrepends(t *testing.T) {
	s := NewRentalStore(nil)

	first, err := s.AddRental(model.RentalDraft{DressID: "1", CustomerName: "A", Date: "2025-01-01"})
	require.NoError(t, err)
	second, err := s.AddRental(model.RentalDraft{DressID: "2", CustomerName: "B", Date: "2025-01-02", CustomerPhone: "050"})
	require.NoError(t, err)

	list := s.ListRentals()
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0])
	assert.Equal(t, first, list[1])
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "050", list[0].CustomerPhone)
}

func TestAddRentalRequiresFields(t *testing.T) {
	drafts := []model.RentalDraft{
		{DressID: "1", Date: "2025-01-01"},
		{CustomerName: "A", Date: "2025-01-01"},
		{CustomerName: "A", DressID: "1"},
	}

	s := NewRentalStore(nil)
	for _, d := range drafts {
		_, err := s.AddRental(d)
		assert.ErrorIs(t, err, ErrInvalidRental)
	}
	assert.Empty(t, s.ListRentals())
}

func TestAddRentalAcceptsUnknownDress(t *testing.T) {
	s := NewRentalStore(nil)

	rental, err := s.AddRental(model.RentalDraft{DressID: "no-such-dress", CustomerName: "A", Date: "2025-01-01"})

	require.NoError(t, err)
	assert.Equal(t, "no-such-dress", rental.DressID)
}

func TestSettingsStore(t *testing.T) {
	s := NewSettingsStore(DefaultSettings)

	assert.Equal(t, DefaultSettings, s.Get())

	got := s.SetHeroImage("https://example.com/hero.jpg")
	assert.Equal(t, "https://example.com/hero.jpg", got.HeroImage)

	got = s.SetHeroImage("")
	assert.Equal(t, "https://example.com/hero.jpg", got.HeroImage)
}
