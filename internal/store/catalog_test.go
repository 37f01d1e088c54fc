package store

import (
	"dress-rental-service/internal/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() model.DressDraft {
	return model.DressDraft{
		Name:     "Midnight Velvet",
		Price:    decimal.NewFromInt(600),
		Color:    "Navy",
		Size:     "S",
		Category: model.CategoryCocktail,
	}
}

func TestAddDressRejectsIncompleteDrafts(t *testing.T) {
	tests := []struct {
		name  string
		draft model.DressDraft
	}{
		{"empty name", model.DressDraft{Price: decimal.NewFromInt(100)}},
		{"zero price", model.DressDraft{Name: "Plain"}},
		{"both missing", model.DressDraft{Color: "Red"}},
		{"unknown category", model.DressDraft{Name: "Plain", Price: decimal.NewFromInt(100), Category: "Casual"}},
		{"no category", model.DressDraft{Name: "Plain", Price: decimal.NewFromInt(100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCatalogStore(SeedDresses())
			before := s.ListDresses()

			_, err := s.AddDress(tt.draft)

			assert.ErrorIs(t, err, ErrInvalidDress)
			assert.Equal(t, before, s.ListDresses())
		})
	}
}

func TestAddDressPrependsWithFreshID(t *testing.T) {
	s := NewCatalogStore(SeedDresses())
	before := s.ListDresses()

	dress, err := s.AddDress(validDraft())
	require.NoError(t, err)

	after := s.ListDresses()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, dress, after[0])
	assert.NotEmpty(t, dress.ID)
	for _, d := range before {
		assert.NotEqual(t, d.ID, dress.ID)
	}
}

func TestAddDressSkipsTakenIDs(t *testing.T) {
	s := NewCatalogStore(SeedDresses())
	ids := []string{"1", "2", "fresh"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	dress, err := s.AddDress(validDraft())
	require.NoError(t, err)
	assert.Equal(t, "fresh", dress.ID)
}

func TestUpdateDressMergesPatch(t *testing.T) {
	s := NewCatalogStore(SeedDresses())
	prior, ok := s.GetDress("2")
	require.True(t, ok)

	color := "Ivory"
	price := decimal.NewFromInt(1300)
	got, err := s.UpdateDress("2", model.DressPatch{Color: &color, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "2", got.ID)
	assert.Equal(t, "Ivory", got.Color)
	assert.True(t, got.Price.Equal(price))
	assert.Equal(t, prior.Name, got.Name)
	assert.Equal(t, prior.Size, got.Size)
	assert.Equal(t, prior.Category, got.Category)

	stored, _ := s.GetDress("2")
	assert.Equal(t, got, stored)
}

func TestUpdateDressUnknownIDLeavesCollection(t *testing.T) {
	s := NewCatalogStore(SeedDresses())
	before := s.ListDresses()

	name := "Ghost"
	_, err := s.UpdateDress("missing", model.DressPatch{Name: &name})

	assert.ErrorIs(t, err, ErrDressNotFound)
	assert.Equal(t, before, s.ListDresses())
}

func TestUpdateDressRejectsClearingRequiredFields(t *testing.T) {
	s := NewCatalogStore(SeedDresses())
	before := s.ListDresses()

	empty := ""
	_, err := s.UpdateDress("1", model.DressPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidDress)

	zero := decimal.Zero
	_, err = s.UpdateDress("1", model.DressPatch{Price: &zero})
	assert.ErrorIs(t, err, ErrInvalidDress)

	lower := model.Category("evening")
	_, err = s.UpdateDress("1", model.DressPatch{Category: &lower})
	assert.ErrorIs(t, err, ErrInvalidDress)

	assert.Equal(t, before, s.ListDresses())
}

func TestListDressesReturnsSnapshot(t *testing.T) {
	s := NewCatalogStore(SeedDresses())

	list := s.ListDresses()
	list[0].Name = "changed"

	d, _ := s.GetDress(list[0].ID)
	assert.NotEqual(t, "changed", d.Name)
	assert.Equal(t, 3, s.Count())
}
