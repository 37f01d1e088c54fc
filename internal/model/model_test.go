package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDressPatchApply(t *testing.T) {
	dress := Dress{
		ID:       "1",
		Name:     "Emerald",
		Price:    decimal.NewFromInt(450),
		Color:    "Green",
		Category: CategoryEvening,
	}

	name := "Royal Emerald"
	price := decimal.NewFromInt(500)
	got := DressPatch{Name: &name, Price: &price}.Apply(dress)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "Royal Emerald", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Green", got.Color)
	assert.Equal(t, CategoryEvening, got.Category)

	// the input value is untouched
	assert.Equal(t, "Emerald", dress.Name)
}

func TestDraftPatchReplacesEveryField(t *testing.T) {
	dress := Dress{ID: "x", Name: "A", Size: "M", Color: "Red", Category: CategoryParty}
	draft := DressDraft{Name: "B", Price: decimal.NewFromInt(1), Category: CategoryWedding}

	got := draft.Patch().Apply(dress)

	assert.Equal(t, draft.NewDress("x"), got)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("Casual").Valid())
	assert.False(t, Category("evening").Valid())
}

func TestParseView(t *testing.T) {
	v, err := ParseView("dashboard")
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, v)

	_, err = ParseView("settings")
	assert.Error(t, err)
}

func TestNewRentalDraft(t *testing.T) {
	now := time.Date(2025, time.March, 7, 23, 30, 0, 0, time.UTC)

	draft := NewRentalDraft(now)

	assert.Equal(t, "2025-03-07", draft.Date)
	assert.Equal(t, RentalStatusPending, draft.Status)
	assert.Empty(t, draft.CustomerName)
}
