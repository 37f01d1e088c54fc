// Package views computes the read models shown on each screen. Every function
// is pure: it takes snapshots of the stores and never mutates them.
package views

import (
	"dress-rental-service/internal/locale"
	"dress-rental-service/internal/model"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// FilterDresses keeps the dresses whose name or category contains query,
// ignoring case. An empty query keeps everything. Order is preserved.
func FilterDresses(all []model.Dress, query string) []model.Dress {
	out := make([]model.Dress, 0, len(all))
	if query == "" {
		return append(out, all...)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, d := range all {
		if strings.Contains(fold.String(d.Name), needle) ||
			strings.Contains(fold.String(string(d.Category)), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Booking is a rental joined with the dress it references
type Booking struct {
	model.Rental
	DressName  string          `json:"dressName"`
	DressImage string          `json:"dressImage,omitempty"`
	DressPrice decimal.Decimal `json:"dressPrice"`
	DressKnown bool            `json:"dressKnown"`
}

// dressIndex resolves rentals against the catalog
type dressIndex struct {
	byID map[string]model.Dress
	loc  locale.Locale
}

func newDressIndex(dresses []model.Dress, loc locale.Locale) dressIndex {
	byID := make(map[string]model.Dress, len(dresses))
	for _, d := range dresses {
		byID[d.ID] = d
	}
	return dressIndex{byID: byID, loc: loc}
}

// price is zero for a dangling dress id
func (ix dressIndex) price(id string) decimal.Decimal {
	if d, ok := ix.byID[id]; ok {
		return d.Price
	}
	return decimal.Zero
}

func (ix dressIndex) join(r model.Rental) Booking {
	d, ok := ix.byID[r.DressID]
	if !ok {
		return Booking{Rental: r, DressName: ix.loc.UnknownDress, DressPrice: decimal.Zero}
	}
	return Booking{Rental: r, DressName: d.Name, DressImage: d.Image, DressPrice: d.Price, DressKnown: true}
}

func (ix dressIndex) joinFirst(rentals []model.Rental, n int) []Booking {
	if len(rentals) < n {
		n = len(rentals)
	}
	out := make([]Booking, 0, n)
	for _, r := range rentals[:n] {
		out = append(out, ix.join(r))
	}
	return out
}

// JoinRentals resolves every rental against the catalog
func JoinRentals(rentals []model.Rental, dresses []model.Dress, loc locale.Locale) []Booking {
	return newDressIndex(dresses, loc).joinFirst(rentals, len(rentals))
}
