package model

import "github.com/shopspring/decimal"

// Category is the closed set of catalog categories
type Category string

const (
	CategoryEvening  Category = "Evening"
	CategoryWedding  Category = "Wedding"
	CategoryCocktail Category = "Cocktail"
	CategoryParty    Category = "Party"
)

// Categories lists every category in display order
var Categories = []Category{CategoryEvening, CategoryWedding, CategoryCocktail, CategoryParty}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Dress represents a rentable catalog item
type Dress struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
}

// DressDraft carries the fields of a dress that is about to be created
type DressDraft struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
}

// DressPatch is a partial update; nil fields keep their current value
type DressPatch struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Size        *string          `json:"size,omitempty"`
	Color       *string          `json:"color,omitempty"`
	Category    *Category        `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// Apply returns d with every non-nil patch field copied over. The id is never touched.
func (p DressPatch) Apply(d Dress) Dress {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.Image != nil {
		d.Image = *p.Image
	}
	if p.Size != nil {
		d.Size = *p.Size
	}
	if p.Color != nil {
		d.Color = *p.Color
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}

// ApplyDraft merges the patch onto an unsaved draft
func (p DressPatch) ApplyDraft(d DressDraft) DressDraft {
	return p.Apply(d.NewDress("")).Draft()
}

// Draft returns the editable fields of d
func (d Dress) Draft() DressDraft {
	return DressDraft{
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Size:        d.Size,
		Color:       d.Color,
		Category:    d.Category,
		Description: d.Description,
	}
}

// Patch turns a full draft into a patch that replaces every editable field
func (d DressDraft) Patch() DressPatch {
	return DressPatch{
		Name:        &d.Name,
		Price:       &d.Price,
		Image:       &d.Image,
		Size:        &d.Size,
		Color:       &d.Color,
		Category:    &d.Category,
		Description: &d.Description,
	}
}

// NewDress stamps an id onto the draft
func (d DressDraft) NewDress(id string) Dress {
	return Dress{
		ID:          id,
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Size:        d.Size,
		Color:       d.Color,
		Category:    d.Category,
		Description: d.Description,
	}
}
