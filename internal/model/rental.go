package model

import "time"

// DateLayout is the canonical zero-padded calendar date format of Rental.Date
const DateLayout = "2006-01-02"

// RentalStatus is the lifecycle state of a booking
type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "Pending"
	RentalStatusConfirmed RentalStatus = "Confirmed"
	RentalStatusReturned  RentalStatus = "Returned"
)

// Rental represents a booking of a dress for a single date
type Rental struct {
	ID            string       `json:"id"`
	DressID       string       `json:"dressId"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Date          string       `json:"date"`
	Status        RentalStatus `json:"status"`
}

// RentalDraft carries the fields of a booking that is about to be created
type RentalDraft struct {
	DressID       string       `json:"dressId"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Date          string       `json:"date"`
	Status        RentalStatus `json:"status"`
}

// NewRentalDraft returns the blank booking form: today's date, Pending.
func NewRentalDraft(now time.Time) RentalDraft {
	return RentalDraft{
		Date:   FormatDate(now),
		Status: RentalStatusPending,
	}
}

// FormatDate renders t's UTC calendar day in DateLayout
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a DateLayout string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
