package store

import "errors"

var (
	ErrInvalidDress  = errors.New("dress requires a name, a price and a known category")
	ErrDressNotFound = errors.New("dress not found")
	ErrInvalidRental = errors.New("rental requires a customer name, a dress and a date")
)
