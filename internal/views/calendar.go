package views

import (
	"dress-rental-service/internal/locale"
	"dress-rental-service/internal/model"
	"fmt"
	"time"
)

const (
	daysPerWeek     = 7
	upcomingRentals = 3
)

// DaysInMonth follows the proleptic Gregorian calendar
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDayOfMonth returns the weekday of day 1, 0 = Sunday
func FirstDayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateKey renders a calendar day in the canonical YYYY-MM-DD form
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// RentalsOnDate keeps the rentals booked on exactly date. Never nil.
func RentalsOnDate(all []model.Rental, date string) []model.Rental {
	out := make([]model.Rental, 0)
	for _, r := range all {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// CalendarCell is one square of the month grid. Blank cells pad the first
// week before day 1 and the last week after the final day.
type CalendarCell struct {
	Blank    bool      `json:"blank"`
	Day      int       `json:"day,omitempty"`
	Date     string    `json:"date,omitempty"`
	Bookings []Booking `json:"bookings,omitempty"`
}

// MonthRef identifies a calendar month
type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CalendarMonth is the calendar screen for one month. Cells holds the
// leading blanks followed by one cell per day; Weeks is the same grid in rows.
type CalendarMonth struct {
	MonthRef
	MonthName     string           `json:"monthName"`
	LeadingBlanks int              `json:"leadingBlanks"`
	DaysInMonth   int              `json:"daysInMonth"`
	Cells         []CalendarCell   `json:"cells"`
	Weeks         [][]CalendarCell `json:"weeks"`
	Previous      MonthRef         `json:"previous"`
	Next          MonthRef         `json:"next"`
	Upcoming      []Booking        `json:"upcoming"`
}

// BuildCalendar lays out the month grid. Out of range months roll over
// into the neighbouring year, so month 13 of 2025 is January 2026.
func BuildCalendar(year int, month time.Month, rentals []model.Rental, dresses []model.Dress, loc locale.Locale) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	ix := newDressIndex(dresses, loc)
	blanks := FirstDayOfMonth(year, month)
	days := DaysInMonth(year, month)

	cells := make([]CalendarCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, CalendarCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		date := DateKey(year, month, day)
		onDate := RentalsOnDate(rentals, date)
		cells = append(cells, CalendarCell{
			Day:      day,
			Date:     date,
			Bookings: ix.joinFirst(onDate, len(onDate)),
		})
	}

	return CalendarMonth{
		MonthRef:      MonthRef{Year: year, Month: month},
		MonthName:     loc.LongMonth(month),
		LeadingBlanks: blanks,
		DaysInMonth:   days,
		Cells:         cells,
		Weeks:         weeks(cells),
		Previous:      MonthRef{Year: prev.Year(), Month: prev.Month()},
		Next:          MonthRef{Year: next.Year(), Month: next.Month()},
		Upcoming:      ix.joinFirst(rentals, upcomingRentals),
	}
}

// weeks splits cells into rows of seven, padding the last row with blanks
func weeks(cells []CalendarCell) [][]CalendarCell {
	var rows [][]CalendarCell
	for start := 0; start < len(cells); start += daysPerWeek {
		row := make([]CalendarCell, daysPerWeek)
		for i := range row {
			row[i] = CalendarCell{Blank: true}
		}
		copy(row, cells[start:min(start+daysPerWeek, len(cells))])
		rows = append(rows, row)
	}
	return rows
}
