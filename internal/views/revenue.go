package views

import (
	"dress-rental-service/internal/locale"
	"dress-rental-service/internal/model"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	topDressLimit         = 3
	recentActivity        = 5
	weeklyIncomePerRental = 400 // projected income per booking on the home screen
)

// chartFloor keeps small revenues from filling the whole chart
var chartFloor = decimal.NewFromInt(1000)

// MonthlyRevenue is one bar of the revenue chart. Height is Revenue
// relative to the chart scale, in [0, 1].
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Height  float64         `json:"height"`
}

// TopDress is a dress ranked by number of bookings. Revenue uses the dress's
// current price, not the price at the time of each booking.
type TopDress struct {
	DressID    string          `json:"dressId"`
	DressName  string          `json:"dressName"`
	DressImage string          `json:"dressImage,omitempty"`
	DressKnown bool            `json:"dressKnown"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// RevenueSummary is the dashboard screen
type RevenueSummary struct {
	ConfirmedRevenue      decimal.Decimal  `json:"confirmedRevenue"`
	PendingRevenue        decimal.Decimal  `json:"pendingRevenue"`
	TotalRentals          int              `json:"totalRentals"`
	ConfirmedCount        int              `json:"confirmedCount"`
	PendingCount          int              `json:"pendingCount"`
	ConversionRate        float64          `json:"conversionRate"`
	AverageConfirmedValue decimal.Decimal  `json:"averageConfirmedValue"`
	Monthly               []MonthlyRevenue `json:"monthly"`
	ChartScale            decimal.Decimal  `json:"chartScale"`
	TopDresses            []TopDress       `json:"topDresses"`
	RecentActivity        []Booking        `json:"recentActivity"`
}

// Summarize aggregates revenue over every rental. Rentals pointing at a dress
// that is not in the catalog count with price zero.
func Summarize(rentals []model.Rental, dresses []model.Dress, loc locale.Locale) RevenueSummary {
	ix := newDressIndex(dresses, loc)

	s := RevenueSummary{
		ConfirmedRevenue: decimal.Zero,
		PendingRevenue:   decimal.Zero,
		TotalRentals:     len(rentals),
	}

	var months []string
	byMonth := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string

	for _, r := range rentals {
		price := ix.price(r.DressID)
		switch r.Status {
		case model.RentalStatusConfirmed:
			s.ConfirmedRevenue = s.ConfirmedRevenue.Add(price)
			s.ConfirmedCount++
		case model.RentalStatusPending:
			s.PendingRevenue = s.PendingRevenue.Add(price)
			s.PendingCount++
		}

		// a rental with an unreadable date stays out of the chart only
		if t, err := model.ParseDate(r.Date); err == nil {
			label := loc.ShortMonth(t.Month())
			if _, seen := byMonth[label]; !seen {
				months = append(months, label)
				byMonth[label] = decimal.Zero
			}
			if r.Status == model.RentalStatusConfirmed {
				byMonth[label] = byMonth[label].Add(price)
			}
		}

		if _, seen := counts[r.DressID]; !seen {
			order = append(order, r.DressID)
		}
		counts[r.DressID]++
	}

	s.ConversionRate = float64(s.ConfirmedCount) / float64(max(s.TotalRentals, 1))
	s.AverageConfirmedValue = s.ConfirmedRevenue.Div(decimal.NewFromInt(int64(max(s.ConfirmedCount, 1))))

	s.ChartScale = chartFloor
	for _, m := range months {
		s.ChartScale = decimal.Max(s.ChartScale, byMonth[m])
	}
	s.Monthly = make([]MonthlyRevenue, 0, len(months))
	for _, m := range months {
		s.Monthly = append(s.Monthly, MonthlyRevenue{
			Month:   m,
			Revenue: byMonth[m],
			Height:  byMonth[m].Div(s.ChartScale).InexactFloat64(),
		})
	}

	// stable sort keeps first-booked order among equal counts
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	s.TopDresses = make([]TopDress, 0, topDressLimit)
	for _, id := range order[:min(len(order), topDressLimit)] {
		b := ix.join(model.Rental{DressID: id})
		s.TopDresses = append(s.TopDresses, TopDress{
			DressID:    id,
			DressName:  b.DressName,
			DressImage: b.DressImage,
			DressKnown: b.DressKnown,
			Count:      counts[id],
			Revenue:    b.DressPrice.Mul(decimal.NewFromInt(int64(counts[id]))),
		})
	}

	s.RecentActivity = ix.joinFirst(rentals, recentActivity)
	return s
}

// HomeStats are the headline numbers of the home screen
type HomeStats struct {
	TotalDresses          int             `json:"totalDresses"`
	ActiveRentals         int             `json:"activeRentals"`
	ProjectedWeeklyIncome decimal.Decimal `json:"projectedWeeklyIncome"`
}

// Home counts the catalog and the confirmed rentals
func Home(dresses []model.Dress, rentals []model.Rental) HomeStats {
	active := 0
	for _, r := range rentals {
		if r.Status == model.RentalStatusConfirmed {
			active++
		}
	}
	return HomeStats{
		TotalDresses:          len(dresses),
		ActiveRentals:         active,
		ProjectedWeeklyIncome: decimal.NewFromInt(int64(len(rentals) * weeklyIncomePerRental)),
	}
}
