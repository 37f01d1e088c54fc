package model

import "fmt"

// View names a screen of the presentation client
type View string

const (
	ViewCatalog   View = "catalog"
	ViewCalendar  View = "calendar"
	ViewAdmin     View = "admin"
	ViewHome      View = "home"
	ViewDashboard View = "dashboard"
)

// Views lists every screen
var Views = []View{ViewHome, ViewCatalog, ViewCalendar, ViewAdmin, ViewDashboard}

// ParseView maps a screen name onto a View
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// SiteSettings holds presentation settings editable from the admin screen
type SiteSettings struct {
	HeroImage string `json:"heroImage"`
}
