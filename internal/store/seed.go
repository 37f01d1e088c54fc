package store

import (
	"dress-rental-service/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultSettings are the site settings a fresh process starts with
var DefaultSettings = model.SiteSettings{
	HeroImage: "https://images.unsplash.com/photo-1566174053879-31528523f8ae?auto=format&fit=crop&q=80&w=1600",
}

// SeedDresses returns the starting catalog
func SeedDresses() []model.Dress {
	return []model.Dress{
		{
			ID:          "1",
			Name:        "שמלת אמרלד מלכותית",
			Price:       decimal.NewFromInt(450),
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&q=80&w=800",
			Size:        "38-40",
			Color:       "Green",
			Description: "שמלת ערב מרהיבה ממשי סאטן בצבע ירוק בקבוק עמוק, גזרה מחמיאה עם שסע עדין.",
			Category:    model.CategoryEvening,
		},
		{
			ID:          "2",
			Name:        "כלה אורבנית קלאסית",
			Price:       decimal.NewFromInt(1200),
			Image:       "https://images.unsplash.com/photo-1594552072238-b8a33785b261?auto=format&fit=crop&q=80&w=800",
			Size:        "36",
			Color:       "White",
			Description: "שמלת כלה נקייה ומודרנית, מושלמת לאירוע צהריים או כמתנה שנייה.",
			Category:    model.CategoryWedding,
		},
		{
			ID:          "3",
			Name:        "זהב מנצנץ",
			Price:       decimal.NewFromInt(350),
			Image:       "https://images.unsplash.com/photo-1496747611176-843222e1e57c?auto=format&fit=crop&q=80&w=800",
			Size:        "M",
			Color:       "Gold",
			Description: "שמלת פאייטים מוזהבת שתהפוך אותך למסמר הערב בכל מסיבה.",
			Category:    model.CategoryParty,
		},
	}
}
