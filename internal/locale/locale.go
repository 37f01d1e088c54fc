// Package locale holds the fixed display texts of the service: month names,
// the placeholder for unknown dresses and the marketing copy prompt.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale is the set of display texts for one language
type Locale struct {
	Tag          language.Tag
	longMonths   [12]string
	shortMonths  [12]string
	UnknownDress string
	// prompt takes name, color and category, in that order
	prompt   string
	Fallback string
}

var hebrew = Locale{
	Tag: language.Hebrew,
	longMonths: [12]string{
		"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
		"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
	},
	shortMonths: [12]string{
		"ינו׳", "פבר׳", "מרץ", "אפר׳", "מאי", "יוני",
		"יולי", "אוג׳", "ספט׳", "אוק׳", "נוב׳", "דצמ׳",
	},
	UnknownDress: "שמלה",
	prompt:       `כתבי תיאור שיווקי קצר, יוקרתי ומזמין בעברית עבור שמלה בשם "%s", בצבע %s, בקטגוריית %s. התיאור צריך להיות באורך של 2-3 משפטים ולגרום ללקוחה לרצות להשכיר אותה.`,
	Fallback:     "שמלה מרהיבה ומעוצבת לאירוע המושלם שלך.",
}

var english = Locale{
	Tag: language.English,
	longMonths: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	shortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	UnknownDress: "Dress",
	prompt:       `Write a short, luxurious and inviting marketing description in English for a dress named "%s", in %s, in the %s category. The description should be 2-3 sentences long and make the customer want to rent it.`,
	Fallback:     "A stunning, stylish dress for your perfect event.",
}

var matcher = language.NewMatcher([]language.Tag{language.Hebrew, language.English})

// For picks the closest supported locale; Hebrew wins when nothing matches.
func For(tag language.Tag) Locale {
	if _, idx, _ := matcher.Match(tag); idx == 1 {
		return english
	}
	return hebrew
}

// Default is the Hebrew locale
func Default() Locale {
	return hebrew
}

// LongMonth returns the full month name
func (l Locale) LongMonth(m time.Month) string {
	return l.longMonths[(m-1)%12]
}

// ShortMonth returns the abbreviated month name used by charts
func (l Locale) ShortMonth(m time.Month) string {
	return l.shortMonths[(m-1)%12]
}

// DescriptionPrompt renders the marketing copy request for a dress
func (l Locale) DescriptionPrompt(name, color, category string) string {
	return fmt.Sprintf(l.prompt, name, color, category)
}
