package model

// CinemaTranslation is the per-locale text of a cinema.
type CinemaTranslation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t CinemaTranslation) LocaleCode() string { return t.Locale }

// Cinema represents a movie theatre venue.  A cinema contains multiple
// screens; schedules reference it directly as well as through the screen.
//
// Fields:
//
//	ID      – surrogate key.
//	Address – street address (not translated).
//	City    – city used by the admin city filter.
//	MapURL  – embeddable map link.
type Cinema struct {
	ID           int64               `json:"id"`
	Translations []CinemaTranslation `json:"translations"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	MapURL       string              `json:"map_url"`
}

// Localized returns the cinema text for locale; missing translations
// resolve to empty strings.
func (c Cinema) Localized(locale string) CinemaTranslation {
	t, _ := Translate(c.Translations, locale)
	return t
}

// Screen type values.
const (
	ScreenStandard = "standard"
	ScreenVIP      = "VIP"
	ScreenIMAX     = "IMAX"
	Screen3D       = "3D"
	Screen4D       = "4D"
)

// ScreenTypes lists every screen type in display order.
var ScreenTypes = []string{ScreenStandard, ScreenVIP, ScreenIMAX, Screen3D, Screen4D}

// Screen is an auditorium inside a cinema.
type Screen struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CinemaID int64  `json:"cinema_id"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}
