package model

// Movie status values.
const (
	MovieComingSoon = "coming_soon"
	MovieNowShowing = "now_showing"
	MovieEnded      = "ended"
)

// GenreTranslation is the per-locale name of a genre.
type GenreTranslation struct {
	Locale string `json:"locale"`
	Name   string `json:"name"`
}

func (t GenreTranslation) LocaleCode() string { return t.Locale }

// Genre is a movie category.  Movies reference genres by id.
type Genre struct {
	ID           int64              `json:"id"`
	Translations []GenreTranslation `json:"translations"`
}

// Name resolves the genre name for locale.  ok is false when the genre has
// no translations at all.
func (g Genre) Name(locale string) (string, bool) {
	t, ok := Translate(g.Translations, locale)
	return t.Name, ok
}

// MovieTranslation is the per-locale text of a movie.
type MovieTranslation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Brief       string `json:"brief"`
	Description string `json:"description"`
}

func (t MovieTranslation) LocaleCode() string { return t.Locale }

// Movie describes a film in the catalog.
//
// Fields:
//
//	ID          – surrogate key.
//	Code        – short catalog code (MV1, MV2 ...).
//	Genres      – genre ids.
//	Duration    – running time in minutes.
//	ReleaseDate – YYYY-MM-DD.
//	Status      – coming_soon, now_showing or ended.
type Movie struct {
	ID           int64              `json:"id"`
	Code         string             `json:"code"`
	Translations []MovieTranslation `json:"translations"`
	Genres       []int64            `json:"genres"`
	Duration     int                `json:"duration"`
	PosterImg    string             `json:"poster_img"`
	Trailer      string             `json:"trailer"`
	ReleaseDate  string             `json:"release_date"`
	Status       string             `json:"status"`
	Directors    []string           `json:"directors"`
	Casts        []string           `json:"casts"`
	Ratings      []int64            `json:"ratings"`
}

// Localized returns the movie text for locale.  Missing translations
// resolve to empty strings.
func (m Movie) Localized(locale string) MovieTranslation {
	t, _ := Translate(m.Translations, locale)
	return t
}

// HasGenre reports whether the movie is tagged with genreID.
func (m Movie) HasGenre(genreID int64) bool {
	for _, g := range m.Genres {
		if g == genreID {
			return true
		}
	}
	return false
}
