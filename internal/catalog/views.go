package catalog

import "github.com/iliyamo/cinema-booking/internal/model"

const unknownGenre = "Unknown Genre"

// MovieView is a movie resolved for one locale.
type MovieView struct {
	ID          int64    `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Brief       string   `json:"brief"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Duration    int      `json:"duration"`
	PosterImg   string   `json:"poster_img"`
	Trailer     string   `json:"trailer"`
	ReleaseDate string   `json:"release_date"`
	Status      string   `json:"status"`
	Directors   []string `json:"directors"`
	Casts       []string `json:"casts"`
	Ratings     []int64  `json:"ratings"`
}

// CinemaView is a cinema resolved for one locale.
type CinemaView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	MapURL      string `json:"map_url"`
}

// EventView is an event with its translation for one locale.  Translation
// is nil when the event carries no translations at all.
type EventView struct {
	model.Event
	Translation *model.EventTranslation `json:"translation"`
}

// FnbView is an F&B item resolved for one locale.
type FnbView struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Price       int64  `json:"price"`
	Size        string `json:"size"`
	Image       string `json:"image"`
}

func (q *Queries) movieView(m model.Movie, locale, missingGenre string) MovieView {
	t := m.Localized(locale)
	names := make([]string, 0, len(m.Genres))
	for _, id := range m.Genres {
		name := missingGenre
		if g, ok := q.c.Genre(id); ok {
			if n, ok := g.Name(locale); ok && n != "" {
				name = n
			}
		}
		names = append(names, name)
	}
	return MovieView{
		ID:          m.ID,
		Code:        m.Code,
		Name:        t.Name,
		Brief:       t.Brief,
		Description: t.Description,
		Genres:      names,
		Duration:    m.Duration,
		PosterImg:   m.PosterImg,
		Trailer:     m.Trailer,
		ReleaseDate: m.ReleaseDate,
		Status:      m.Status,
		Directors:   nonNil(m.Directors),
		Casts:       nonNil(m.Casts),
		Ratings:     nonNil(m.Ratings),
	}
}

// Movies lists every movie; dangling genre ids read "Unknown Genre".
func (q *Queries) Movies(locale string) []MovieView {
	out := make([]MovieView, 0, len(q.c.Movies()))
	for _, m := range q.c.Movies() {
		out = append(out, q.movieView(m, locale, unknownGenre))
	}
	return out
}

// MovieDetail resolves one movie; dangling genre ids become "".
func (q *Queries) MovieDetail(id int64, locale string) (MovieView, bool) {
	m, ok := q.c.Movie(id)
	if !ok {
		return MovieView{}, false
	}
	return q.movieView(m, locale, ""), true
}

func cinemaView(c model.Cinema, locale string) CinemaView {
	t := c.Localized(locale)
	return CinemaView{
		ID:          c.ID,
		Name:        t.Name,
		Description: t.Description,
		Address:     c.Address,
		City:        c.City,
		MapURL:      c.MapURL,
	}
}

func (q *Queries) Cinemas(locale string) []CinemaView {
	out := make([]CinemaView, 0, len(q.c.Cinemas()))
	for _, c := range q.c.Cinemas() {
		out = append(out, cinemaView(c, locale))
	}
	return out
}

func (q *Queries) CinemaDetail(id int64, locale string) (CinemaView, bool) {
	c, ok := q.c.Cinema(id)
	if !ok {
		return CinemaView{}, false
	}
	return cinemaView(c, locale), true
}

func eventView(e model.Event, locale string) EventView {
	v := EventView{Event: e}
	if t, ok := e.Localized(locale); ok {
		v.Translation = &t
	}
	return v
}

func (q *Queries) Events(locale string) []EventView {
	out := make([]EventView, 0, len(q.c.Events()))
	for _, e := range q.c.Events() {
		out = append(out, eventView(e, locale))
	}
	return out
}

func (q *Queries) EventDetail(id int64, locale string) (EventView, bool) {
	e, ok := q.c.Event(id)
	if !ok {
		return EventView{}, false
	}
	return eventView(e, locale), true
}

// FnbItems lists the F&B menu.
func (q *Queries) FnbItems(locale string) []FnbView {
	out := make([]FnbView, 0, len(q.c.FnbItems()))
	for _, f := range q.c.FnbItems() {
		t := f.Localized(locale)
		out = append(out, FnbView{
			ID:          f.ID,
			Code:        f.Code,
			Name:        t.Name,
			Description: t.Description,
			Type:        f.Type,
			Price:       f.Price,
			Size:        f.Size,
			Image:       f.Image,
		})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
