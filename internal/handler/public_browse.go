package handler

// public_browse.go serves the read-only catalog to guests.  Every list is
// localised by ?locale and never returns null.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/model"
)

// PublicHandler serves the catalog views and availability lookups.
type PublicHandler struct {
	Q *catalog.Queries
}

func NewPublicHandler(q *catalog.Queries) *PublicHandler {
	return &PublicHandler{Q: q}
}

// ListMovies returns every movie.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Q.Movies(locale(c)))
}

// ListShowingMovies returns the movies that can be booked.
func (h *PublicHandler) ListShowingMovies(c echo.Context) error {
	all := h.Q.Movies(locale(c))
	out := make([]catalog.MovieView, 0, len(all))
	for _, m := range all {
		if h.Q.IsAvailableMovie(m.ID) {
			out = append(out, m)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) GetMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	m, found := h.Q.MovieDetail(id, locale(c))
	if !found {
		return notFound(c, "movie")
	}
	return c.JSON(http.StatusOK, m)
}

// MovieDates lists the dates a movie has schedules on.
func (h *PublicHandler) MovieDates(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	return c.JSON(http.StatusOK, h.Q.AvailableDates(id))
}

// MovieScreenTypes lists screen types for ?date, narrowed by ?cinema_id.
func (h *PublicHandler) MovieScreenTypes(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	cinemaID, ok := optionalInt(c, "cinema_id")
	if !ok {
		return badRequest(c, "invalid cinema_id")
	}
	return c.JSON(http.StatusOK, h.Q.AvailableScreenTypes(id, c.QueryParam("date"), cinemaID))
}

// MovieCinemas lists cinemas for ?date, narrowed by ?screen_type.
func (h *PublicHandler) MovieCinemas(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	return c.JSON(http.StatusOK, h.Q.AvailableCinemas(id, c.QueryParam("date"), optionalString(c, "screen_type")))
}

// MovieSchedules requires ?date, ?cinema_id and ?screen_type.
func (h *PublicHandler) MovieSchedules(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid movie id")
	}
	cinemaID, ok := optionalInt(c, "cinema_id")
	if !ok || cinemaID == nil {
		return badRequest(c, "cinema_id required")
	}
	return c.JSON(http.StatusOK, h.Q.AvailableSchedules(id, c.QueryParam("date"), c.QueryParam("screen_type"), *cinemaID))
}

// ScheduleSeats partitions a schedule's screen into available seats and
// booked seat ids.
func (h *PublicHandler) ScheduleSeats(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid schedule id")
	}
	if _, found := h.Q.Catalog().Schedule(id); !found {
		return notFound(c, "schedule")
	}
	return c.JSON(http.StatusOK, h.Q.AvailableSeats(id))
}

func (h *PublicHandler) ListCinemas(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Q.Cinemas(locale(c)))
}

func (h *PublicHandler) GetCinema(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid cinema id")
	}
	v, found := h.Q.CinemaDetail(id, locale(c))
	if !found {
		return notFound(c, "cinema")
	}
	return c.JSON(http.StatusOK, v)
}

func (h *PublicHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Q.Events(locale(c)))
}

func (h *PublicHandler) GetEvent(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid event id")
	}
	v, found := h.Q.EventDetail(id, locale(c))
	if !found {
		return notFound(c, "event")
	}
	return c.JSON(http.StatusOK, v)
}

// ListFnb returns the F&B menu.
func (h *PublicHandler) ListFnb(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Q.FnbItems(locale(c)))
}

// Locales lists the locales every catalog record is translated into.
func (h *PublicHandler) Locales(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"default": model.DefaultLocale, "supported": model.SupportedLocales})
}
