package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/admin"
)

// AdminHandler serves the back-office listings and statistics.
type AdminHandler struct {
	A   *admin.Admin
	Now func() time.Time
}

func NewAdminHandler(a *admin.Admin) *AdminHandler {
	return &AdminHandler{A: a, Now: time.Now}
}

// listing serves one admin list.  Filters are applied in declaration order
// from the query parameters of the same name, then search, page size and
// page.
func listing[T any](build func() *admin.List[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := build()
		for _, name := range l.FilterNames() {
			if v := c.QueryParam(name); v != "" {
				l.SetFilter(name, v)
			}
		}
		if q := c.QueryParam("search"); q != "" {
			l.SetSearch(q)
		}
		if raw := c.QueryParam("page_size"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return badRequest(c, "invalid page_size")
			}
			l.SetPageSize(n)
		}
		if raw := c.QueryParam("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return badRequest(c, "invalid page")
			}
			l.SetPage(n)
		}
		return c.JSON(http.StatusOK, l.Result())
	}
}

// Listings maps the path segment of every admin list to its handler.
func (h *AdminHandler) Listings() map[string]echo.HandlerFunc {
	return map[string]echo.HandlerFunc{
		"cinemas":    listing(h.A.Cinemas),
		"screens":    listing(h.A.Screens),
		"seats":      listing(h.A.Seats),
		"movies":     listing(h.A.Movies),
		"genres":     listing(h.A.Genres),
		"schedules":  listing(h.A.Schedules),
		"time-slots": listing(h.A.TimeSlots),
		"events":     listing(h.A.Events),
		"vouchers":   listing(h.A.Vouchers),
		"fnb-items":  listing(h.A.FnbItems),
		"tickets":    listing(h.A.Tickets),
		"invoices":   listing(h.A.Invoices),
		"sold-fnbs":  listing(h.A.SoldFnbs),
		"users":      listing(h.A.Users),
	}
}

// CinemaScreens lists the screens of one cinema, for cascading selects.
func (h *AdminHandler) CinemaScreens(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid cinema id")
	}
	return c.JSON(http.StatusOK, h.A.ScreensOf(id))
}

type statsResp struct {
	Cinemas   admin.CinemaStats `json:"cinemas"`
	Users     admin.UserStats   `json:"users"`
	Cities    []string          `json:"cities"`
	SeatTypes []string          `json:"seat_types"`
	FnbTypes  []string          `json:"fnb_types"`
	Dates     []string          `json:"dates"`
}

// Stats returns the summary counters and the option lists used by the
// listing filters.
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, statsResp{
		Cinemas:   h.A.CinemaStats(),
		Users:     h.A.UserStats(),
		Cities:    h.A.AvailableCities(),
		SeatTypes: h.A.AvailableSeatTypes(),
		FnbTypes:  h.A.AvailableFnbTypes(),
		Dates:     h.A.AvailableDates(),
	})
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.A.Dashboard(h.Now()))
}
