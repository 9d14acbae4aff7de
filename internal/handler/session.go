package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/booking"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/store"
)

// SessionHandler issues and discards client sessions.  A session owns one
// booking flow and the user, order and favorite-cinema stores.
type SessionHandler struct {
	Flows    *booking.Registry
	Sessions *store.Sessions
}

func NewSessionHandler(flows *booking.Registry, sessions *store.Sessions) *SessionHandler {
	return &SessionHandler{Flows: flows, Sessions: sessions}
}

// Create returns a new session id for the X-Session-ID header.
func (h *SessionHandler) Create(c echo.Context) error {
	return c.JSON(http.StatusCreated, echo.Map{"session_id": middleware.NewSessionID()})
}

// Delete drops the in-process state of the session.  Persisted keys stay
// in storage until they expire.
func (h *SessionHandler) Delete(c echo.Context) error {
	id := middleware.SessionID(c)
	h.Flows.Drop(id)
	h.Sessions.Forget(id)
	return c.NoContent(http.StatusNoContent)
}
