package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHeader carries the client's session id.
const SessionHeader = "X-Session-ID"

// NewSessionID issues a fresh session id.
func NewSessionID() string { return uuid.NewString() }

// Session requires a well-formed X-Session-ID header and stores it in the
// context under "session_id".  The id is normalised to its canonical form.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(SessionHeader)
			if raw == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing " + SessionHeader + " header"})
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid " + SessionHeader + " header"})
			}
			c.Set(ctxSessionID, id.String())
			return next(c)
		}
	}
}
