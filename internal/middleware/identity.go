package middleware

// identity.go holds the context keys written by this package and the helpers
// that read them back for handlers and key builders.

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ctxUserID    = "user_id"
	ctxRole      = "role"
	ctxSessionID = "session_id"
	ctxRequestID = "request_id"
)

// UserID returns the authenticated user id set by JWTAuth.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ctxUserID).(int64)
	return id, ok
}

// SessionID returns the session id set by Session, or "".
func SessionID(c echo.Context) string {
	s, _ := c.Get(ctxSessionID).(string)
	return s
}

// userKey identifies the caller for rate limiting: the JWT subject, then
// "anon".
func userKey(c echo.Context) string {
	if id, ok := UserID(c); ok {
		return strconv.FormatInt(id, 10)
	}
	return "anon"
}

// sessionKey is the session id or "none".  The raw header counts only when
// it parses as a uuid, and then in canonical form.
func sessionKey(c echo.Context) string {
	if s := SessionID(c); s != "" {
		return s
	}
	if id, err := uuid.Parse(c.Request().Header.Get(SessionHeader)); err == nil {
		return id.String()
	}
	return "none"
}
