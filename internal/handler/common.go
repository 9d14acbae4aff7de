// Package handler exposes the catalog, booking, account and back-office
// operations over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/model"
)

// locale returns the ?locale query parameter or model.DefaultLocale.  An
// unknown code is passed through and resolves to each record's first
// translation.
func locale(c echo.Context) string {
	if l := c.QueryParam("locale"); l != "" {
		return l
	}
	return model.DefaultLocale
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

// optionalInt parses an optional integer query parameter.  The bool is false
// when the parameter is present but malformed.
func optionalInt(c echo.Context, name string) (*int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func optionalString(c echo.Context, name string) *string {
	if v := c.QueryParam(name); v != "" {
		return &v
	}
	return nil
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": what + " not found"})
}
