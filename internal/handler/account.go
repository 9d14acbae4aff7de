package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/store"
)

// AccountHandler serves the per-session order history and favourite
// cinema.
type AccountHandler struct {
	Q        *catalog.Queries
	Sessions *store.Sessions
}

func NewAccountHandler(q *catalog.Queries, sessions *store.Sessions) *AccountHandler {
	return &AccountHandler{Q: q, Sessions: sessions}
}

func (h *AccountHandler) session(c echo.Context) *store.Session {
	return h.Sessions.Get(c.Request().Context(), middleware.SessionID(c))
}

type ordersResp struct {
	Orders  []model.InvoiceDetail `json:"orders"`
	History []model.InvoiceDetail `json:"history"`
}

// ListOrders returns the orders placed in this session, newest first, and
// the signed-in user's invoices from the catalog.
func (h *AccountHandler) ListOrders(c echo.Context) error {
	sess := h.session(c)
	resp := ordersResp{Orders: sess.Orders.Orders(), History: []model.InvoiceDetail{}}
	if u, ok := sess.User.Current(); ok {
		resp.History = h.Q.InvoiceDetails(u.ID, locale(c))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AccountHandler) ClearOrders(c echo.Context) error {
	h.session(c).Orders.ClearOrders(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

type favoriteReq struct {
	CinemaID int64 `json:"cinema_id"`
}

type favoriteResp struct {
	store.FavoriteState
	Cinema *catalog.CinemaView `json:"cinema"`
}

func (h *AccountHandler) favorite(c echo.Context, sess *store.Session) favoriteResp {
	resp := favoriteResp{FavoriteState: sess.Favorite.State()}
	if v, ok := sess.Favorite.Details(locale(c)); ok {
		resp.Cinema = &v
	}
	return resp
}

// GetFavorite returns the favourite cinema id, its details and the last
// error.
func (h *AccountHandler) GetFavorite(c echo.Context) error {
	return c.JSON(http.StatusOK, h.favorite(c, h.session(c)))
}

// SetFavorite answers 404 for an unknown cinema and keeps the previous
// favourite.
func (h *AccountHandler) SetFavorite(c echo.Context) error {
	var req favoriteReq
	if err := c.Bind(&req); err != nil || req.CinemaID <= 0 {
		return badRequest(c, "cinema_id required")
	}
	sess := h.session(c)
	sess.Favorite.Set(c.Request().Context(), req.CinemaID)
	if st := sess.Favorite.State(); st.Error != "" {
		return c.JSON(http.StatusNotFound, echo.Map{"error": st.Error})
	}
	return c.JSON(http.StatusOK, h.favorite(c, sess))
}

func (h *AccountHandler) ClearFavorite(c echo.Context) error {
	h.session(c).Favorite.Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
