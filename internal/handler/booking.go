package handler

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/booking"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/store"
)

// paymentMethods accepted at checkout.
var paymentMethods = []string{
	model.PaymentCash, model.PaymentCreditCard, model.PaymentMomo, model.PaymentPaypal, model.PaymentOnline,
}

// BookingHandler drives the booking flow of the calling session.  Every
// mutating endpoint answers with the flow snapshot after the change.
type BookingHandler struct {
	Flows    *booking.Registry
	Sessions *store.Sessions
	Log      *zap.Logger
}

func NewBookingHandler(flows *booking.Registry, sessions *store.Sessions, log *zap.Logger) *BookingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BookingHandler{Flows: flows, Sessions: sessions, Log: log}
}

func (h *BookingHandler) flow(c echo.Context) *booking.Flow {
	return h.Flows.Get(middleware.SessionID(c))
}

// mutate applies fn to the session's flow and responds with the snapshot.
func (h *BookingHandler) mutate(c echo.Context, fn func(f *booking.Flow)) error {
	f := h.flow(c)
	fn(f)
	return c.JSON(http.StatusOK, f.Snapshot())
}

// ----- DTOs -----

type startReq struct {
	MovieID int64 `json:"movie_id"`
}
type dateReq struct {
	Date string `json:"date"`
}
type cinemaReq struct {
	CinemaID int64 `json:"cinema_id"`
}
type screenTypeReq struct {
	ScreenType string `json:"screen_type"`
}
type scheduleReq struct {
	ScheduleID int64 `json:"schedule_id"`
}
type seatReq struct {
	SeatID int64 `json:"seat_id"`
}
type fnbReq struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}
type checkoutReq struct {
	PaymentMethod string `json:"payment_method"`
}

// Get returns the current flow snapshot.
func (h *BookingHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.flow(c).Snapshot())
}

// Start begins a booking for a now-showing movie; any other id resets the
// flow.
func (h *BookingHandler) Start(c echo.Context) error {
	var req startReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	return h.mutate(c, func(f *booking.Flow) { f.InitializeWithMovie(req.MovieID) })
}

func (h *BookingHandler) SelectDate(c echo.Context) error {
	var req dateReq
	if err := c.Bind(&req); err != nil || req.Date == "" {
		return badRequest(c, "date required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.SelectDate(req.Date) })
}

func (h *BookingHandler) SelectCinema(c echo.Context) error {
	var req cinemaReq
	if err := c.Bind(&req); err != nil || req.CinemaID <= 0 {
		return badRequest(c, "cinema_id required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.SelectCinema(req.CinemaID) })
}

func (h *BookingHandler) SelectScreenType(c echo.Context) error {
	var req screenTypeReq
	if err := c.Bind(&req); err != nil || req.ScreenType == "" {
		return badRequest(c, "screen_type required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.SelectScreenType(req.ScreenType) })
}

func (h *BookingHandler) SelectSchedule(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil || req.ScheduleID <= 0 {
		return badRequest(c, "schedule_id required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.SelectSchedule(req.ScheduleID) })
}

func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	var req seatReq
	if err := c.Bind(&req); err != nil || req.SeatID <= 0 {
		return badRequest(c, "seat_id required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.ToggleSeat(req.SeatID) })
}

func (h *BookingHandler) FinishSeats(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).FinishSeatSelection)
}

// SetFnb upserts an F&B line; quantity 0 removes it.
func (h *BookingHandler) SetFnb(c echo.Context) error {
	var req fnbReq
	if err := c.Bind(&req); err != nil || req.ItemID <= 0 {
		return badRequest(c, "item_id required")
	}
	return h.mutate(c, func(f *booking.Flow) { f.SetFnb(req.ItemID, req.Quantity) })
}

func (h *BookingHandler) FinishFnb(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).FinishFnbSelection)
}

func (h *BookingHandler) Pay(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).ProceedToPayment)
}

func (h *BookingHandler) Next(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).NextStep)
}

func (h *BookingHandler) Prev(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).PrevStep)
}

func (h *BookingHandler) Reset(c echo.Context) error {
	return h.mutate(c, (*booking.Flow).Reset)
}

// Checkout turns the flow's selections into an order for the signed-in
// session user, credits loyalty points for the total and resets the flow.
// Seats are not locked: two sessions may buy the same seat.
func (h *BookingHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = model.PaymentOnline
	}
	if !slices.Contains(paymentMethods, req.PaymentMethod) {
		return badRequest(c, "invalid payment_method")
	}

	ctx := c.Request().Context()
	sess := h.Sessions.Get(ctx, middleware.SessionID(c))
	user, ok := sess.User.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign in to check out"})
	}

	f := h.flow(c)
	// one snapshot so the total matches the recorded seats
	st := f.Snapshot()
	sel := st.Selection
	if sel.MovieID == nil || sel.CinemaID == nil || sel.ScheduleID == nil {
		return badRequest(c, "booking is incomplete")
	}
	if len(sel.SeatIDs) == 0 {
		return badRequest(c, "select at least one seat")
	}

	total := st.TotalPrice
	inv := sess.Orders.CreateOrder(ctx, store.OrderPayload{
		Customer:      user,
		MovieID:       *sel.MovieID,
		CinemaID:      *sel.CinemaID,
		ScheduleID:    *sel.ScheduleID,
		SeatIDs:       sel.SeatIDs,
		Fnb:           sel.Fnb,
		TotalPrice:    total,
		PaymentMethod: req.PaymentMethod,
	}, locale(c))
	sess.User.UpdateUserSpending(ctx, total)
	f.Reset()

	h.Log.Info("order created",
		zap.String("invoice_code", inv.Code),
		zap.Int64("user_id", user.ID),
		zap.Int("seats", len(sel.SeatIDs)),
		zap.Int64("total", total))
	return c.JSON(http.StatusCreated, inv)
}
