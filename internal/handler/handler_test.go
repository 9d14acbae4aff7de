package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/admin"
	"github.com/iliyamo/cinema-booking/internal/booking"
	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/config"
	"github.com/iliyamo/cinema-booking/internal/fixture"
	"github.com/iliyamo/cinema-booking/internal/handler"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/router"
	"github.com/iliyamo/cinema-booking/internal/store"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

const secret = "test-secret"

type server struct {
	e *echo.Echo
	q *catalog.Queries
}

func newServer(t *testing.T) *server {
	t.Helper()
	c := fixture.Catalog()
	q := catalog.New(c)
	log := zap.NewNop()
	cfg := config.Config{JWTSecret: secret, AccessTTLMin: 5}

	flows := booking.NewRegistry(q, log)
	sessions := store.NewSessions(store.NewMemoryKV(), c, log)

	e := echo.New()
	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(q), passthrough)
	router.RegisterSession(e, router.SessionHandlers{
		Session: handler.NewSessionHandler(flows, sessions),
		Auth:    handler.NewAuthHandler(cfg, c, sessions, log),
		Booking: handler.NewBookingHandler(flows, sessions, log),
		Account: handler.NewAccountHandler(q, sessions),
	})
	ah := handler.NewAdminHandler(admin.New(c))
	ah.Now = func() time.Time { return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC) }
	router.RegisterAdmin(e, ah, secret)
	return &server{e: e, q: q}
}

type call struct {
	method  string
	target  string
	body    any
	session string
	token   string
}

func (s *server) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if c.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(c.body))
	}
	req := httptest.NewRequest(c.method, c.target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.session != "" {
		req.Header.Set(middleware.SessionHeader, c.session)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *server) newSession(t *testing.T) string {
	t.Helper()
	rec := s.do(t, call{method: http.MethodPost, target: "/v1/sessions"})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[map[string]string](t, rec)["session_id"]
	require.NotEmpty(t, id)
	return id
}

func (s *server) login(t *testing.T, session, login string) string {
	t.Helper()
	rec := s.do(t, call{method: http.MethodPost, target: "/v1/auth/login", session: session,
		body: map[string]string{"login": login, "password": fixture.DefaultPassword}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}](t, rec).Access.Token
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	rec := s.do(t, call{method: http.MethodGet, target: "/healthz"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPublicCatalog(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, call{method: http.MethodGet, target: "/v1/cinemas?locale=vi"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]catalog.CinemaView](t, rec), 8)

	rec = s.do(t, call{method: http.MethodGet, target: "/v1/movies/showing"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]catalog.MovieView](t, rec), len(s.q.AvailableMovies()))

	tests := []struct {
		target string
		want   int
	}{
		{"/v1/movies/1", http.StatusOK},
		{"/v1/movies/9999", http.StatusNotFound},
		{"/v1/movies/abc", http.StatusBadRequest},
		{"/v1/cinemas/3", http.StatusOK},
		{"/v1/cinemas/99", http.StatusNotFound},
		{"/v1/events/1", http.StatusOK},
		{"/v1/events/999", http.StatusNotFound},
		{"/v1/schedules/999999/seats", http.StatusNotFound},
		{"/v1/movies/1/schedules?date=2025-08-20", http.StatusBadRequest},
		{"/v1/movies/1/screen-types?cinema_id=x", http.StatusBadRequest},
		{"/v1/fnb", http.StatusOK},
		{"/v1/locales", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, s.do(t, call{method: http.MethodGet, target: tt.target}).Code)
		})
	}

	rec = s.do(t, call{method: http.MethodGet, target: "/v1/movies/9999/dates"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSessionHeaderRequired(t *testing.T) {
	s := newServer(t)
	assert.Equal(t, http.StatusBadRequest, s.do(t, call{method: http.MethodGet, target: "/v1/booking"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, call{method: http.MethodGet, target: "/v1/booking", session: "nope"}).Code)
	assert.Equal(t, http.StatusOK, s.do(t, call{method: http.MethodGet, target: "/v1/booking", session: s.newSession(t)}).Code)
}

func TestLoginAndMe(t *testing.T) {
	s := newServer(t)
	sid := s.newSession(t)

	rec := s.do(t, call{method: http.MethodGet, target: "/v1/me", session: sid})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, call{method: http.MethodPost, target: "/v1/auth/login", session: sid,
		body: map[string]string{"login": "kaydi", "password": "wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, call{method: http.MethodGet, target: "/v1/me", session: sid})
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	rec = s.do(t, call{method: http.MethodPost, target: "/v1/auth/login", session: sid, body: map[string]string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := s.login(t, sid, "KDUNG@gmail.com")
	claims, err := utils.ParseAccessToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, model.RoleMember, claims.Role)

	rec = s.do(t, call{method: http.MethodGet, target: "/v1/me", session: sid})
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[store.UserState](t, rec)
	assert.True(t, st.IsLoggedIn)
	assert.Empty(t, st.Error)
	assert.Equal(t, "kaydi", st.CurrentUser.Username)

	assert.Equal(t, http.StatusNoContent, s.do(t, call{method: http.MethodPost, target: "/v1/auth/logout", session: sid}).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, call{method: http.MethodGet, target: "/v1/me", session: sid}).Code)
}

func TestBookingCheckout(t *testing.T) {
	s := newServer(t)
	sid := s.newSession(t)
	post := func(path string, body any) booking.State {
		t.Helper()
		rec := s.do(t, call{method: http.MethodPost, target: "/v1/booking" + path, session: sid, body: body})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		return decode[booking.State](t, rec)
	}

	movie := s.q.AvailableMovies()[0]
	st := post("/start", map[string]int64{"movie_id": movie.ID})
	assert.Equal(t, booking.StepSelectDate, st.Step)
	require.NotEmpty(t, st.Dates)

	st = post("/date", map[string]string{"date": st.Dates[0]})
	require.NotEmpty(t, st.Cinemas)
	st = post("/cinema", map[string]int64{"cinema_id": st.Cinemas[0].ID})
	require.NotEmpty(t, st.ScreenTypes)
	st = post("/screen-type", map[string]string{"screen_type": st.ScreenTypes[0]})
	require.NotEmpty(t, st.Schedules)
	st = post("/schedule", map[string]int64{"schedule_id": st.Schedules[0].ID})
	assert.Equal(t, booking.StepSelectSeat, st.Step)
	require.NotEmpty(t, st.AvailableSeats)

	seat := st.AvailableSeats[0]
	st = post("/seats/toggle", map[string]int64{"seat_id": seat.ID})
	assert.Equal(t, []int64{seat.ID}, st.SeatIDs)
	assert.Equal(t, seat.Price, st.TicketsPrice)
	st = post("/seats/done", nil)
	assert.Equal(t, booking.StepSelectFnb, st.Step)

	item := s.q.AvailableFnb()[0]
	st = post("/fnb", map[string]any{"item_id": item.ID, "quantity": 2})
	assert.Equal(t, seat.Price+2*item.Price, st.TotalPrice)
	post("/fnb/done", nil)
	st = post("/pay", nil)
	assert.Equal(t, booking.StepPayment, st.Step)

	checkout := call{method: http.MethodPost, target: "/v1/booking/checkout", session: sid, body: map[string]string{}}
	assert.Equal(t, http.StatusUnauthorized, s.do(t, checkout).Code, "guest cannot check out")

	s.login(t, sid, "kaydi")
	bad := checkout
	bad.body = map[string]string{"payment_method": "barter"}
	assert.Equal(t, http.StatusBadRequest, s.do(t, bad).Code)

	rec := s.do(t, checkout)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inv := decode[model.InvoiceDetail](t, rec)
	assert.True(t, strings.HasPrefix(inv.Code, "INV-"))
	assert.Equal(t, int64(3), inv.CustomerID)
	assert.Equal(t, model.PaymentOnline, inv.PaymentMethod)
	assert.Equal(t, seat.Price+2*item.Price, inv.TotalPrice)
	require.Len(t, inv.Tickets, 1)
	assert.Equal(t, seat.ID, inv.Tickets[0].SeatID)

	st = decode[booking.State](t, s.do(t, call{method: http.MethodGet, target: "/v1/booking", session: sid}))
	assert.Equal(t, booking.StepSelectMovie, st.Step)
	assert.Nil(t, st.MovieID)
	assert.Empty(t, st.Fnb)

	me := decode[store.UserState](t, s.do(t, call{method: http.MethodGet, target: "/v1/me", session: sid}))
	assert.Equal(t, int64(120)+(seat.Price+2*item.Price)/10000, me.CurrentUser.Points)

	rec = s.do(t, call{method: http.MethodPost, target: "/v1/booking/checkout", session: sid, body: map[string]string{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty flow")

	orders := decode[struct {
		Orders  []model.InvoiceDetail `json:"orders"`
		History []model.InvoiceDetail `json:"history"`
	}](t, s.do(t, call{method: http.MethodGet, target: "/v1/orders", session: sid}))
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, inv.Code, orders.Orders[0].Code)
	assert.NotEmpty(t, orders.History)

	assert.Equal(t, http.StatusNoContent, s.do(t, call{method: http.MethodDelete, target: "/v1/orders", session: sid}).Code)
	rec = s.do(t, call{method: http.MethodGet, target: "/v1/orders", session: sid})
	assert.Contains(t, rec.Body.String(), `"orders":[]`)
}

func TestBookingValidation(t *testing.T) {
	s := newServer(t)
	sid := s.newSession(t)
	for _, path := range []string{"/date", "/cinema", "/screen-type", "/schedule", "/seats/toggle", "/fnb"} {
		rec := s.do(t, call{method: http.MethodPost, target: "/v1/booking" + path, session: sid, body: map[string]string{}})
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}

	rec := s.do(t, call{method: http.MethodPost, target: "/v1/booking/start", session: sid, body: map[string]int64{"movie_id": 9999}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, booking.StepSelectMovie, decode[booking.State](t, rec).Step)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newServer(t)
	a, b := s.newSession(t), s.newSession(t)
	movie := s.q.AvailableMovies()[0]

	s.do(t, call{method: http.MethodPost, target: "/v1/booking/start", session: a, body: map[string]int64{"movie_id": movie.ID}})
	st := decode[booking.State](t, s.do(t, call{method: http.MethodGet, target: "/v1/booking", session: b}))
	assert.Nil(t, st.MovieID)

	assert.Equal(t, http.StatusNoContent, s.do(t, call{method: http.MethodDelete, target: "/v1/sessions", session: a}).Code)
	st = decode[booking.State](t, s.do(t, call{method: http.MethodGet, target: "/v1/booking", session: a}))
	assert.Nil(t, st.MovieID, "dropped session starts over")
}

func TestFavoriteCinema(t *testing.T) {
	s := newServer(t)
	sid := s.newSession(t)
	fav := func(method string, body any) *httptest.ResponseRecorder {
		return s.do(t, call{method: method, target: "/v1/favorite-cinema", session: sid, body: body})
	}

	rec := fav(http.MethodPut, map[string]int64{"cinema_id": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cinema_id":3`)

	rec = fav(http.MethodPut, map[string]int64{"cinema_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cinema with ID 999 not found.")

	rec = fav(http.MethodGet, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.EqualValues(t, 3, body["cinema_id"], "failed update keeps the favourite")
	assert.NotNil(t, body["cinema"])

	assert.Equal(t, http.StatusNoContent, fav(http.MethodDelete, nil).Code)
	body = decode[map[string]any](t, fav(http.MethodGet, nil))
	assert.Nil(t, body["cinema_id"])
	assert.Nil(t, body["cinema"])
}

func TestAdminAuthorization(t *testing.T) {
	s := newServer(t)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, call{method: http.MethodGet, target: "/v1/admin/cinemas"}).Code)

	member, err := utils.NewAccessToken(secret, 3, model.RoleMember, 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, s.do(t, call{method: http.MethodGet, target: "/v1/admin/cinemas", token: member.Token}).Code)

	staff, err := utils.NewAccessToken(secret, 2, model.RoleStaff, 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, s.do(t, call{method: http.MethodGet, target: "/v1/admin/cinemas", token: staff.Token}).Code)
}

func TestAdminListings(t *testing.T) {
	s := newServer(t)
	tok, err := utils.NewAccessToken(secret, 1, model.RoleAdmin, 5)
	require.NoError(t, err)
	get := func(target string) *httptest.ResponseRecorder {
		return s.do(t, call{method: http.MethodGet, target: target, token: tok.Token})
	}
	type page struct {
		Items      []json.RawMessage `json:"items"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
		Total      int               `json:"total"`
		TotalPages int               `json:"total_pages"`
	}

	res := decode[page](t, get("/v1/admin/cinemas?city="+url.QueryEscape("Hồ Chí Minh")))
	assert.Equal(t, 2, res.Total)

	res = decode[page](t, get("/v1/admin/seats?cinema=1&page_size=25&page=2"))
	assert.Equal(t, 150, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 6, res.TotalPages)
	assert.Len(t, res.Items, 25)

	res = decode[page](t, get("/v1/admin/seats?cinema=1&screen=1"))
	assert.Equal(t, 50, res.Total, "cinema is applied before screen")

	res = decode[page](t, get("/v1/admin/time-slots"))
	assert.Equal(t, 42, res.Total)
	assert.Equal(t, 10, res.PageSize)

	assert.Equal(t, http.StatusBadRequest, get("/v1/admin/users?page=0").Code)
	assert.Equal(t, http.StatusBadRequest, get("/v1/admin/users?page_size=x").Code)

	rec := get("/v1/admin/cinemas/1/screens")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]admin.ScreenRow](t, rec), 3)

	dash := decode[admin.Dashboard](t, get("/v1/admin/dashboard"))
	assert.Equal(t, int64(684000), dash.Summary.TotalRevenue)
	assert.Equal(t, 3, dash.Summary.ActiveEvents)

	rec = get("/v1/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cities":["Hà Nội","Hồ Chí Minh"]`)
}
