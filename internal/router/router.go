package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-booking/internal/handler"
	"github.com/iliyamo/cinema-booking/internal/middleware"
	"github.com/iliyamo/cinema-booking/internal/model"
)

// RegisterRoutes registers routes that need neither a session nor a token.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the catalog browse endpoints.  cache wraps every
// route so repeated reads are served from the response cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)

	g.GET("/movies", p.ListMovies)
	g.GET("/movies/showing", p.ListShowingMovies)
	g.GET("/movies/:id", p.GetMovie)
	g.GET("/movies/:id/dates", p.MovieDates)
	g.GET("/movies/:id/screen-types", p.MovieScreenTypes)
	g.GET("/movies/:id/cinemas", p.MovieCinemas)
	g.GET("/movies/:id/schedules", p.MovieSchedules)

	// Seat availability changes with every order, so it bypasses the cache.
	e.GET("/v1/schedules/:id/seats", p.ScheduleSeats)

	g.GET("/cinemas", p.ListCinemas)
	g.GET("/cinemas/:id", p.GetCinema)
	g.GET("/events", p.ListEvents)
	g.GET("/events/:id", p.GetEvent)
	g.GET("/fnb", p.ListFnb)
	g.GET("/locales", p.Locales)
}

// SessionHandlers groups the handlers served under an X-Session-ID.
type SessionHandlers struct {
	Session *handler.SessionHandler
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Account *handler.AccountHandler
}

// RegisterSession registers session issuance and every endpoint that works
// on per-session state.
func RegisterSession(e *echo.Echo, h SessionHandlers) {
	e.POST("/v1/sessions", h.Session.Create)

	g := e.Group("/v1", middleware.Session())
	g.DELETE("/sessions", h.Session.Delete)

	g.POST("/auth/login", h.Auth.Login)
	g.POST("/auth/logout", h.Auth.Logout)
	g.GET("/me", h.Auth.Me)

	b := g.Group("/booking")
	b.GET("", h.Booking.Get)
	b.POST("/start", h.Booking.Start)
	b.POST("/date", h.Booking.SelectDate)
	b.POST("/cinema", h.Booking.SelectCinema)
	b.POST("/screen-type", h.Booking.SelectScreenType)
	b.POST("/schedule", h.Booking.SelectSchedule)
	b.POST("/seats/toggle", h.Booking.ToggleSeat)
	b.POST("/seats/done", h.Booking.FinishSeats)
	b.POST("/fnb", h.Booking.SetFnb)
	b.POST("/fnb/done", h.Booking.FinishFnb)
	b.POST("/pay", h.Booking.Pay)
	b.POST("/next", h.Booking.Next)
	b.POST("/prev", h.Booking.Prev)
	b.POST("/reset", h.Booking.Reset)
	b.POST("/checkout", h.Booking.Checkout)

	g.GET("/orders", h.Account.ListOrders)
	g.DELETE("/orders", h.Account.ClearOrders)
	g.GET("/favorite-cinema", h.Account.GetFavorite)
	g.PUT("/favorite-cinema", h.Account.SetFavorite)
	g.DELETE("/favorite-cinema", h.Account.ClearFavorite)
}

// RegisterAdmin registers the back-office endpoints behind JWTAuth and a
// staff-or-admin role check.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	for name, h := range a.Listings() {
		g.GET("/"+name, h)
	}
	g.GET("/cinemas/:id/screens", a.CinemaScreens)
	g.GET("/dashboard", a.Dashboard)
	g.GET("/stats", a.Stats)
}
