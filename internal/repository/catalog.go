package repository

import (
	"strings"

	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/utils"
)

// Tables is the raw content of a catalog: one slice per entity, in the
// order rows were produced by the fixture or the database.
type Tables struct {
	Users       []model.User
	Memberships []model.Membership
	Genres      []model.Genre
	Movies      []model.Movie
	Cinemas     []model.Cinema
	Screens     []model.Screen
	Seats       []model.Seat
	TimeSlots   []model.TimeSlot
	Schedules   []model.MovieSchedule
	Events      []model.Event
	Vouchers    []model.Voucher
	FnbItems    []model.FnbItem
	Invoices    []model.SoldInvoice
	Tickets     []model.Ticket
	SoldFnbs    []model.SoldFnb
}

// Catalog is an immutable snapshot of Tables with id indexes.  It is safe
// for concurrent readers because nothing mutates it after NewCatalog.
// Slices returned by the accessors are shared; callers must not modify them.
type Catalog struct {
	t Tables

	users       map[int64]int
	memberships map[int64]int // keyed by user id
	genres      map[int64]int
	movies      map[int64]int
	cinemas     map[int64]int
	screens     map[int64]int
	seats       map[int64]int
	timeSlots   map[int64]int
	schedules   map[int64]int
	events      map[int64]int
	fnbItems    map[int64]int
	invoices    map[int64]int
}

// NewCatalog indexes t.  When ids repeat, the first row wins.
func NewCatalog(t Tables) *Catalog {
	c := &Catalog{t: t}
	c.users = index(t.Users, func(u model.User) int64 { return u.ID })
	c.memberships = index(t.Memberships, func(m model.Membership) int64 { return m.UserID })
	c.genres = index(t.Genres, func(g model.Genre) int64 { return g.ID })
	c.movies = index(t.Movies, func(m model.Movie) int64 { return m.ID })
	c.cinemas = index(t.Cinemas, func(x model.Cinema) int64 { return x.ID })
	c.screens = index(t.Screens, func(s model.Screen) int64 { return s.ID })
	c.seats = index(t.Seats, func(s model.Seat) int64 { return s.ID })
	c.timeSlots = index(t.TimeSlots, func(s model.TimeSlot) int64 { return s.ID })
	c.schedules = index(t.Schedules, func(s model.MovieSchedule) int64 { return s.ID })
	c.events = index(t.Events, func(e model.Event) int64 { return e.ID })
	c.fnbItems = index(t.FnbItems, func(f model.FnbItem) int64 { return f.ID })
	c.invoices = index(t.Invoices, func(i model.SoldInvoice) int64 { return i.ID })
	return c
}

func index[T any](rows []T, key func(T) int64) map[int64]int {
	m := make(map[int64]int, len(rows))
	for i, r := range rows {
		k := key(r)
		if _, dup := m[k]; !dup {
			m[k] = i
		}
	}
	return m
}

func lookup[T any](rows []T, idx map[int64]int, id int64) (T, bool) {
	if i, ok := idx[id]; ok {
		return rows[i], true
	}
	var zero T
	return zero, false
}

func (c *Catalog) Users() []model.User               { return c.t.Users }
func (c *Catalog) Memberships() []model.Membership   { return c.t.Memberships }
func (c *Catalog) Genres() []model.Genre             { return c.t.Genres }
func (c *Catalog) Movies() []model.Movie             { return c.t.Movies }
func (c *Catalog) Cinemas() []model.Cinema           { return c.t.Cinemas }
func (c *Catalog) Screens() []model.Screen           { return c.t.Screens }
func (c *Catalog) Seats() []model.Seat               { return c.t.Seats }
func (c *Catalog) TimeSlots() []model.TimeSlot       { return c.t.TimeSlots }
func (c *Catalog) Schedules() []model.MovieSchedule  { return c.t.Schedules }
func (c *Catalog) Events() []model.Event             { return c.t.Events }
func (c *Catalog) Vouchers() []model.Voucher         { return c.t.Vouchers }
func (c *Catalog) FnbItems() []model.FnbItem         { return c.t.FnbItems }
func (c *Catalog) Invoices() []model.SoldInvoice     { return c.t.Invoices }
func (c *Catalog) Tickets() []model.Ticket           { return c.t.Tickets }
func (c *Catalog) SoldFnbs() []model.SoldFnb         { return c.t.SoldFnbs }

func (c *Catalog) User(id int64) (model.User, bool)     { return lookup(c.t.Users, c.users, id) }
func (c *Catalog) Genre(id int64) (model.Genre, bool)   { return lookup(c.t.Genres, c.genres, id) }
func (c *Catalog) Movie(id int64) (model.Movie, bool)   { return lookup(c.t.Movies, c.movies, id) }
func (c *Catalog) Cinema(id int64) (model.Cinema, bool) { return lookup(c.t.Cinemas, c.cinemas, id) }
func (c *Catalog) Screen(id int64) (model.Screen, bool) { return lookup(c.t.Screens, c.screens, id) }
func (c *Catalog) Seat(id int64) (model.Seat, bool)     { return lookup(c.t.Seats, c.seats, id) }
func (c *Catalog) Event(id int64) (model.Event, bool)   { return lookup(c.t.Events, c.events, id) }

func (c *Catalog) TimeSlot(id int64) (model.TimeSlot, bool) {
	return lookup(c.t.TimeSlots, c.timeSlots, id)
}

func (c *Catalog) Schedule(id int64) (model.MovieSchedule, bool) {
	return lookup(c.t.Schedules, c.schedules, id)
}

func (c *Catalog) FnbItem(id int64) (model.FnbItem, bool) {
	return lookup(c.t.FnbItems, c.fnbItems, id)
}

func (c *Catalog) Invoice(id int64) (model.SoldInvoice, bool) {
	return lookup(c.t.Invoices, c.invoices, id)
}

// MembershipOf returns the membership row of a user.
func (c *Catalog) MembershipOf(userID int64) (model.Membership, bool) {
	return lookup(c.t.Memberships, c.memberships, userID)
}

// UserByLogin finds a user by email or username, ignoring case and
// surrounding whitespace.
func (c *Catalog) UserByLogin(login string) (model.User, bool) {
	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" {
		return model.User{}, false
	}
	for _, u := range c.t.Users {
		if strings.ToLower(u.Email) == login || strings.ToLower(u.Username) == login {
			return u, true
		}
	}
	return model.User{}, false
}

// Authenticate checks password against the bcrypt hash of the user found
// by UserByLogin.  It returns ErrNotFound or ErrInvalidPassword.
func (c *Catalog) Authenticate(login, password string) (model.User, error) {
	u, ok := c.UserByLogin(login)
	if !ok {
		return model.User{}, ErrNotFound
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidPassword
	}
	return u, nil
}

// Profile merges a user with its membership.
func (c *Catalog) Profile(userID int64) (model.Profile, bool) {
	u, ok := c.User(userID)
	if !ok {
		return model.Profile{}, false
	}
	if m, ok := c.MembershipOf(userID); ok {
		return model.NewProfile(u, &m), true
	}
	return model.NewProfile(u, nil), true
}
