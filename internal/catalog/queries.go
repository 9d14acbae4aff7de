// Package catalog answers the read-only questions the booking flow and the
// public API ask about the catalog: what is showing, when, where, in which
// screen type, and which seats are still free.  Every query is a pure
// function of the snapshot, so repeated calls return equal results.
package catalog

import (
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

// Queries wraps a catalog snapshot.
type Queries struct {
	c *repository.Catalog
}

// New returns Queries over c.
func New(c *repository.Catalog) *Queries {
	return &Queries{c: c}
}

// Catalog exposes the underlying snapshot.
func (q *Queries) Catalog() *repository.Catalog { return q.c }

// ScheduleOption is one bookable screening.
type ScheduleOption struct {
	ID       int64          `json:"id"`
	TimeSlot model.TimeSlot `json:"time_slot"`
}

// SeatAvailability partitions a schedule's screen.  Available holds the
// seats with no paid or booked ticket; BookedSeatIDs lists the others.
type SeatAvailability struct {
	Available     []model.Seat `json:"available"`
	BookedSeatIDs []int64      `json:"booked_seat_ids"`
}

// AvailableMovies returns the now-showing movies in catalog order.
func (q *Queries) AvailableMovies() []model.Movie {
	out := []model.Movie{}
	for _, m := range q.c.Movies() {
		if m.Status == model.MovieNowShowing {
			out = append(out, m)
		}
	}
	return out
}

// AvailableDates returns the distinct dates on which movieID is scheduled,
// in time slot order.
func (q *Queries) AvailableDates(movieID int64) []string {
	slots := make(map[int64]bool)
	for _, s := range q.c.Schedules() {
		if s.MovieID == movieID {
			slots[s.TimeSlotID] = true
		}
	}
	out := []string{}
	seen := make(map[string]bool)
	for _, ts := range q.c.TimeSlots() {
		if slots[ts.ID] && !seen[ts.Date] {
			seen[ts.Date] = true
			out = append(out, ts.Date)
		}
	}
	return out
}

// schedulesOn yields the schedules of movieID whose time slot falls on date.
func (q *Queries) schedulesOn(movieID int64, date string) []model.MovieSchedule {
	var out []model.MovieSchedule
	for _, s := range q.c.Schedules() {
		if s.MovieID != movieID {
			continue
		}
		if ts, ok := q.c.TimeSlot(s.TimeSlotID); ok && ts.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// AvailableScreenTypes returns the distinct screen types showing movieID on
// date, in screen order.  A non-nil cinemaID narrows the search to that
// cinema.
func (q *Queries) AvailableScreenTypes(movieID int64, date string, cinemaID *int64) []string {
	screens := make(map[int64]bool)
	for _, s := range q.schedulesOn(movieID, date) {
		if cinemaID != nil && s.CinemaID != *cinemaID {
			continue
		}
		screens[s.ScreenID] = true
	}
	out := []string{}
	seen := make(map[string]bool)
	for _, scr := range q.c.Screens() {
		if screens[scr.ID] && !seen[scr.Type] {
			seen[scr.Type] = true
			out = append(out, scr.Type)
		}
	}
	return out
}

// AvailableCinemas returns the cinemas showing movieID on date, in cinema
// order.  A non-nil screenType keeps only screenings in that screen type.
func (q *Queries) AvailableCinemas(movieID int64, date string, screenType *string) []model.Cinema {
	ids := make(map[int64]bool)
	for _, s := range q.schedulesOn(movieID, date) {
		if screenType != nil {
			scr, ok := q.c.Screen(s.ScreenID)
			if !ok || scr.Type != *screenType {
				continue
			}
		}
		ids[s.CinemaID] = true
	}
	out := []model.Cinema{}
	for _, c := range q.c.Cinemas() {
		if ids[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// AvailableSchedules returns the screenings matching every selection.
func (q *Queries) AvailableSchedules(movieID int64, date, screenType string, cinemaID int64) []ScheduleOption {
	out := []ScheduleOption{}
	for _, s := range q.c.Schedules() {
		if s.MovieID != movieID || s.CinemaID != cinemaID {
			continue
		}
		scr, ok := q.c.Screen(s.ScreenID)
		if !ok || scr.CinemaID != cinemaID || scr.Type != screenType {
			continue
		}
		ts, ok := q.c.TimeSlot(s.TimeSlotID)
		if !ok || ts.Date != date {
			continue
		}
		out = append(out, ScheduleOption{ID: s.ID, TimeSlot: ts})
	}
	return out
}

// AvailableSeats partitions the seats of the schedule's screen.  An unknown
// schedule yields two empty lists.
func (q *Queries) AvailableSeats(scheduleID int64) SeatAvailability {
	res := SeatAvailability{Available: []model.Seat{}, BookedSeatIDs: []int64{}}
	sch, ok := q.c.Schedule(scheduleID)
	if !ok {
		return res
	}
	booked := make(map[int64]bool)
	for _, t := range q.c.Tickets() {
		if t.MovieScheduleID == scheduleID && t.OccupiesSeat() {
			if !booked[t.SeatID] {
				res.BookedSeatIDs = append(res.BookedSeatIDs, t.SeatID)
			}
			booked[t.SeatID] = true
		}
	}
	for _, seat := range q.c.Seats() {
		if seat.ScreenID == sch.ScreenID && !booked[seat.ID] {
			res.Available = append(res.Available, seat)
		}
	}
	return res
}

// AvailableFnb returns every F&B item.
func (q *Queries) AvailableFnb() []model.FnbItem {
	return append([]model.FnbItem{}, q.c.FnbItems()...)
}

// IsAvailableMovie reports whether id is a now-showing movie.
func (q *Queries) IsAvailableMovie(id int64) bool {
	m, ok := q.c.Movie(id)
	return ok && m.Status == model.MovieNowShowing
}
