package booking

import (
	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/model"
)

// Dates lists the dates of the selected movie.
func (f *Flow) Dates() []string {
	s := f.Selection()
	if s.MovieID == nil {
		return []string{}
	}
	return f.q.AvailableDates(*s.MovieID)
}

// Cinemas lists the cinemas showing the selected movie on the selected date.
func (f *Flow) Cinemas() []model.Cinema {
	s := f.Selection()
	if s.MovieID == nil || s.Date == nil {
		return []model.Cinema{}
	}
	return f.q.AvailableCinemas(*s.MovieID, *s.Date, nil)
}

// ScreenTypes lists the screen types for the selected movie, date and cinema.
func (f *Flow) ScreenTypes() []string {
	s := f.Selection()
	if s.MovieID == nil || s.Date == nil || s.CinemaID == nil {
		return []string{}
	}
	return f.q.AvailableScreenTypes(*s.MovieID, *s.Date, s.CinemaID)
}

// Schedules lists the screenings matching every selection so far.
func (f *Flow) Schedules() []catalog.ScheduleOption {
	s := f.Selection()
	if s.MovieID == nil || s.Date == nil || s.CinemaID == nil || s.ScreenType == nil {
		return []catalog.ScheduleOption{}
	}
	return f.q.AvailableSchedules(*s.MovieID, *s.Date, *s.ScreenType, *s.CinemaID)
}

// Seats partitions the seats of the selected schedule.
func (f *Flow) Seats() catalog.SeatAvailability {
	s := f.Selection()
	if s.ScheduleID == nil {
		return catalog.SeatAvailability{Available: []model.Seat{}, BookedSeatIDs: []int64{}}
	}
	return f.q.AvailableSeats(*s.ScheduleID)
}

func ticketsPrice(selected []int64, available []model.Seat) int64 {
	if len(selected) == 0 {
		return 0
	}
	want := make(map[int64]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}
	var sum int64
	for _, seat := range available {
		if want[seat.ID] {
			sum += seat.Price
		}
	}
	return sum
}

func fnbPrice(lines []FnbLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Item.Price * int64(l.Quantity)
	}
	return sum
}

// TicketsPrice sums the prices of the selected seats that are still
// available for the selected schedule.  Other selected ids add nothing.
func (f *Flow) TicketsPrice() int64 {
	return ticketsPrice(f.Selection().SeatIDs, f.Seats().Available)
}

// FnbPrice sums quantity × unit price of the selected F&B lines.
func (f *Flow) FnbPrice() int64 {
	return fnbPrice(f.Selection().Fnb)
}

func (f *Flow) TotalPrice() int64 {
	return f.TicketsPrice() + f.FnbPrice()
}

// State is a serialisable view of the flow.
type State struct {
	Selection
	Step           Step                     `json:"step"`
	Dates          []string                 `json:"dates"`
	Cinemas        []model.Cinema           `json:"cinemas"`
	ScreenTypes    []string                 `json:"screen_types"`
	Schedules      []catalog.ScheduleOption `json:"schedules"`
	AvailableSeats []model.Seat             `json:"available_seats"`
	BookedSeatIDs  []int64                  `json:"booked_seat_ids"`
	TicketsPrice   int64                    `json:"tickets_price"`
	FnbPrice       int64                    `json:"fnb_price"`
	TotalPrice     int64                    `json:"total_price"`
}

// Snapshot captures the selections and every derived value consistently.
func (f *Flow) Snapshot() State {
	f.mu.Lock()
	step, sel := f.step, f.selection()
	f.mu.Unlock()

	st := State{
		Step:           step,
		Selection:      sel,
		Dates:          []string{},
		Cinemas:        []model.Cinema{},
		ScreenTypes:    []string{},
		Schedules:      []catalog.ScheduleOption{},
		AvailableSeats: []model.Seat{},
		BookedSeatIDs:  []int64{},
	}
	if sel.MovieID != nil {
		st.Dates = f.q.AvailableDates(*sel.MovieID)
		if sel.Date != nil {
			st.Cinemas = f.q.AvailableCinemas(*sel.MovieID, *sel.Date, nil)
			if sel.CinemaID != nil {
				st.ScreenTypes = f.q.AvailableScreenTypes(*sel.MovieID, *sel.Date, sel.CinemaID)
				if sel.ScreenType != nil {
					st.Schedules = f.q.AvailableSchedules(*sel.MovieID, *sel.Date, *sel.ScreenType, *sel.CinemaID)
				}
			}
		}
	}
	if sel.ScheduleID != nil {
		seats := f.q.AvailableSeats(*sel.ScheduleID)
		st.AvailableSeats, st.BookedSeatIDs = seats.Available, seats.BookedSeatIDs
	}
	st.TicketsPrice = ticketsPrice(sel.SeatIDs, st.AvailableSeats)
	st.FnbPrice = fnbPrice(sel.Fnb)
	st.TotalPrice = st.TicketsPrice + st.FnbPrice
	return st
}
