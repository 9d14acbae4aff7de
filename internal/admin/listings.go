package admin

import (
	"sort"
	"strconv"

	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

// Filter names accepted by the listings.
const (
	FilterCity          = "city"
	FilterCinema        = "cinema"
	FilterScreen        = "screen"
	FilterType          = "type"
	FilterAvailability  = "availability"
	FilterGenre         = "genre"
	FilterStatus        = "status"
	FilterDate          = "date"
	FilterRole          = "role"
	FilterTier          = "tier"
	FilterPaymentMethod = "payment_method"
)

// Availability filter values.
const (
	SeatsAvailable   = "available"
	SeatsUnavailable = "unavailable"
)

const unknownScreen = "Unknown Screen"

// Admin builds listings and statistics over a catalog snapshot.
type Admin struct {
	c *repository.Catalog
}

func New(c *repository.Catalog) *Admin {
	return &Admin{c: c}
}

func idIs(id int64, value string) bool {
	return strconv.FormatInt(id, 10) == value
}

func genreName(t model.GenreTranslation) string   { return t.Name }
func cinemaName(t model.CinemaTranslation) string { return t.Name }
func movieName(t model.MovieTranslation) string   { return t.Name }
func fnbName(t model.FnbTranslation) string       { return t.Name }

func (a *Admin) cinemaBilingual(id int64) model.Bilingual {
	c, ok := a.c.Cinema(id)
	if !ok {
		return model.MissingBilingual()
	}
	return model.BilingualOf(c.Translations, cinemaName)
}

func (a *Admin) movieBilingual(id int64) model.Bilingual {
	m, ok := a.c.Movie(id)
	if !ok {
		return model.MissingBilingual()
	}
	return model.BilingualOf(m.Translations, movieName)
}

// CinemaRow is a cinema with its names and screen count.
type CinemaRow struct {
	model.Cinema
	Name        model.Bilingual `json:"name"`
	ScreenCount int             `json:"screen_count"`
}

func (a *Admin) Cinemas() *List[CinemaRow] {
	rows := make([]CinemaRow, 0, len(a.c.Cinemas()))
	for _, c := range a.c.Cinemas() {
		n := 0
		for _, s := range a.c.Screens() {
			if s.CinemaID == c.ID {
				n++
			}
		}
		rows = append(rows, CinemaRow{Cinema: c, Name: model.BilingualOf(c.Translations, cinemaName), ScreenCount: n})
	}
	return NewList(rows,
		func(r CinemaRow, q string) bool { return r.Name.Contains(q) },
		Filter[CinemaRow]{Name: FilterCity, Match: func(r CinemaRow, v string) bool { return r.City == v }},
	)
}

// ScreenRow is a screen with the names of its cinema.
type ScreenRow struct {
	model.Screen
	CinemaName model.Bilingual `json:"cinema_name"`
}

func (a *Admin) screenRows() []ScreenRow {
	rows := make([]ScreenRow, 0, len(a.c.Screens()))
	for _, s := range a.c.Screens() {
		rows = append(rows, ScreenRow{Screen: s, CinemaName: a.cinemaBilingual(s.CinemaID)})
	}
	return rows
}

// Screens searches by screen name.  Changing the cinema filter clears the
// search.
func (a *Admin) Screens() *List[ScreenRow] {
	return NewList(a.screenRows(),
		func(r ScreenRow, q string) bool { return containsFold(r.Name, q) },
		Filter[ScreenRow]{
			Name:   FilterCinema,
			Match:  func(r ScreenRow, v string) bool { return idIs(r.CinemaID, v) },
			Clears: []string{ClearSearch},
		},
	)
}

// ScreensOf lists the screens of a cinema, for the seat screen picker.
func (a *Admin) ScreensOf(cinemaID int64) []ScreenRow {
	out := []ScreenRow{}
	for _, r := range a.screenRows() {
		if r.CinemaID == cinemaID {
			out = append(out, r)
		}
	}
	return out
}

// SeatRow is a seat with its screen and cinema names.
type SeatRow struct {
	model.Seat
	CinemaID   int64           `json:"cinema_id"`
	ScreenName string          `json:"screen_name"`
	CinemaName model.Bilingual `json:"cinema_name"`
}

// Seats has no search.  The cinema filter clears the screen, type and
// availability filters; the screen filter clears type and availability.
func (a *Admin) Seats() *List[SeatRow] {
	rows := make([]SeatRow, 0, len(a.c.Seats()))
	for _, s := range a.c.Seats() {
		r := SeatRow{Seat: s, ScreenName: unknownScreen, CinemaName: model.MissingBilingual()}
		if scr, ok := a.c.Screen(s.ScreenID); ok {
			r.ScreenName = scr.Name
			r.CinemaID = scr.CinemaID
			r.CinemaName = a.cinemaBilingual(scr.CinemaID)
		}
		rows = append(rows, r)
	}
	return NewList(rows, nil,
		Filter[SeatRow]{
			Name: FilterCinema,
			Match: func(r SeatRow, v string) bool {
				_, ok := a.c.Screen(r.ScreenID)
				return ok && idIs(r.CinemaID, v)
			},
			Clears: []string{FilterScreen, FilterType, FilterAvailability},
		},
		Filter[SeatRow]{
			Name:   FilterScreen,
			Match:  func(r SeatRow, v string) bool { return idIs(r.ScreenID, v) },
			Clears: []string{FilterType, FilterAvailability},
		},
		Filter[SeatRow]{Name: FilterType, Match: func(r SeatRow, v string) bool { return r.Type == v }},
		Filter[SeatRow]{
			Name:  FilterAvailability,
			Match: func(r SeatRow, v string) bool { return r.IsAvailable == (v == SeatsAvailable) },
		},
	)
}

// GenreName is a genre reference of a movie row.
type GenreName struct {
	ID   int64           `json:"id"`
	Name model.Bilingual `json:"name"`
}

// MovieRow is a movie with its names and genre names.  Dangling genre ids
// are left out of GenreDetails.
type MovieRow struct {
	model.Movie
	Name         model.Bilingual `json:"name"`
	GenreDetails []GenreName     `json:"genre_details"`
}

func (a *Admin) Movies() *List[MovieRow] {
	rows := make([]MovieRow, 0, len(a.c.Movies()))
	for _, m := range a.c.Movies() {
		r := MovieRow{Movie: m, Name: model.BilingualOf(m.Translations, movieName), GenreDetails: []GenreName{}}
		for _, g := range a.c.Genres() {
			if m.HasGenre(g.ID) {
				r.GenreDetails = append(r.GenreDetails, GenreName{ID: g.ID, Name: model.BilingualOf(g.Translations, genreName)})
			}
		}
		rows = append(rows, r)
	}
	return NewList(rows,
		func(r MovieRow, q string) bool { return r.Name.Contains(q) },
		Filter[MovieRow]{Name: FilterGenre, Match: func(r MovieRow, v string) bool {
			id, err := strconv.ParseInt(v, 10, 64)
			return err == nil && r.HasGenre(id)
		}},
		Filter[MovieRow]{Name: FilterStatus, Match: func(r MovieRow, v string) bool { return r.Status == v }},
	)
}

// GenreRow is a genre with its names and the number of movies tagged with it.
type GenreRow struct {
	model.Genre
	Name       model.Bilingual `json:"name"`
	MovieCount int             `json:"movie_count"`
}

func (a *Admin) Genres() *List[GenreRow] {
	rows := make([]GenreRow, 0, len(a.c.Genres()))
	for _, g := range a.c.Genres() {
		n := 0
		for _, m := range a.c.Movies() {
			if m.HasGenre(g.ID) {
				n++
			}
		}
		rows = append(rows, GenreRow{Genre: g, Name: model.BilingualOf(g.Translations, genreName), MovieCount: n})
	}
	return NewList(rows, func(r GenreRow, q string) bool { return r.Name.Contains(q) })
}

// ScheduleRow is a schedule with every join resolved for display.
type ScheduleRow struct {
	model.MovieSchedule
	MovieName  model.Bilingual `json:"movie_name"`
	CinemaName model.Bilingual `json:"cinema_name"`
	ScreenName string          `json:"screen_name"`
	TimeSlot   string          `json:"time_slot"`
	Date       string          `json:"date"`
}

func (a *Admin) Schedules() *List[ScheduleRow] {
	rows := make([]ScheduleRow, 0, len(a.c.Schedules()))
	for _, s := range a.c.Schedules() {
		r := ScheduleRow{
			MovieSchedule: s,
			MovieName:     a.movieBilingual(s.MovieID),
			CinemaName:    a.cinemaBilingual(s.CinemaID),
			ScreenName:    model.NotAvailable,
			TimeSlot:      model.NotAvailable,
			Date:          model.NotAvailable,
		}
		if scr, ok := a.c.Screen(s.ScreenID); ok {
			r.ScreenName = scr.Name
		}
		if ts, ok := a.c.TimeSlot(s.TimeSlotID); ok {
			r.TimeSlot, r.Date = ts.Range(), ts.Date
		}
		rows = append(rows, r)
	}
	return NewList(rows,
		func(r ScheduleRow, q string) bool { return r.MovieName.Contains(q) },
		Filter[ScheduleRow]{Name: FilterCinema, Match: func(r ScheduleRow, v string) bool { return idIs(r.CinemaID, v) }},
	)
}

// TimeSlots are listed by date, then start time.
func (a *Admin) TimeSlots() *List[model.TimeSlot] {
	rows := append([]model.TimeSlot(nil), a.c.TimeSlots()...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].StartTime < rows[j].StartTime
	})
	return NewList(rows,
		func(r model.TimeSlot, q string) bool {
			return containsFold(r.StartTime, q) || containsFold(r.EndTime, q) || containsFold(r.Date, q)
		},
		Filter[model.TimeSlot]{Name: FilterDate, Match: func(r model.TimeSlot, v string) bool { return r.Date == v }},
	)
}

// EventRow is an event with its names.
type EventRow struct {
	model.Event
	Name model.Bilingual `json:"name"`
}

func (a *Admin) Events() *List[EventRow] {
	rows := make([]EventRow, 0, len(a.c.Events()))
	for _, e := range a.c.Events() {
		rows = append(rows, EventRow{Event: e, Name: model.BilingualOf(e.Translations, func(t model.EventTranslation) string { return t.Name })})
	}
	return NewList(rows,
		func(r EventRow, q string) bool { return r.Name.Contains(q) || containsFold(r.Code, q) },
		Filter[EventRow]{Name: FilterStatus, Match: func(r EventRow, v string) bool { return r.Status == v }},
		Filter[EventRow]{Name: FilterType, Match: func(r EventRow, v string) bool { return r.Type == v }},
	)
}

// VoucherRow is a voucher with its descriptions.
type VoucherRow struct {
	model.Voucher
	Description model.Bilingual `json:"description"`
}

func (a *Admin) Vouchers() *List[VoucherRow] {
	rows := make([]VoucherRow, 0, len(a.c.Vouchers()))
	for _, v := range a.c.Vouchers() {
		d := model.BilingualOf(v.Translations, func(t model.VoucherTranslation) string { return t.Description })
		rows = append(rows, VoucherRow{Voucher: v, Description: d})
	}
	return NewList(rows,
		func(r VoucherRow, q string) bool { return containsFold(r.Code, q) || r.Description.Contains(q) },
		Filter[VoucherRow]{Name: FilterStatus, Match: func(r VoucherRow, v string) bool { return r.Status == v }},
		Filter[VoucherRow]{Name: FilterType, Match: func(r VoucherRow, v string) bool { return r.Type == v }},
	)
}

// FnbRow is an F&B item with its names.
type FnbRow struct {
	model.FnbItem
	Name model.Bilingual `json:"name"`
}

func (a *Admin) FnbItems() *List[FnbRow] {
	rows := make([]FnbRow, 0, len(a.c.FnbItems()))
	for _, f := range a.c.FnbItems() {
		rows = append(rows, FnbRow{FnbItem: f, Name: model.BilingualOf(f.Translations, fnbName)})
	}
	return NewList(rows,
		func(r FnbRow, q string) bool { return r.Name.Contains(q) || containsFold(r.Code, q) },
		Filter[FnbRow]{Name: FilterType, Match: func(r FnbRow, v string) bool { return r.Type == v }},
	)
}

// TicketRow is a ticket with its movie, seat, customer and invoice.
type TicketRow struct {
	model.Ticket
	MovieName    model.Bilingual `json:"movie_name"`
	SeatInfo     string          `json:"seat_info"`
	CustomerName string          `json:"customer_name"`
	InvoiceCode  string          `json:"invoice_code"`
}

func (a *Admin) Tickets() *List[TicketRow] {
	rows := make([]TicketRow, 0, len(a.c.Tickets()))
	for _, t := range a.c.Tickets() {
		r := TicketRow{
			Ticket:       t,
			MovieName:    model.MissingBilingual(),
			SeatInfo:     model.NotAvailable,
			CustomerName: model.NotAvailable,
			InvoiceCode:  model.NotAvailable,
		}
		if sch, ok := a.c.Schedule(t.MovieScheduleID); ok {
			r.MovieName = a.movieBilingual(sch.MovieID)
		}
		if seat, ok := a.c.Seat(t.SeatID); ok {
			r.SeatInfo = seat.Label()
		}
		if inv, ok := a.c.Invoice(t.SoldInvoiceID); ok {
			r.InvoiceCode = inv.Code
			if u, ok := a.c.User(inv.CustomerID); ok {
				r.CustomerName = u.Username
			}
		}
		rows = append(rows, r)
	}
	return NewList(rows,
		func(r TicketRow, q string) bool { return containsFold(r.CustomerName, q) || r.MovieName.Contains(q) },
		Filter[TicketRow]{Name: FilterStatus, Match: func(r TicketRow, v string) bool { return r.Status == v }},
	)
}

// InvoiceRow is an invoice with customer/staff names and totals over all
// of its lines, whatever their status.
type InvoiceRow struct {
	model.SoldInvoice
	CustomerName string `json:"customer_name"`
	StaffName    string `json:"staff_name"`
	ItemCount    int    `json:"item_count"`
	TotalAmount  int64  `json:"total_amount"`
}

func (a *Admin) Invoices() *List[InvoiceRow] {
	rows := make([]InvoiceRow, 0, len(a.c.Invoices()))
	for _, inv := range a.c.Invoices() {
		r := InvoiceRow{SoldInvoice: inv, CustomerName: model.NotAvailable, StaffName: model.NotAvailable}
		if u, ok := a.c.User(inv.CustomerID); ok {
			r.CustomerName = u.Username
		}
		if u, ok := a.c.User(inv.StaffID); ok {
			r.StaffName = u.Username
		}
		for _, t := range a.c.Tickets() {
			if t.SoldInvoiceID == inv.ID {
				r.ItemCount++
				r.TotalAmount += t.Price
			}
		}
		for _, s := range a.c.SoldFnbs() {
			if s.SoldInvoiceID == inv.ID {
				r.ItemCount++
				r.TotalAmount += s.Total()
			}
		}
		rows = append(rows, r)
	}
	return NewList(rows,
		func(r InvoiceRow, q string) bool { return containsFold(r.Code, q) || containsFold(r.CustomerName, q) },
		Filter[InvoiceRow]{Name: FilterPaymentMethod, Match: func(r InvoiceRow, v string) bool { return r.PaymentMethod == v }},
	)
}

// SoldFnbRow is a sold F&B line with its item and invoice.
type SoldFnbRow struct {
	model.SoldFnb
	ItemName    model.Bilingual `json:"item_name"`
	ItemImage   string          `json:"item_image"`
	InvoiceCode string          `json:"invoice_code"`
	TotalPrice  int64           `json:"total_price"`
}

func (a *Admin) SoldFnbs() *List[SoldFnbRow] {
	rows := make([]SoldFnbRow, 0, len(a.c.SoldFnbs()))
	for _, s := range a.c.SoldFnbs() {
		r := SoldFnbRow{SoldFnb: s, ItemName: model.MissingBilingual(), InvoiceCode: model.NotAvailable, TotalPrice: s.Total()}
		if item, ok := a.c.FnbItem(s.FnbItemID); ok {
			r.ItemName = model.BilingualOf(item.Translations, fnbName)
			r.ItemImage = item.Image
		}
		if inv, ok := a.c.Invoice(s.SoldInvoiceID); ok {
			r.InvoiceCode = inv.Code
		}
		rows = append(rows, r)
	}
	return NewList(rows, func(r SoldFnbRow, q string) bool {
		return r.ItemName.Contains(q) || containsFold(r.InvoiceCode, q)
	})
}

// UserRow is a user merged with its membership totals.
type UserRow struct {
	model.User
	Points     int64 `json:"points"`
	TotalSpent int64 `json:"total_spent"`
}

func (a *Admin) Users() *List[UserRow] {
	rows := make([]UserRow, 0, len(a.c.Users()))
	for _, u := range a.c.Users() {
		r := UserRow{User: u}
		if m, ok := a.c.MembershipOf(u.ID); ok {
			r.Points, r.TotalSpent = m.Points, m.TotalSpent
		}
		rows = append(rows, r)
	}
	return NewList(rows,
		func(r UserRow, q string) bool { return containsFold(r.Username, q) || containsFold(r.Email, q) },
		Filter[UserRow]{Name: FilterRole, Match: func(r UserRow, v string) bool { return r.Role == v }},
		Filter[UserRow]{Name: FilterTier, Match: func(r UserRow, v string) bool { return r.Tier == v }},
		Filter[UserRow]{Name: FilterStatus, Match: func(r UserRow, v string) bool { return r.Status == v }},
	)
}
