package catalog

import "github.com/iliyamo/cinema-booking/internal/model"

const (
	unknownMovie    = "Unknown Movie"
	unknownCinema   = "Unknown Cinema"
	unknownItem     = "Unknown Item"
	unknownCustomer = "Unknown Customer"
)

// nameIn returns the locale entry, else the "en" entry.  No first-entry
// fallback applies here.
func nameIn[T model.Localized](list []T, locale string, name func(T) string) (string, bool) {
	for _, want := range []string{locale, model.DefaultLocale} {
		for _, t := range list {
			if t.LocaleCode() == want {
				return name(t), true
			}
		}
	}
	return "", false
}

// InvoiceDetails returns the invoice history of userID with every ticket
// and F&B line denormalised.  TotalPrice is recomputed from the lines.
func (q *Queries) InvoiceDetails(userID int64, locale string) []model.InvoiceDetail {
	out := []model.InvoiceDetail{}
	for _, inv := range q.c.Invoices() {
		if inv.CustomerID != userID {
			continue
		}
		out = append(out, q.invoiceDetail(inv, locale))
	}
	return out
}

func (q *Queries) invoiceDetail(inv model.SoldInvoice, locale string) model.InvoiceDetail {
	d := model.InvoiceDetail{
		SoldInvoice:  inv,
		CustomerName: unknownCustomer,
		Tickets:      []model.TicketDetail{},
		SoldFnbs:     []model.SoldFnbDetail{},
	}
	if u, ok := q.c.User(inv.CustomerID); ok {
		d.CustomerName = u.Username
	}

	for _, t := range q.c.Tickets() {
		if t.SoldInvoiceID != inv.ID {
			continue
		}
		d.TotalPrice += t.Price
		d.Tickets = append(d.Tickets, q.ticketDetail(t, locale))
	}

	for _, s := range q.c.SoldFnbs() {
		if s.SoldInvoiceID != inv.ID {
			continue
		}
		d.TotalPrice += s.Total()
		line := model.SoldFnbDetail{SoldFnb: s, Name: unknownItem, Size: "M"}
		if item, ok := q.c.FnbItem(s.FnbItemID); ok {
			if n, ok := nameIn(item.Translations, locale, func(t model.FnbTranslation) string { return t.Name }); ok {
				line.Name = n
			}
			line.Image = item.Image
			line.Size = item.Size
		}
		d.SoldFnbs = append(d.SoldFnbs, line)
	}
	return d
}

func (q *Queries) ticketDetail(t model.Ticket, locale string) model.TicketDetail {
	d := model.TicketDetail{
		Ticket:     t,
		MovieName:  unknownMovie,
		CinemaName: unknownCinema,
		ScreenName: model.NotAvailable,
		ScreenType: model.ScreenStandard,
		SeatRow:    model.NotAvailable,
		SeatColumn: model.NotAvailable,
		Date:       model.NotAvailable,
		StartTime:  model.NotAvailable,
		EndTime:    model.NotAvailable,
	}
	if seat, ok := q.c.Seat(t.SeatID); ok {
		d.SeatRow, d.SeatColumn = seat.Row, seat.Column
	}
	sch, ok := q.c.Schedule(t.MovieScheduleID)
	if !ok {
		return d
	}
	if m, ok := q.c.Movie(sch.MovieID); ok {
		if n, ok := nameIn(m.Translations, locale, func(t model.MovieTranslation) string { return t.Name }); ok {
			d.MovieName = n
		}
		d.MoviePoster = m.PosterImg
	}
	if c, ok := q.c.Cinema(sch.CinemaID); ok {
		if n, ok := nameIn(c.Translations, locale, func(t model.CinemaTranslation) string { return t.Name }); ok {
			d.CinemaName = n
		}
	}
	if scr, ok := q.c.Screen(sch.ScreenID); ok {
		d.ScreenName, d.ScreenType = scr.Name, scr.Type
	}
	if ts, ok := q.c.TimeSlot(sch.TimeSlotID); ok {
		d.Date, d.StartTime, d.EndTime = ts.Date, ts.StartTime, ts.EndTime
	}
	return d
}
