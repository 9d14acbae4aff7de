package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

func viewTables() repository.Tables {
	return repository.Tables{
		Users:  []model.User{{ID: 3, Username: "kaydi"}},
		Genres: []model.Genre{{ID: 1, Translations: []model.GenreTranslation{{Locale: "en", Name: "Action"}, {Locale: "vi", Name: "Hành động"}}}},
		Movies: []model.Movie{{
			ID: 1, Code: "MV1", Genres: []int64{1, 42},
			Translations: []model.MovieTranslation{{Locale: "vi", Name: "Bộ Tứ"}, {Locale: "en", Name: "Fantastic Four"}},
		}},
		Cinemas: []model.Cinema{{ID: 1, Translations: []model.CinemaTranslation{{Locale: "vi", Name: "CGV Bà Triệu"}}}},
		Screens: []model.Screen{{ID: 1, Name: "Screen 1", CinemaID: 1, Type: model.ScreenIMAX}},
		Seats:   []model.Seat{{ID: 1, ScreenID: 1, Row: "A", Column: "1", Price: 75_000}},
		TimeSlots: []model.TimeSlot{{ID: 1, Date: "2025-08-15", StartTime: "19:00", EndTime: "21:30"}},
		Schedules: []model.MovieSchedule{{ID: 1, MovieID: 1, CinemaID: 1, ScreenID: 1, TimeSlotID: 1}},
		Events:    []model.Event{{ID: 1, Code: "EV"}, {ID: 2, Translations: []model.EventTranslation{{Locale: "en", Name: "Promo"}}}},
		FnbItems:  []model.FnbItem{{ID: 2, Price: 65_000, Size: "L", Translations: []model.FnbTranslation{{Locale: "vi", Name: "Bắp"}}}},
		Invoices: []model.SoldInvoice{
			{ID: 1, Code: "INV-2025-1", CustomerID: 3},
			{ID: 2, Code: "INV-2025-2", CustomerID: 99},
		},
		Tickets: []model.Ticket{
			{ID: 1, Price: 75_000, MovieScheduleID: 1, SeatID: 1, SoldInvoiceID: 1, Status: model.TicketPaid},
			{ID: 2, Price: 80_000, MovieScheduleID: 77, SeatID: 404, SoldInvoiceID: 2, Status: model.TicketPaid},
		},
		SoldFnbs: []model.SoldFnb{
			{ID: 1, SoldInvoiceID: 1, FnbItemID: 2, Quantity: 3, PricePerItem: 65_000},
			{ID: 2, SoldInvoiceID: 2, FnbItemID: 404, Quantity: 1, PricePerItem: 10_000},
		},
	}
}

func TestMovieViews(t *testing.T) {
	q := New(repository.NewCatalog(viewTables()))

	list := q.Movies("vi")
	require.Len(t, list, 1)
	assert.Equal(t, "Bộ Tứ", list[0].Name)
	assert.Equal(t, []string{"Hành động", "Unknown Genre"}, list[0].Genres)
	assert.NotNil(t, list[0].Casts)

	d, ok := q.MovieDetail(1, "fr")
	require.True(t, ok)
	assert.Equal(t, "Bộ Tứ", d.Name, "unknown locale falls back to first entry")
	assert.Equal(t, []string{"Action", ""}, d.Genres)

	_, ok = q.MovieDetail(2, "en")
	assert.False(t, ok)
}

func TestCinemaAndEventViews(t *testing.T) {
	q := New(repository.NewCatalog(viewTables()))

	c, ok := q.CinemaDetail(1, "en")
	require.True(t, ok)
	assert.Equal(t, "CGV Bà Triệu", c.Name)

	events := q.Events("vi")
	require.Len(t, events, 2)
	assert.Nil(t, events[0].Translation)
	require.NotNil(t, events[1].Translation)
	assert.Equal(t, "Promo", events[1].Translation.Name)

	fnb := q.FnbItems("en")
	require.Len(t, fnb, 1)
	assert.Equal(t, "Bắp", fnb[0].Name)
}

func TestInvoiceDetails(t *testing.T) {
	q := New(repository.NewCatalog(viewTables()))

	got := q.InvoiceDetails(3, "en")
	require.Len(t, got, 1)
	inv := got[0]
	assert.Equal(t, "kaydi", inv.CustomerName)
	assert.Equal(t, int64(75_000+3*65_000), inv.TotalPrice)

	require.Len(t, inv.Tickets, 1)
	tk := inv.Tickets[0]
	assert.Equal(t, "Fantastic Four", tk.MovieName)
	assert.Equal(t, "Unknown Cinema", tk.CinemaName, "no en or requested locale entry")
	assert.Equal(t, "A", tk.SeatRow)
	assert.Equal(t, "19:00", tk.StartTime)

	require.Len(t, inv.SoldFnbs, 1)
	assert.Equal(t, "Unknown Item", inv.SoldFnbs[0].Name)
	assert.Equal(t, "L", inv.SoldFnbs[0].Size)

	orphan := q.InvoiceDetails(99, "en")
	require.Len(t, orphan, 1)
	assert.Equal(t, "Unknown Customer", orphan[0].CustomerName)
	assert.Equal(t, "Unknown Movie", orphan[0].Tickets[0].MovieName)
	assert.Equal(t, model.NotAvailable, orphan[0].Tickets[0].SeatRow)
	assert.Equal(t, "M", orphan[0].SoldFnbs[0].Size)

	assert.Empty(t, q.InvoiceDetails(12345, "en"))
}
