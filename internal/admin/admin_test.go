package admin

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking/internal/fixture"
	"github.com/iliyamo/cinema-booking/internal/model"
)

func fixtureAdmin(t *testing.T) *Admin {
	t.Helper()
	return New(fixture.Catalog())
}

type row struct {
	name string
	kind string
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{name: "row" + strings.Repeat("x", i%3), kind: []string{"a", "b"}[i%2]}
	}
	return out
}

func newRowList(n int) *List[row] {
	return NewList(rows(n),
		func(r row, q string) bool { return containsFold(r.name, q) },
		Filter[row]{Name: "kind", Match: func(r row, v string) bool { return r.kind == v }},
	)
}

func TestListPaginationCoversFiltered(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		for _, size := range []int{1, 3, 10} {
			l := newRowList(n)
			l.SetPageSize(size)
			want := l.Filtered()
			assert.Equal(t, (len(want)+size-1)/size, l.TotalPages())

			var got []row
			for p := 1; p <= l.TotalPages(); p++ {
				l.SetPage(p)
				require.Equal(t, p, l.CurrentPage())
				got = append(got, l.Page()...)
			}
			assert.Equal(t, len(want), len(got), "n=%d size=%d", n, size)
			if len(want) > 0 {
				assert.Equal(t, want, got)
			}
		}
	}
}

func TestListSetPageBounds(t *testing.T) {
	l := newRowList(25)
	assert.Equal(t, 3, l.TotalPages())

	l.SetPage(0)
	assert.Equal(t, 1, l.CurrentPage())
	l.SetPage(4)
	assert.Equal(t, 1, l.CurrentPage())
	l.SetPage(3)
	assert.Equal(t, 3, l.CurrentPage())
	assert.Len(t, l.Page(), 5)

	empty := newRowList(0)
	empty.SetPage(1)
	assert.Equal(t, 1, empty.CurrentPage())
	assert.Empty(t, empty.Page())
	assert.Zero(t, empty.TotalPages())
}

func TestListSettersResetPage(t *testing.T) {
	l := newRowList(25)
	l.SetPage(2)
	l.SetSearch("rowx")
	assert.Equal(t, 1, l.CurrentPage())

	l.SetPage(2)
	l.SetFilter("kind", "a")
	assert.Equal(t, 1, l.CurrentPage())

	l.SetFilter("nope", "a")
	assert.Empty(t, l.FilterValue("nope"), "unknown filter ignored")

	l.SetPageSize(0)
	assert.Equal(t, DefaultPageSize, l.PageSize())
}

func TestListSearchAndFilters(t *testing.T) {
	l := newRowList(12)
	l.SetSearch("  ROWXX ")
	for _, r := range l.Filtered() {
		assert.Equal(t, "rowxx", r.name)
	}
	assert.Len(t, l.Filtered(), 4)

	l.SetFilter("kind", "b")
	for _, r := range l.Filtered() {
		assert.Equal(t, "b", r.kind)
		assert.Equal(t, "rowxx", r.name)
	}

	l.SetSearch("   ")
	assert.Len(t, l.Filtered(), 6, "blank search is skipped")

	l.Reset()
	assert.Len(t, l.Filtered(), 12)
	assert.Empty(t, l.Search())
}

func TestListResult(t *testing.T) {
	l := newRowList(25)
	l.SetPage(3)
	res := l.Result()
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 25, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Items, 5)
}

func TestCinemaListings(t *testing.T) {
	a := fixtureAdmin(t)

	cinemas := a.Cinemas()
	assert.Len(t, cinemas.Filtered(), 8)
	cinemas.SetFilter(FilterCity, "Hồ Chí Minh")
	assert.Len(t, cinemas.Filtered(), 2)
	cinemas.SetSearch("landmark")
	require.Len(t, cinemas.Filtered(), 1)
	assert.Equal(t, 3, cinemas.Filtered()[0].ScreenCount)

	screens := a.Screens()
	screens.SetSearch("screen 2")
	screens.SetFilter(FilterCinema, "1")
	assert.Empty(t, screens.Search(), "cinema filter clears search")
	assert.Len(t, screens.Filtered(), 3)
	assert.Equal(t, "CGV Vincom Center Ba Trieu", screens.Filtered()[0].CinemaName.EN)
	assert.Len(t, a.ScreensOf(1), 3)
	assert.Empty(t, a.ScreensOf(999))
}

func TestSeatListingCascade(t *testing.T) {
	a := fixtureAdmin(t)
	seats := a.Seats()
	assert.Len(t, seats.Filtered(), 24*50)

	seats.SetFilter(FilterCinema, "1")
	assert.Len(t, seats.Filtered(), 150)

	seats.SetFilter(FilterScreen, "1")
	seats.SetFilter(FilterType, model.SeatVIP)
	assert.Len(t, seats.Filtered(), 20)

	seats.SetFilter(FilterType, "")
	seats.SetFilter(FilterAvailability, SeatsUnavailable)
	assert.Len(t, seats.Filtered(), 3)

	seats.SetFilter(FilterScreen, "2")
	assert.Empty(t, seats.FilterValue(FilterAvailability))
	assert.Equal(t, "1", seats.FilterValue(FilterCinema))

	seats.SetFilter(FilterType, model.SeatCouple)
	seats.SetFilter(FilterCinema, "2")
	assert.Empty(t, seats.FilterValue(FilterScreen))
	assert.Empty(t, seats.FilterValue(FilterType))
	assert.Len(t, seats.Filtered(), 150)
}

func TestMovieListings(t *testing.T) {
	a := fixtureAdmin(t)

	movies := a.Movies()
	movies.SetFilter(FilterStatus, model.MovieNowShowing)
	assert.Len(t, movies.Filtered(), 6)
	movies.SetFilter(FilterGenre, "3")
	for _, m := range movies.Filtered() {
		assert.True(t, m.HasGenre(3))
		assert.Equal(t, model.MovieNowShowing, m.Status)
	}

	genres := a.Genres()
	assert.Len(t, genres.Filtered(), 16)
	total := 0
	for _, g := range genres.Filtered() {
		total += g.MovieCount
	}
	assert.Positive(t, total)

	schedules := a.Schedules()
	schedules.SetFilter(FilterCinema, "1")
	for _, s := range schedules.Filtered() {
		assert.Equal(t, int64(1), s.CinemaID)
		assert.NotEqual(t, model.NotAvailable, s.TimeSlot)
	}

	slots := a.TimeSlots()
	all := slots.Filtered()
	require.Len(t, all, 42)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.True(t, prev.Date < cur.Date || (prev.Date == cur.Date && prev.StartTime <= cur.StartTime))
	}
	slots.SetFilter(FilterDate, "2025-08-15")
	assert.Len(t, slots.Filtered(), 6)
}

func TestPromotionListings(t *testing.T) {
	a := fixtureAdmin(t)

	events := a.Events()
	events.SetFilter(FilterStatus, model.PromoActive)
	assert.Len(t, events.Filtered(), 4)
	events.SetSearch("happy-tuesday")
	assert.Len(t, events.Filtered(), 1)

	vouchers := a.Vouchers()
	vouchers.SetSearch("vip50k")
	assert.Len(t, vouchers.Filtered(), 1)

	fnb := a.FnbItems()
	fnb.SetFilter(FilterType, model.FnbCombo)
	assert.Len(t, fnb.Filtered(), 2)
	fnb.SetSearch("couple")
	assert.Len(t, fnb.Filtered(), 1)
}

func TestSalesListings(t *testing.T) {
	a := fixtureAdmin(t)

	tickets := a.Tickets()
	tickets.SetSearch("kaydi")
	assert.Len(t, tickets.Filtered(), 4)
	tickets.SetSearch("")
	tickets.SetFilter(FilterStatus, model.TicketPaid)
	assert.Len(t, tickets.Filtered(), 4)

	invoices := a.Invoices()
	invoices.SetFilter(FilterPaymentMethod, model.PaymentCash)
	require.Len(t, invoices.Filtered(), 1)
	inv := invoices.Filtered()[0]
	assert.Equal(t, "kaydi", inv.CustomerName)
	assert.Equal(t, "staff01", inv.StaffName)
	assert.Equal(t, 4, inv.ItemCount)
	assert.Equal(t, int64(310_000), inv.TotalAmount)

	sold := a.SoldFnbs()
	sold.SetSearch("inv-2025-1")
	assert.Len(t, sold.Filtered(), 2)

	users := a.Users()
	users.SetFilter(FilterRole, model.RoleMember)
	assert.Len(t, users.Filtered(), 3)
	users.SetSearch("KAYDI")
	require.Len(t, users.Filtered(), 1)
	assert.Equal(t, int64(120), users.Filtered()[0].Points)
}

func TestStats(t *testing.T) {
	a := fixtureAdmin(t)

	assert.Equal(t, CinemaStats{TotalCinemas: 8, TotalScreens: 24, TotalCapacity: 1200}, a.CinemaStats())
	assert.Equal(t, []string{"Hà Nội", "Hồ Chí Minh"}, a.AvailableCities())
	assert.Equal(t, []string{model.SeatCouple, model.SeatStandard, model.SeatVIP}, a.AvailableSeatTypes())
	assert.Equal(t, []string{model.FnbPopcorn, model.FnbDrink, model.FnbCombo, model.FnbSnack}, a.AvailableFnbTypes())
	dates := a.AvailableDates()
	require.Len(t, dates, 7)
	assert.Equal(t, "2025-08-11", dates[0])
	assert.Equal(t, "2025-08-17", dates[6])

	us := a.UserStats()
	assert.Equal(t, 3, us.TotalMembers)
	assert.Equal(t, map[string]int{model.TierMember: 1, model.TierVIP: 1, model.TierVVIP: 1}, us.TierDistribution)
	require.NotNil(t, us.TopMember)
	assert.Equal(t, "thuha", us.TopMember.Username)
	assert.Equal(t, int64(1500), us.TopMember.Points)
}

func TestDashboard(t *testing.T) {
	a := fixtureAdmin(t)
	d := a.Dashboard(time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 4, d.Summary.TicketsSold)
	assert.Equal(t, int64(384_000), d.Summary.FnbSales)
	assert.Equal(t, int64(684_000), d.Summary.TotalRevenue)
	assert.Equal(t, 3, d.Summary.ActiveEvents)

	require.Len(t, d.MonthlyRevenue, 12)
	assert.Equal(t, "Jan", d.MonthlyRevenue[0].Month)
	assert.Equal(t, int64(159_000), d.MonthlyRevenue[5].Revenue)
	assert.Equal(t, int64(215_000), d.MonthlyRevenue[6].Revenue)
	assert.Equal(t, int64(310_000), d.MonthlyRevenue[7].Revenue)
	var sum int64
	for _, m := range d.MonthlyRevenue {
		sum += m.Revenue
	}
	assert.Equal(t, d.Summary.TotalRevenue, sum)

	require.Len(t, d.SalesBreakdown, 2)
	assert.Equal(t, d.Summary.TotalRevenue-d.Summary.FnbSales, d.SalesBreakdown[0].Amount)
	assert.Equal(t, d.Summary.FnbSales, d.SalesBreakdown[1].Amount)

	other := a.Dashboard(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, m := range other.MonthlyRevenue {
		assert.Zero(t, m.Revenue)
	}
	assert.Zero(t, other.Summary.ActiveEvents)
}

func TestEventActiveBounds(t *testing.T) {
	e := model.Event{Status: model.PromoActive, StartDate: "2025-07-25", EndDate: "2025-07-25"}
	assert.True(t, eventActive(e, time.Date(2025, 7, 25, 23, 59, 0, 0, time.UTC)))
	assert.False(t, eventActive(e, time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)))
	assert.False(t, eventActive(e, time.Date(2025, 7, 24, 23, 59, 0, 0, time.UTC)))

	e.Status = model.PromoInactive
	assert.False(t, eventActive(e, time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC)))
}

func TestFilterNamesInDeclarationOrder(t *testing.T) {
	a := fixtureAdmin(t)
	assert.Equal(t, []string{FilterCinema, FilterScreen, FilterType, FilterAvailability}, a.Seats().FilterNames())
	assert.Equal(t, []string{FilterDate}, a.TimeSlots().FilterNames())
}
