package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking/internal/fixture"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

func fixtureQueries(t *testing.T) *Queries {
	t.Helper()
	return New(fixture.Catalog())
}

func ptr[T any](v T) *T { return &v }

func TestAvailableMovies(t *testing.T) {
	q := fixtureQueries(t)
	movies := q.AvailableMovies()
	require.NotEmpty(t, movies)
	for _, m := range movies {
		assert.Equal(t, model.MovieNowShowing, m.Status)
	}
	assert.Equal(t, movies, q.AvailableMovies())
	assert.True(t, q.IsAvailableMovie(3))
	assert.False(t, q.IsAvailableMovie(6), "ended movie")
	assert.False(t, q.IsAvailableMovie(999))
}

func TestAvailabilityScenario(t *testing.T) {
	q := fixtureQueries(t)

	dates := q.AvailableDates(3)
	assert.Contains(t, dates, "2025-08-15")
	assert.Equal(t, "2025-08-11", dates[0], "time slot order")

	types := q.AvailableScreenTypes(3, "2025-08-15", ptr(int64(1)))
	assert.Contains(t, types, model.ScreenIMAX)
	assert.Greater(t, len(types), 1)

	cinemas := q.AvailableCinemas(3, "2025-08-15", ptr(model.ScreenIMAX))
	ids := make([]int64, 0, len(cinemas))
	for _, c := range cinemas {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, int64(1))

	schedules := q.AvailableSchedules(3, "2025-08-15", model.ScreenIMAX, 1)
	require.NotEmpty(t, schedules)
	for _, s := range schedules {
		assert.Equal(t, "2025-08-15", s.TimeSlot.Date)
		sch, ok := q.Catalog().Schedule(s.ID)
		require.True(t, ok)
		assert.Equal(t, int64(3), sch.MovieID)
		assert.Equal(t, int64(1), sch.CinemaID)
		scr, _ := q.Catalog().Screen(sch.ScreenID)
		assert.Equal(t, model.ScreenIMAX, scr.Type)
	}

	seats := q.AvailableSeats(schedules[0].ID)
	assert.NotEmpty(t, seats.BookedSeatIDs, "fixture sells two seats of this screening")
}

func TestUnknownInputsYieldEmpty(t *testing.T) {
	q := fixtureQueries(t)

	assert.Empty(t, q.AvailableDates(999))
	assert.NotNil(t, q.AvailableDates(999))
	assert.Empty(t, q.AvailableScreenTypes(3, "1999-01-01", nil))
	assert.Empty(t, q.AvailableCinemas(3, "1999-01-01", nil))
	assert.Empty(t, q.AvailableSchedules(3, "2025-08-15", "8K", 1))

	seats := q.AvailableSeats(-1)
	assert.NotNil(t, seats.Available)
	assert.Empty(t, seats.Available)
	assert.Empty(t, seats.BookedSeatIDs)
}

func TestAvailableSeatsPartitionsScreen(t *testing.T) {
	q := fixtureQueries(t)
	c := q.Catalog()

	byScreen := make(map[int64][]int64)
	for _, s := range c.Seats() {
		byScreen[s.ScreenID] = append(byScreen[s.ScreenID], s.ID)
	}

	for _, sch := range c.Schedules() {
		res := q.AvailableSeats(sch.ID)
		var union []int64
		for _, s := range res.Available {
			assert.NotContains(t, res.BookedSeatIDs, s.ID, "schedule %d", sch.ID)
			union = append(union, s.ID)
		}
		union = append(union, res.BookedSeatIDs...)
		assert.ElementsMatch(t, byScreen[sch.ScreenID], union, "schedule %d", sch.ID)
	}

	// paid 1, 2 and booked 3 occupy seats; cancelled 4 and refunded 5 do not
	res := q.AvailableSeats(1)
	assert.ElementsMatch(t, []int64{1, 2, 3}, res.BookedSeatIDs)
	assert.Equal(t, res, q.AvailableSeats(1))
}

func TestAvailableSeatsIgnoresOtherSchedules(t *testing.T) {
	c := repository.NewCatalog(repository.Tables{
		Screens:   []model.Screen{{ID: 1, CinemaID: 1}},
		Seats:     []model.Seat{{ID: 1, ScreenID: 1}, {ID: 2, ScreenID: 1}},
		TimeSlots: []model.TimeSlot{{ID: 1, Date: "2025-08-15"}},
		Schedules: []model.MovieSchedule{
			{ID: 1, MovieID: 1, CinemaID: 1, ScreenID: 1, TimeSlotID: 1},
			{ID: 2, MovieID: 1, CinemaID: 1, ScreenID: 1, TimeSlotID: 1},
		},
		Tickets: []model.Ticket{{ID: 1, MovieScheduleID: 2, SeatID: 1, Status: model.TicketPaid}},
	})
	q := New(c)

	assert.Len(t, q.AvailableSeats(1).Available, 2)
	assert.Equal(t, []int64{1}, q.AvailableSeats(2).BookedSeatIDs)
}

func TestAvailableFnbReturnsCopy(t *testing.T) {
	q := fixtureQueries(t)
	items := q.AvailableFnb()
	require.NotEmpty(t, items)
	items[0].Price = -1
	assert.NotEqual(t, int64(-1), q.AvailableFnb()[0].Price)
}
