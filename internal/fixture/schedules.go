package fixture

import (
	"time"

	"github.com/iliyamo/cinema-booking/internal/model"
)

var (
	slotDates  = []string{"2025-08-11", "2025-08-12", "2025-08-13", "2025-08-14", "2025-08-15", "2025-08-16", "2025-08-17"}
	slotStarts = []string{"09:00", "11:30", "14:00", "16:30", "19:00", "21:30"}
)

const slotLength = 150 * time.Minute

func timeSlots() []model.TimeSlot {
	var out []model.TimeSlot
	id := int64(1)
	for _, d := range slotDates {
		for _, start := range slotStarts {
			st, _ := time.Parse("15:04", start)
			out = append(out, model.TimeSlot{
				ID:        id,
				Date:      d,
				StartTime: start,
				EndTime:   st.Add(slotLength).Format("15:04"),
			})
			id++
		}
	}
	return out
}

// showsPerDay is how many screenings a movie gets per cinema per date.
const showsPerDay = 2

// schedules plans every now-showing movie at most cinemas on every date.
// Within one cinema and date the k-th movie's s-th show takes pair
// p = k*showsPerDay + s, mapped to screen p%3 and start slot (p/3 + day)%6,
// so no screen is double-booked for a slot.
func schedules(ms []model.Movie, cs []model.Cinema, ss []model.Screen, ts []model.TimeSlot) []model.MovieSchedule {
	byCinema := make(map[int64][]model.Screen)
	for _, s := range ss {
		byCinema[s.CinemaID] = append(byCinema[s.CinemaID], s)
	}

	var showing []model.Movie
	for _, m := range ms {
		if m.Status == model.MovieNowShowing {
			showing = append(showing, m)
		}
	}

	var out []model.MovieSchedule
	id := int64(1)
	for k, m := range showing {
		for _, c := range cs {
			if (int(c.ID)+k)%4 == 0 {
				continue
			}
			screens := byCinema[c.ID]
			if len(screens) == 0 {
				continue
			}
			for day := range slotDates {
				for s := 0; s < showsPerDay; s++ {
					p := k*showsPerDay + s
					slot := ts[day*len(slotStarts)+(p/len(screens)+day)%len(slotStarts)]
					out = append(out, model.MovieSchedule{
						ID:         id,
						MovieID:    m.ID,
						CinemaID:   c.ID,
						ScreenID:   screens[p%len(screens)].ID,
						TimeSlotID: slot.ID,
					})
					id++
				}
			}
		}
	}
	return out
}
