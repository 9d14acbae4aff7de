package model

// TimeSlot is a (date, start, end) triple independent of any movie.
type TimeSlot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// Range formats the slot as "start - end".
func (t TimeSlot) Range() string { return t.StartTime + " - " + t.EndTime }

// MovieSchedule is a specific showing: a movie in a screen of a cinema
// during a time slot.
type MovieSchedule struct {
	ID         int64 `json:"id"`
	MovieID    int64 `json:"movie_id"`
	CinemaID   int64 `json:"cinema_id"`
	ScreenID   int64 `json:"screen_id"`
	TimeSlotID int64 `json:"time_slot_id"`
}
