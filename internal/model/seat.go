package model

// Seat type values.
const (
	SeatStandard = "standard"
	SeatVIP      = "vip"
	SeatCouple   = "couple"
)

// Seat describes a physical seat in a screen.  Seats are uniquely
// identified by their screen, row label and column.  Availability for a
// particular schedule is derived from tickets, not from IsAvailable; the
// flag only reflects whether the seat is in service.
//
// Fields:
//
//	ID          – surrogate key.
//	ScreenID    – screen to which this seat belongs.
//	Row         – row label (A, B, ...).
//	Column      – column label ("1".."10").
//	Type        – standard, vip or couple.
//	Price       – ticket price in VND.
//	IsAvailable – whether the seat is in service.
type Seat struct {
	ID          int64  `json:"id"`
	ScreenID    int64  `json:"screen_id"`
	Row         string `json:"row"`
	Column      string `json:"column"`
	Type        string `json:"type"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"is_available"`
}

// Label returns the printed seat label, e.g. "C7".
func (s Seat) Label() string { return s.Row + s.Column }
