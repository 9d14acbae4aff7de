package booking

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/catalog"
	"github.com/iliyamo/cinema-booking/internal/model"
)

// FnbLine is one selected F&B item with its quantity.
type FnbLine struct {
	Item     model.FnbItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// Flow holds the selections of one booking session.  Derived values
// (available dates, seats, prices) are computed on every read from the
// current selections, never cached.  A Flow is safe for concurrent use.
type Flow struct {
	q   *catalog.Queries
	log *zap.Logger

	mu         sync.Mutex
	step       Step
	movieID    *int64
	date       *string
	cinemaID   *int64
	screenType *string
	scheduleID *int64
	seatIDs    []int64
	fnb        []FnbLine
}

// NewFlow returns a flow positioned at StepSelectMovie.
func NewFlow(q *catalog.Queries, log *zap.Logger) *Flow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{q: q, log: log, step: StepSelectMovie}
}

// clearAfter drops every selection belonging to a step later than s.
func (f *Flow) clearAfter(s Step) {
	i := s.index()
	if i < StepSelectDate.index() {
		f.date = nil
	}
	if i < StepSelectCinema.index() {
		f.cinemaID = nil
	}
	if i < StepSelectScreenType.index() {
		f.screenType = nil
	}
	if i < StepSelectSchedule.index() {
		f.scheduleID = nil
	}
	if i < StepSelectSeat.index() {
		f.seatIDs = nil
	}
	if i < StepSelectFnb.index() {
		f.fnb = nil
	}
}

func (f *Flow) SelectMovie(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movieID = &id
	f.clearAfter(StepSelectMovie)
	f.step = StepSelectDate
}

func (f *Flow) SelectDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = &date
	f.clearAfter(StepSelectDate)
	f.step = StepSelectCinema
}

func (f *Flow) SelectCinema(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cinemaID = &id
	f.clearAfter(StepSelectCinema)
	f.step = StepSelectScreenType
}

func (f *Flow) SelectScreenType(t string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.screenType = &t
	f.clearAfter(StepSelectScreenType)
	f.step = StepSelectSchedule
}

func (f *Flow) SelectSchedule(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduleID = &id
	f.clearAfter(StepSelectSchedule)
	f.step = StepSelectSeat
}

// ToggleSeat adds id to the seat selection, or removes it when already
// selected.  The step does not change.
func (f *Flow) ToggleSeat(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := slices.Index(f.seatIDs, id); i >= 0 {
		f.seatIDs = slices.Delete(f.seatIDs, i, i+1)
		return
	}
	f.seatIDs = append(f.seatIDs, id)
}

func (f *Flow) FinishSeatSelection() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepSelectFnb
}

// SetFnb upserts the quantity of an F&B item.  A quantity of zero or less
// removes the line; an id missing from the menu is ignored.
func (f *Flow) SetFnb(itemID int64, qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.fnb, func(l FnbLine) bool { return l.Item.ID == itemID })
	switch {
	case i >= 0 && qty > 0:
		f.fnb[i].Quantity = qty
	case i >= 0:
		f.fnb = slices.Delete(f.fnb, i, i+1)
	case qty > 0:
		item, ok := f.q.Catalog().FnbItem(itemID)
		if !ok {
			f.log.Debug("ignoring unknown fnb item", zap.Int64("fnb_item_id", itemID))
			return
		}
		f.fnb = append(f.fnb, FnbLine{Item: item, Quantity: qty})
	}
}

func (f *Flow) FinishFnbSelection() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepReview
}

func (f *Flow) ProceedToPayment() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepPayment
}

// NextStep advances one position; no-op at the last step.
func (f *Flow) NextStep() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.step.index(); i >= 0 && i+1 < len(Steps) {
		f.step = Steps[i+1]
	}
}

// PrevStep goes back one position; no-op at the first step.
func (f *Flow) PrevStep() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.step.index(); i > 0 {
		f.step = Steps[i-1]
	}
}

func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flow) reset() {
	f.step = StepSelectMovie
	f.movieID = nil
	f.clearAfter(StepSelectMovie)
}

// InitializeWithMovie selects id when it is a now-showing movie and resets
// the flow otherwise.
func (f *Flow) InitializeWithMovie(id int64) {
	if f.q.IsAvailableMovie(id) {
		f.SelectMovie(id)
		return
	}
	f.log.Warn("movie not found, resetting booking flow", zap.Int64("movie_id", id))
	f.Reset()
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Selection is a copy of the raw selections.
type Selection struct {
	MovieID    *int64    `json:"movie_id"`
	Date       *string   `json:"date"`
	CinemaID   *int64    `json:"cinema_id"`
	ScreenType *string   `json:"screen_type"`
	ScheduleID *int64    `json:"schedule_id"`
	SeatIDs    []int64   `json:"seat_ids"`
	Fnb        []FnbLine `json:"fnb"`
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (f *Flow) selection() Selection {
	return Selection{
		MovieID:    clonePtr(f.movieID),
		Date:       clonePtr(f.date),
		CinemaID:   clonePtr(f.cinemaID),
		ScreenType: clonePtr(f.screenType),
		ScheduleID: clonePtr(f.scheduleID),
		SeatIDs:    append([]int64{}, f.seatIDs...),
		Fnb:        append([]FnbLine{}, f.fnb...),
	}
}

// Selection returns a copy of the current selections.
func (f *Flow) Selection() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection()
}
