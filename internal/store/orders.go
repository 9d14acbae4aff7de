package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/cinema-booking/internal/booking"
	"github.com/iliyamo/cinema-booking/internal/model"
	"github.com/iliyamo/cinema-booking/internal/queue"
	"github.com/iliyamo/cinema-booking/internal/repository"
)

// checkoutStaffID is the staff account credited with self-service orders.
const checkoutStaffID = 2

// Publisher receives an event for every created order.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, ev queue.OrderCreatedEvent) error
}

// OrderPayload is everything needed to turn a finished booking into an
// invoice.  TotalPrice is recorded as given.
type OrderPayload struct {
	Customer      model.Profile
	MovieID       int64
	CinemaID      int64
	ScheduleID    int64
	SeatIDs       []int64
	Fnb           []booking.FnbLine
	TotalPrice    int64
	PaymentMethod string
}

// OrderStore holds the invoices created during a session, newest first,
// and persists them under KeyOrders after every change.
type OrderStore struct {
	kv  KV
	c   *repository.Catalog
	log *zap.Logger
	now func() time.Time
	pub Publisher

	mu         sync.Mutex
	orders     []model.InvoiceDetail
	nextTicket int64
	nextFnb    int64
}

type OrderOption func(*OrderStore)

// WithClock replaces time.Now for invoice timestamps.
func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderStore) { s.now = now }
}

// WithPublisher announces every created order through p.
func WithPublisher(p Publisher) OrderOption {
	return func(s *OrderStore) { s.pub = p }
}

// NewOrderStore hydrates the store from kv.  A missing or corrupt value
// starts an empty history.
func NewOrderStore(ctx context.Context, kv KV, c *repository.Catalog, log *zap.Logger, opts ...OrderOption) *OrderStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &OrderStore{kv: kv, c: c, log: log, now: time.Now, orders: []model.InvoiceDetail{}}
	for _, o := range opts {
		o(s)
	}
	s.hydrate(ctx)
	return s
}

func (s *OrderStore) hydrate(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, KeyOrders)
	if err != nil {
		s.log.Warn("load orders", zap.Error(err))
		return
	}
	if !ok || raw == "" {
		return
	}
	var orders []model.InvoiceDetail
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.log.Warn("corrupt stored orders, starting empty", zap.Error(err))
		return
	}
	if orders == nil {
		orders = []model.InvoiceDetail{}
	}
	s.orders = orders
	for _, o := range orders {
		for _, t := range o.Tickets {
			s.nextTicket = max(s.nextTicket, t.ID)
		}
		for _, f := range o.SoldFnbs {
			s.nextFnb = max(s.nextFnb, f.ID)
		}
	}
}

// persist must be called with s.mu held.
func (s *OrderStore) persist(ctx context.Context) {
	b, err := json.Marshal(s.orders)
	if err != nil {
		s.log.Error("encode orders", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, KeyOrders, string(b)); err != nil {
		s.log.Error("persist orders", zap.Error(err))
	}
}

func resolvedName[T model.Localized](list []T, locale string, name func(T) string) string {
	t, ok := model.Translate(list, locale)
	if !ok || name(t) == "" {
		return model.NotAvailable
	}
	return name(t)
}

// CreateOrder builds an invoice from p, inserts it at the head of the
// history and returns it.  Display names are resolved now for locale and
// never recomputed.
func (s *OrderStore) CreateOrder(ctx context.Context, p OrderPayload, locale string) model.InvoiceDetail {
	now := s.now()
	stamp := now.UTC().Format(time.RFC3339)

	movie, hasMovie := s.c.Movie(p.MovieID)
	cinema, hasCinema := s.c.Cinema(p.CinemaID)
	sch, hasSchedule := s.c.Schedule(p.ScheduleID)
	var (
		screen    model.Screen
		hasScreen bool
		slot      model.TimeSlot
		hasSlot   bool
	)
	if hasSchedule {
		screen, hasScreen = s.c.Screen(sch.ScreenID)
		slot, hasSlot = s.c.TimeSlot(sch.TimeSlotID)
	}

	s.mu.Lock()
	var id int64
	for _, o := range s.orders {
		id = max(id, o.ID)
	}
	id++

	inv := model.InvoiceDetail{
		SoldInvoice: model.SoldInvoice{
			ID:            id,
			Code:          fmt.Sprintf("INV-%d-%d", now.Year(), id),
			Date:          stamp,
			CustomerID:    p.Customer.ID,
			StaffID:       checkoutStaffID,
			PaymentMethod: p.PaymentMethod,
			CreatedAt:     stamp,
		},
		CustomerName: p.Customer.Username,
		Tickets:      make([]model.TicketDetail, 0, len(p.SeatIDs)),
		SoldFnbs:     make([]model.SoldFnbDetail, 0, len(p.Fnb)),
		TotalPrice:   p.TotalPrice,
	}

	for _, seatID := range p.SeatIDs {
		s.nextTicket++
		d := model.TicketDetail{
			Ticket: model.Ticket{
				ID:              s.nextTicket,
				MovieScheduleID: p.ScheduleID,
				SeatID:          seatID,
				SoldInvoiceID:   id,
				Status:          model.TicketPaid,
				CreatedAt:       stamp,
			},
			MovieName:  model.NotAvailable,
			CinemaName: model.NotAvailable,
			ScreenName: model.NotAvailable,
			ScreenType: model.ScreenStandard,
			SeatRow:    "?",
			SeatColumn: "?",
			Date:       model.NotAvailable,
			StartTime:  model.NotAvailable,
			EndTime:    model.NotAvailable,
		}
		if seat, ok := s.c.Seat(seatID); ok {
			d.Price = seat.Price
			d.SeatRow, d.SeatColumn = seat.Row, seat.Column
		}
		if hasMovie {
			d.MovieName = resolvedName(movie.Translations, locale, func(t model.MovieTranslation) string { return t.Name })
			d.MoviePoster = movie.PosterImg
		}
		if hasCinema {
			d.CinemaName = resolvedName(cinema.Translations, locale, func(t model.CinemaTranslation) string { return t.Name })
		}
		if hasScreen {
			d.ScreenName, d.ScreenType = screen.Name, screen.Type
		}
		if hasSlot {
			d.Date, d.StartTime, d.EndTime = slot.Date, slot.StartTime, slot.EndTime
		}
		inv.Tickets = append(inv.Tickets, d)
	}

	for _, line := range p.Fnb {
		s.nextFnb++
		inv.SoldFnbs = append(inv.SoldFnbs, model.SoldFnbDetail{
			SoldFnb: model.SoldFnb{
				ID:            s.nextFnb,
				SoldInvoiceID: id,
				FnbItemID:     line.Item.ID,
				Quantity:      line.Quantity,
				PricePerItem:  line.Item.Price,
			},
			Name:  resolvedName(line.Item.Translations, locale, func(t model.FnbTranslation) string { return t.Name }),
			Image: line.Item.Image,
			Size:  line.Item.Size,
		})
	}

	s.orders = append([]model.InvoiceDetail{inv}, s.orders...)
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, inv)
	return inv
}

func (s *OrderStore) publish(ctx context.Context, inv model.InvoiceDetail) {
	if s.pub == nil {
		return
	}
	ev := queue.OrderCreatedEvent{
		InvoiceID:    inv.ID,
		InvoiceCode:  inv.Code,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		MovieName:    model.NotAvailable,
		CinemaName:   model.NotAvailable,
		Date:         model.NotAvailable,
		StartTime:    model.NotAvailable,
		Seats:        make([]string, 0, len(inv.Tickets)),
		FnbCount:     len(inv.SoldFnbs),
		Total:        inv.TotalPrice,
		CreatedAt:    inv.CreatedAt,
	}
	for i, t := range inv.Tickets {
		if i == 0 {
			ev.MovieName, ev.CinemaName = t.MovieName, t.CinemaName
			ev.Date, ev.StartTime = t.Date, t.StartTime
		}
		ev.Seats = append(ev.Seats, t.SeatRow+t.SeatColumn)
	}
	if err := s.pub.PublishOrderCreated(ctx, ev); err != nil {
		s.log.Warn("publish order created", zap.Int64("invoice_id", inv.ID), zap.Error(err))
	}
}

// Orders returns the whole history, newest first.
func (s *OrderStore) Orders() []model.InvoiceDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.InvoiceDetail{}, s.orders...)
}

// OrdersByUser returns the invoices of userID, newest first.
func (s *OrderStore) OrdersByUser(userID int64) []model.InvoiceDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.InvoiceDetail{}
	for _, o := range s.orders {
		if o.CustomerID == userID {
			out = append(out, o)
		}
	}
	return out
}

// ClearOrders empties the history and removes the persisted copy.
func (s *OrderStore) ClearOrders(ctx context.Context) {
	s.mu.Lock()
	s.orders = []model.InvoiceDetail{}
	s.mu.Unlock()
	if err := s.kv.Remove(ctx, KeyOrders); err != nil {
		s.log.Error("remove orders", zap.Error(err))
	}
}
