package model

// Payment methods.
const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentMomo       = "momo"
	PaymentPaypal     = "paypal"
	PaymentOnline     = "online"
)

// Ticket status values.  Only booked and paid tickets occupy a seat.
const (
	TicketBooked    = "booked"
	TicketPaid      = "paid"
	TicketCancelled = "cancelled"
	TicketRefunded  = "refunded"
)

// SoldInvoice records a completed sale.  Tickets and sold F&B lines
// reference it by id.
//
// Fields:
//
//	ID            – surrogate key.
//	Code          – printed invoice code.
//	Date          – sale date (RFC 3339).
//	CustomerID    – buying user.
//	StaffID       – staff account that processed the sale.
//	PaymentMethod – cash, credit_card, momo, paypal or online.
type SoldInvoice struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Date          string `json:"date"`
	CustomerID    int64  `json:"customer_id"`
	StaffID       int64  `json:"staff_id"`
	PaymentMethod string `json:"payment_method"`
	CreatedAt     string `json:"created_at"`
}

// Ticket is one seat sold for one schedule.
type Ticket struct {
	ID              int64  `json:"id"`
	Price           int64  `json:"price"`
	MovieScheduleID int64  `json:"movie_schedule_id"`
	SeatID          int64  `json:"seat_id"`
	SoldInvoiceID   int64  `json:"sold_invoice_id"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// OccupiesSeat reports whether the ticket blocks its seat for the schedule.
func (t Ticket) OccupiesSeat() bool {
	return t.Status == TicketPaid || t.Status == TicketBooked
}

// SoldFnb is one F&B line of an invoice.
type SoldFnb struct {
	ID            int64 `json:"id"`
	SoldInvoiceID int64 `json:"sold_invoice_id"`
	FnbItemID     int64 `json:"fnb_item_id"`
	Quantity      int   `json:"quantity"`
	PricePerItem  int64 `json:"price_per_item"`
}

// Total is quantity × unit price.
func (s SoldFnb) Total() int64 { return int64(s.Quantity) * s.PricePerItem }

// TicketDetail is a ticket denormalised with display names.
type TicketDetail struct {
	Ticket
	MovieName   string `json:"movie_name"`
	MoviePoster string `json:"movie_poster"`
	CinemaName  string `json:"cinema_name"`
	ScreenName  string `json:"screen_name"`
	ScreenType  string `json:"screen_type"`
	SeatRow     string `json:"seat_row"`
	SeatColumn  string `json:"seat_column"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// SoldFnbDetail is a sold F&B line denormalised with display names.
type SoldFnbDetail struct {
	SoldFnb
	Name  string `json:"name"`
	Image string `json:"image"`
	Size  string `json:"size"`
}

// InvoiceDetail is an invoice with its denormalised lines and total.
type InvoiceDetail struct {
	SoldInvoice
	CustomerName string          `json:"customer_name"`
	Tickets      []TicketDetail  `json:"tickets"`
	SoldFnbs     []SoldFnbDetail `json:"sold_fnbs"`
	TotalPrice   int64           `json:"total_price"`
}
