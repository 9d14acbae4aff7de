package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinema-booking/internal/model"
)

const isoDateTime = "'%Y-%m-%dT%H:%i:%sZ'"

func loadInvoices(ctx context.Context, db *sql.DB, t *Tables) error {
	q := `SELECT id, code, DATE_FORMAT(date, ` + isoDateTime + `), customer_id, staff_id,
	             payment_method, DATE_FORMAT(created_at, ` + isoDateTime + `)
	        FROM sold_invoices ORDER BY id`
	var err error
	t.Invoices, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.SoldInvoice, error) {
		var i model.SoldInvoice
		err := r.Scan(&i.ID, &i.Code, &i.Date, &i.CustomerID, &i.StaffID, &i.PaymentMethod, &i.CreatedAt)
		return i, err
	})
	return err
}

func loadTickets(ctx context.Context, db *sql.DB, t *Tables) error {
	q := `SELECT id, price, movie_schedule_id, seat_id, sold_invoice_id, status,
	             DATE_FORMAT(created_at, ` + isoDateTime + `)
	        FROM tickets ORDER BY id`
	var err error
	t.Tickets, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Ticket, error) {
		var tk model.Ticket
		err := r.Scan(&tk.ID, &tk.Price, &tk.MovieScheduleID, &tk.SeatID, &tk.SoldInvoiceID, &tk.Status, &tk.CreatedAt)
		return tk, err
	})
	return err
}

func loadSoldFnbs(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, sold_invoice_id, fnb_item_id, quantity, price_per_item FROM sold_fnbs ORDER BY id`
	var err error
	t.SoldFnbs, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.SoldFnb, error) {
		var s model.SoldFnb
		err := r.Scan(&s.ID, &s.SoldInvoiceID, &s.FnbItemID, &s.Quantity, &s.PricePerItem)
		return s, err
	})
	return err
}
