// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

// OrderCreatedQueue is the durable queue order events are routed to.
const OrderCreatedQueue = "order.created"

// OrderCreatedEvent is published when a checkout produces an invoice.  It
// carries enough denormalised detail for consumers to log or notify without
// reading the catalog.
type OrderCreatedEvent struct {
	InvoiceID    int64    `json:"invoice_id"`
	InvoiceCode  string   `json:"invoice_code"`
	CustomerID   int64    `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	MovieName    string   `json:"movie_name"`
	CinemaName   string   `json:"cinema_name"`
	Date         string   `json:"date"`
	StartTime    string   `json:"start_time"`
	Seats        []string `json:"seats"`
	FnbCount     int      `json:"fnb_count"`
	Total        int64    `json:"total"`
	CreatedAt    string   `json:"created_at"`
}
