package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// LoadCatalog reads every catalog table from MySQL and returns the indexed
// snapshot.  One SELECT is issued per table; translation rows come from the
// matching <entity>_translations table and list columns are JSON arrays.
// The returned error names the table that failed.
func LoadCatalog(ctx context.Context, db *sql.DB) (*Catalog, error) {
	var t Tables
	steps := []struct {
		table string
		load  func(context.Context, *sql.DB, *Tables) error
	}{
		{"users", loadUsers},
		{"memberships", loadMemberships},
		{"genres", loadGenres},
		{"movies", loadMovies},
		{"cinemas", loadCinemas},
		{"screens", loadScreens},
		{"seats", loadSeats},
		{"time_slots", loadTimeSlots},
		{"movie_schedules", loadSchedules},
		{"events", loadEvents},
		{"vouchers", loadVouchers},
		{"fnb_items", loadFnbItems},
		{"sold_invoices", loadInvoices},
		{"tickets", loadTickets},
		{"sold_fnbs", loadSoldFnbs},
	}
	for _, s := range steps {
		if err := s.load(ctx, db, &t); err != nil {
			return nil, fmt.Errorf("load %s: %w", s.table, err)
		}
	}
	return NewCatalog(t), nil
}

// queryAll runs q and scans every row with scan.
func queryAll[T any](ctx context.Context, db *sql.DB, q string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// translated holds one translation row together with its owner id.
type translated[T any] struct {
	ownerID int64
	row     T
}

// groupTranslations runs q (owner id first column) and groups the rows by owner.
func groupTranslations[T any](ctx context.Context, db *sql.DB, q string, scan func(*sql.Rows) (int64, T, error)) (map[int64][]T, error) {
	rows, err := queryAll(ctx, db, q, func(r *sql.Rows) (translated[T], error) {
		id, v, err := scan(r)
		return translated[T]{ownerID: id, row: v}, err
	})
	if err != nil {
		return nil, fmt.Errorf("translations: %w", err)
	}
	m := make(map[int64][]T)
	for _, r := range rows {
		m[r.ownerID] = append(m[r.ownerID], r.row)
	}
	return m, nil
}

// jsonList decodes a nullable JSON array column.  NULL and empty strings
// decode to nil.
func jsonList[T any](raw sql.NullString) ([]T, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return nil, fmt.Errorf("decode json list: %w", err)
	}
	return out, nil
}
