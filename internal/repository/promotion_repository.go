package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinema-booking/internal/model"
)

func loadEvents(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT event_id, locale, name, COALESCE(description, ''), COALESCE(terms, '')
		   FROM event_translations ORDER BY event_id, id`,
		func(r *sql.Rows) (int64, model.EventTranslation, error) {
			var id int64
			var e model.EventTranslation
			err := r.Scan(&id, &e.Locale, &e.Name, &e.Description, &e.Terms)
			return id, e, err
		})
	if err != nil {
		return err
	}
	const q = `SELECT id, code, type, DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	                  status, COALESCE(image, ''), applicable_cinemas, applicable_movies,
	                  COALESCE(required_tier, '')
	             FROM events ORDER BY id`
	t.Events, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Event, error) {
		var e model.Event
		var cinemas, movies sql.NullString
		if err := r.Scan(&e.ID, &e.Code, &e.Type, &e.StartDate, &e.EndDate, &e.Status,
			&e.Image, &cinemas, &movies, &e.RequiredTier); err != nil {
			return e, err
		}
		var err error
		if e.ApplicableCinemas, err = jsonList[int64](cinemas); err != nil {
			return e, err
		}
		if e.ApplicableMovies, err = jsonList[int64](movies); err != nil {
			return e, err
		}
		e.Translations = tr[e.ID]
		return e, nil
	})
	return err
}

func loadVouchers(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT voucher_id, locale, description FROM voucher_translations ORDER BY voucher_id, id`,
		func(r *sql.Rows) (int64, model.VoucherTranslation, error) {
			var id int64
			var v model.VoucherTranslation
			err := r.Scan(&id, &v.Locale, &v.Description)
			return id, v, err
		})
	if err != nil {
		return err
	}
	const q = `SELECT id, code, type, value, COALESCE(max_discount, 0), COALESCE(min_order, 0),
	                  DATE_FORMAT(valid_from, '%Y-%m-%d'), DATE_FORMAT(valid_to, '%Y-%m-%d'),
	                  COALESCE(usage_limit, 0), status, applicable_tiers
	             FROM vouchers ORDER BY id`
	t.Vouchers, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Voucher, error) {
		var v model.Voucher
		var tiers sql.NullString
		if err := r.Scan(&v.ID, &v.Code, &v.Type, &v.Value, &v.MaxDiscount, &v.MinOrder,
			&v.ValidFrom, &v.ValidTo, &v.UsageLimit, &v.Status, &tiers); err != nil {
			return v, err
		}
		var err error
		if v.ApplicableTiers, err = jsonList[string](tiers); err != nil {
			return v, err
		}
		v.Translations = tr[v.ID]
		return v, nil
	})
	return err
}

func loadFnbItems(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT fnb_item_id, locale, name, COALESCE(description, '')
		   FROM fnb_item_translations ORDER BY fnb_item_id, id`,
		func(r *sql.Rows) (int64, model.FnbTranslation, error) {
			var id int64
			var f model.FnbTranslation
			err := r.Scan(&id, &f.Locale, &f.Name, &f.Description)
			return id, f, err
		})
	if err != nil {
		return err
	}
	const q = `SELECT id, code, type, price, size, COALESCE(image, '') FROM fnb_items ORDER BY id`
	t.FnbItems, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.FnbItem, error) {
		var f model.FnbItem
		if err := r.Scan(&f.ID, &f.Code, &f.Type, &f.Price, &f.Size, &f.Image); err != nil {
			return f, err
		}
		f.Translations = tr[f.ID]
		return f, nil
	})
	return err
}
