package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinema-booking/internal/model"
)

func loadCinemas(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT cinema_id, locale, name, COALESCE(description, '')
		   FROM cinema_translations ORDER BY cinema_id, id`,
		func(r *sql.Rows) (int64, model.CinemaTranslation, error) {
			var id int64
			var c model.CinemaTranslation
			err := r.Scan(&id, &c.Locale, &c.Name, &c.Description)
			return id, c, err
		})
	if err != nil {
		return err
	}
	const q = `SELECT id, address, city, COALESCE(map_url, '') FROM cinemas ORDER BY id`
	t.Cinemas, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Cinema, error) {
		var c model.Cinema
		if err := r.Scan(&c.ID, &c.Address, &c.City, &c.MapURL); err != nil {
			return c, err
		}
		c.Translations = tr[c.ID]
		return c, nil
	})
	return err
}

func loadScreens(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, name, cinema_id, capacity, type FROM screens ORDER BY id`
	var err error
	t.Screens, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Screen, error) {
		var s model.Screen
		err := r.Scan(&s.ID, &s.Name, &s.CinemaID, &s.Capacity, &s.Type)
		return s, err
	})
	return err
}

func loadSeats(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = "SELECT id, screen_id, `row`, `column`, type, price, is_available FROM seats ORDER BY id"
	var err error
	t.Seats, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Seat, error) {
		var s model.Seat
		err := r.Scan(&s.ID, &s.ScreenID, &s.Row, &s.Column, &s.Type, &s.Price, &s.IsAvailable)
		return s, err
	})
	return err
}

func loadTimeSlots(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, DATE_FORMAT(date, '%Y-%m-%d'),
	                  TIME_FORMAT(start_time, '%H:%i'), TIME_FORMAT(end_time, '%H:%i')
	             FROM time_slots ORDER BY id`
	var err error
	t.TimeSlots, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.TimeSlot, error) {
		var s model.TimeSlot
		err := r.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime)
		return s, err
	})
	return err
}

func loadSchedules(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, movie_id, cinema_id, screen_id, time_slot_id FROM movie_schedules ORDER BY id`
	var err error
	t.Schedules, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.MovieSchedule, error) {
		var s model.MovieSchedule
		err := r.Scan(&s.ID, &s.MovieID, &s.CinemaID, &s.ScreenID, &s.TimeSlotID)
		return s, err
	})
	return err
}
