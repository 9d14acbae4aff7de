package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinema-booking/internal/model"
)

func loadGenres(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT genre_id, locale, name FROM genre_translations ORDER BY genre_id, id`,
		func(r *sql.Rows) (int64, model.GenreTranslation, error) {
			var id int64
			var g model.GenreTranslation
			err := r.Scan(&id, &g.Locale, &g.Name)
			return id, g, err
		})
	if err != nil {
		return err
	}
	t.Genres, err = queryAll(ctx, db, `SELECT id FROM genres ORDER BY id`,
		func(r *sql.Rows) (model.Genre, error) {
			var g model.Genre
			if err := r.Scan(&g.ID); err != nil {
				return g, err
			}
			g.Translations = tr[g.ID]
			return g, nil
		})
	return err
}

func loadMovies(ctx context.Context, db *sql.DB, t *Tables) error {
	tr, err := groupTranslations(ctx, db,
		`SELECT movie_id, locale, name, COALESCE(brief, ''), COALESCE(description, '')
		   FROM movie_translations ORDER BY movie_id, id`,
		func(r *sql.Rows) (int64, model.MovieTranslation, error) {
			var id int64
			var m model.MovieTranslation
			err := r.Scan(&id, &m.Locale, &m.Name, &m.Brief, &m.Description)
			return id, m, err
		})
	if err != nil {
		return err
	}
	const q = `SELECT id, code, genres, duration, COALESCE(poster_img, ''), COALESCE(trailer, ''),
	                  DATE_FORMAT(release_date, '%Y-%m-%d'), status, directors, casts, ratings
	             FROM movies ORDER BY id`
	t.Movies, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Movie, error) {
		var m model.Movie
		var genres, directors, casts, ratings sql.NullString
		if err := r.Scan(&m.ID, &m.Code, &genres, &m.Duration, &m.PosterImg, &m.Trailer,
			&m.ReleaseDate, &m.Status, &directors, &casts, &ratings); err != nil {
			return m, err
		}
		var err error
		if m.Genres, err = jsonList[int64](genres); err != nil {
			return m, err
		}
		if m.Directors, err = jsonList[string](directors); err != nil {
			return m, err
		}
		if m.Casts, err = jsonList[string](casts); err != nil {
			return m, err
		}
		if m.Ratings, err = jsonList[int64](ratings); err != nil {
			return m, err
		}
		m.Translations = tr[m.ID]
		return m, nil
	})
	return err
}
