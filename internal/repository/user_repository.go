package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cinema-booking/internal/model"
)

func loadUsers(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, username, email, password_hash, COALESCE(phone, ''), role, tier, status,
	                  DATE_FORMAT(created_at, '%Y-%m-%dT%H:%i:%sZ')
	             FROM users ORDER BY id`
	var err error
	t.Users, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.User, error) {
		var u model.User
		err := r.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone,
			&u.Role, &u.Tier, &u.Status, &u.CreatedAt)
		return u, err
	})
	return err
}

func loadMemberships(ctx context.Context, db *sql.DB, t *Tables) error {
	const q = `SELECT id, user_id, tier, points, total_spent,
	                  COALESCE(DATE_FORMAT(upgraded_at, '%Y-%m-%dT%H:%i:%sZ'), '')
	             FROM memberships ORDER BY id`
	var err error
	t.Memberships, err = queryAll(ctx, db, q, func(r *sql.Rows) (model.Membership, error) {
		var m model.Membership
		err := r.Scan(&m.ID, &m.UserID, &m.Tier, &m.Points, &m.TotalSpent, &m.UpgradedAt)
		return m, err
	})
	return err
}
