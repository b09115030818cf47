package repository

import (
	"context"
	"database/sql"

	"github.com/pitchside/turf-booking/internal/model"
)

// FavoriteRepo manages the favorites join table between users and turfs.
type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// Add marks a turf as a favorite of the user.  INSERT IGNORE makes the
// operation idempotent: favoriting twice is not an error.
func (r *FavoriteRepo) Add(ctx context.Context, userID, turfID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT IGNORE INTO favorites (user_id, turf_id) VALUES (?,?)",
		userID, turfID)
	return err
}

// Remove deletes a favorite.  Removing a turf that was never favorited is
// a no-op, mirroring Add's idempotence.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, turfID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND turf_id = ?",
		userID, turfID)
	return err
}

// ListByUser returns the user's favorite turfs, most recently added first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Turf, error) {
	const q = `SELECT t.id, t.name, t.location, t.sports, t.rating, t.price_per_hour, t.image_url, t.created_at, t.updated_at
	           FROM favorites f JOIN turfs t ON t.id = f.turf_id
	           WHERE f.user_id = ? ORDER BY f.created_at DESC, t.id DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Turf
	for rows.Next() {
		t := new(model.Turf)
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Sports, &t.Rating, &t.PricePerHour, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
