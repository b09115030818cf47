package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/pitchside/turf-booking/internal/model"
)

// TurfFilter narrows a catalogue listing.  All fields are optional; empty
// values mean "no constraint".  Sport matches against the comma separated
// sports column, Location is an exact (case-insensitive) match, Query is a
// substring search over the turf name.
type TurfFilter struct {
	Sport    string
	Location string
	Query    string
}

// TurfRepo encapsulates all database queries related to turfs.
type TurfRepo struct{ DB *sql.DB }

func NewTurfRepo(db *sql.DB) *TurfRepo { return &TurfRepo{DB: db} }

const turfColumns = "id, name, location, sports, rating, price_per_hour, image_url, created_at, updated_at"

// Create inserts a new turf.  On success the turf's ID field is populated
// with the auto-generated value.
func (r *TurfRepo) Create(ctx context.Context, t *model.Turf) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO turfs (name, location, sports, rating, price_per_hour, image_url) VALUES (?,?,?,?,?,?)",
		t.Name, t.Location, t.Sports, t.Rating, t.PricePerHour, t.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a turf by its ID, returning ErrTurfNotFound when no row
// matches.
func (r *TurfRepo) GetByID(ctx context.Context, id uint64) (*model.Turf, error) {
	var t model.Turf
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+turfColumns+" FROM turfs WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Location, &t.Sports, &t.Rating, &t.PricePerHour, &t.ImageURL, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Search returns turfs matching the filter ordered by rating (best first).
// The WHERE clause is assembled dynamically from the populated filter
// fields; all values go through placeholders.
func (r *TurfRepo) Search(ctx context.Context, f TurfFilter) ([]*model.Turf, error) {
	var (
		conds []string
		args  []any
	)
	if s := strings.TrimSpace(f.Sport); s != "" {
		// sports is stored as "A,B,C"; FIND_IN_SET matches whole entries.
		conds = append(conds, "FIND_IN_SET(?, sports) > 0")
		args = append(args, s)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		conds = append(conds, "LOWER(location) = LOWER(?)")
		args = append(args, l)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+q+"%")
	}
	query := "SELECT " + turfColumns + " FROM turfs"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rating DESC, id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the mutable columns of a turf.  Returns ErrTurfNotFound
// when the id does not exist.
func (r *TurfRepo) Update(ctx context.Context, t *model.Turf) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE turfs SET name=?, location=?, sports=?, rating=?, price_per_hour=?, image_url=? WHERE id=?",
		t.Name, t.Location, t.Sports, t.Rating, t.PricePerHour, t.ImageURL, t.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either missing or unchanged; distinguish with a lookup.
		if _, err := r.GetByID(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a turf unless it still has upcoming bookings, in which
// case ErrConflict is returned so the handler can answer 409.
func (r *TurfRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE turf_id = ? AND status = 'upcoming'", id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM turfs WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTurfNotFound
	}
	return nil
}
