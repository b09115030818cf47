package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pitchside/turf-booking/internal/model"
)

// BookingRepo encapsulates all database queries related to bookings.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and populates its ID.  Status and payment
// status are taken from the struct so the caller decides the initial
// lifecycle state.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, turf_id, play_date, start_time, sport, price, status, payment_status) VALUES (?,?,?,?,?,?,?,?)",
		b.UserID, b.TurfID, b.PlayDate, b.StartTime, b.Sport, b.Price, b.Status, b.PaymentStatus)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// ListByUser returns a user's bookings joined with turf name and location,
// newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.turf_id, t.name, t.location,
	                  DATE_FORMAT(b.play_date, '%Y-%m-%d'), TIME_FORMAT(b.start_time, '%H:%i'),
	                  b.sport, b.price, b.status, b.payment_status, b.created_at
	           FROM bookings b JOIN turfs t ON t.id = b.turf_id
	           WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`
	return r.list(ctx, q, userID)
}

// ListAll returns every booking joined with the owning user's email, for
// the admin dashboard.
func (r *BookingRepo) ListAll(ctx context.Context) ([]*model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.turf_id, t.name, t.location,
	                  DATE_FORMAT(b.play_date, '%Y-%m-%d'), TIME_FORMAT(b.start_time, '%H:%i'),
	                  b.sport, b.price, b.status, b.payment_status, u.email, b.created_at
	           FROM bookings b
	           JOIN turfs t ON t.id = b.turf_id
	           JOIN users u ON u.id = b.user_id
	           ORDER BY b.created_at DESC, b.id DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		b := new(model.Booking)
		if err := rows.Scan(&b.ID, &b.UserID, &b.TurfID, &b.TurfName, &b.Location,
			&b.PlayDate, &b.StartTime, &b.Sport, &b.Price, &b.Status, &b.PaymentStatus,
			&b.UserEmail, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Cancel marks an upcoming booking as cancelled and its payment as
// refunded.  The UPDATE carries the ownership and status predicates so a
// user can only cancel their own upcoming bookings; anything else is
// reported as ErrBookingNotFound without leaking whose booking it was.
func (r *BookingRepo) Cancel(ctx context.Context, id, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status='cancelled', payment_status='refunded' WHERE id=? AND user_id=? AND status='upcoming'",
		id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// StatsByUser aggregates a user's booking history in a single query.
func (r *BookingRepo) StatsByUser(ctx context.Context, userID uint64) (model.BookingStats, error) {
	const q = `SELECT COUNT(*),
	                  COALESCE(SUM(status='upcoming'),0),
	                  COALESCE(SUM(status='completed'),0),
	                  COALESCE(SUM(status='cancelled'),0),
	                  COALESCE(SUM(CASE WHEN payment_status <> 'refunded' THEN price ELSE 0 END),0)
	           FROM bookings WHERE user_id = ?`
	var s model.BookingStats
	err := r.DB.QueryRowContext(ctx, q, userID).
		Scan(&s.Total, &s.Upcoming, &s.Completed, &s.Cancelled, &s.TotalSpent)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BookingStats{}, nil
	}
	return s, err
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]*model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Booking
	for rows.Next() {
		b := new(model.Booking)
		if err := rows.Scan(&b.ID, &b.UserID, &b.TurfID, &b.TurfName, &b.Location,
			&b.PlayDate, &b.StartTime, &b.Sport, &b.Price, &b.Status, &b.PaymentStatus,
			&b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
