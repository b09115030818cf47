package model

import "time"

// Booking status values stored in bookings.status.
const (
	BookingUpcoming  = "upcoming"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment status values stored in bookings.payment_status.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Booking represents a reservation of a turf for a time slot on a given
// date.  Price is snapshotted from the turf at booking time so later price
// changes do not rewrite history.
type Booking struct {
	ID            uint64    // bookings.id
	UserID        uint64    // bookings.user_id
	TurfID        uint64    // bookings.turf_id
	TurfName      string    // joined from turfs.name for listings
	Location      string    // joined from turfs.location for listings
	PlayDate      string    // bookings.play_date (YYYY-MM-DD)
	StartTime     string    // bookings.start_time (HH:MM)
	Sport         string    // bookings.sport
	Price         uint32    // bookings.price (paise)
	Status        string    // bookings.status
	PaymentStatus string    // bookings.payment_status
	UserEmail     string    // joined from users.email for admin listings
	CreatedAt     time.Time // bookings.created_at
}

// BookingStats aggregates a user's booking history for the dashboard.
// TotalSpent only counts money that stayed spent, i.e. non-refunded
// bookings.
type BookingStats struct {
	Total      uint64 `json:"total_bookings"`
	Upcoming   uint64 `json:"upcoming_bookings"`
	Completed  uint64 `json:"completed_bookings"`
	Cancelled  uint64 `json:"cancelled_bookings"`
	TotalSpent uint64 `json:"total_spent"`
}
