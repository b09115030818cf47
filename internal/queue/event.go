// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for them.
package queue

// BookingConfirmedEvent is published when a turf booking is successfully
// created and paid.  It carries enough information for downstream
// consumers to log, notify or feed analytics without querying the primary
// database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	TurfID      uint64 `json:"turf_id"`
	TurfName    string `json:"turf_name"`
	Location    string `json:"location"`
	Sport       string `json:"sport"`
	PlayDate    string `json:"play_date"`
	StartTime   string `json:"start_time"`
	PricePaise  uint32 `json:"price_paise"`
	ConfirmedAt string `json:"confirmed_at"`
}
