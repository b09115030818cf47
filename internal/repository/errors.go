// Package repository contains data access logic separated from HTTP
// handlers.  This file defines sentinel error values reused across the
// individual repositories so that higher layers can distinguish failure
// scenarios with errors.Is instead of matching on message text.
package repository

import "errors"

// ErrEmailExists is returned when an INSERT into users collides with the
// unique email index.  Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrTurfNotFound is returned when a turf lookup matches no row.
var ErrTurfNotFound = errors.New("turf not found")

// ErrBookingNotFound is returned when a booking lookup matches no row or
// the row belongs to a different user.
var ErrBookingNotFound = errors.New("booking not found")

// ErrConflict is returned when a delete or update cannot proceed because
// of dependent state, such as removing a turf that still has upcoming
// bookings.  Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
