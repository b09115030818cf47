package model

import (
	"strings"
	"time"
)

// Turf represents a bookable sports facility as stored in the `turfs`
// table.  Sports is persisted as a comma separated list (e.g.
// "Football,Cricket") and exposed to clients as a JSON array via
// SportsList.  PricePerHour is in the smallest currency unit (paise) to
// avoid floating point money.
type Turf struct {
	ID           uint64    // turfs.id
	Name         string    // turfs.name
	Location     string    // turfs.location
	Sports       string    // turfs.sports (comma separated)
	Rating       float64   // turfs.rating
	PricePerHour uint32    // turfs.price_per_hour (paise)
	ImageURL     string    // turfs.image_url
	CreatedAt    time.Time // turfs.created_at
	UpdatedAt    time.Time // turfs.updated_at
}

// SportsList splits the stored comma separated sports column into a clean
// slice, dropping empty entries and surrounding whitespace.
func (t *Turf) SportsList() []string {
	out := make([]string, 0, 4)
	for _, s := range strings.Split(t.Sports, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinSports is the inverse of SportsList: it normalizes a client-supplied
// slice into the stored column form.
func JoinSports(sports []string) string {
	clean := make([]string, 0, len(sports))
	for _, s := range sports {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ",")
}
