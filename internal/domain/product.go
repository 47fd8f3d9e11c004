package domain

import "time"

// Product is a catalogue entry. Only admins may change it.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	CreatedAt   time.Time
}
