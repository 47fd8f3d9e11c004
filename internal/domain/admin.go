package domain

import "time"

// Admin represents an operator allowed to manage the product catalogue.
// Password is stored exactly as supplied.
type Admin struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	CreatedAt time.Time
}
