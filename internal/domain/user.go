package domain

import "time"

// User is a customer account record.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
