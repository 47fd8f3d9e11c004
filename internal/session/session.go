// Package session keeps server-side admin sessions keyed by an opaque token.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Session links a browser cookie to an authenticated admin.
type Session struct {
	Token     string    `json:"token"`
	AdminID   int64     `json:"admin_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether s carries an admin identity. A nil session is
// anonymous.
func (s *Session) Authenticated() bool {
	return s != nil && s.AdminID > 0
}

// Store persists sessions. Create issues a fresh token on every call.
type Store interface {
	Create(ctx context.Context, adminID int64, username, email string) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

func newSession(adminID int64, username, email string, ttl time.Duration, now time.Time) *Session {
	return &Session{
		Token:     uuid.NewString(),
		AdminID:   adminID,
		Username:  username,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
