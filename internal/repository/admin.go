package repository

import (
	"context"

	"storefront/internal/domain"
)

// AdminRepository defines persistence operations for Admin entities.
type AdminRepository interface {
	Create(ctx context.Context, username, password, email string) (int64, error)
	// GetByUsername returns ErrNoRow when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	// List omits passwords.
	List(ctx context.Context) ([]domain.Admin, error)
	UpdatePassword(ctx context.Context, id int64, password string) (int64, error)
}
