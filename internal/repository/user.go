package repository

import (
	"context"

	"storefront/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, name, email string) (int64, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, name, email string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
