package repository

import (
	"context"

	"storefront/internal/domain"
)

// ProductRepository defines persistence operations for Product entities.
// Update and Delete return the number of rows affected.
type ProductRepository interface {
	Create(ctx context.Context, name string, price float64, description string) (int64, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, name string, price float64, description string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
