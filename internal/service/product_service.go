package service

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/session"
)

// ProductService exposes the catalogue. Reads are public; every mutation
// requires an authenticated admin session, checked before input validation.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, sess *session.Session, in ProductInput) (int64, error)
	Update(ctx context.Context, sess *session.Session, id int64, in ProductInput) error
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return nil, &NotFoundError{Entity: "Product"}
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, sess *session.Session, in ProductInput) (int64, error) {
	if !sess.Authenticated() {
		return 0, ErrUnauthorized
	}
	name, price, description, err := in.normalize()
	if err != nil {
		return 0, err
	}
	return s.products.Create(ctx, name, price, description)
}

func (s *productService) Update(ctx context.Context, sess *session.Session, id int64, in ProductInput) error {
	if !sess.Authenticated() {
		return ErrUnauthorized
	}
	name, price, description, err := in.normalize()
	if err != nil {
		return err
	}

	affected, err := s.products.Update(ctx, id, name, price, description)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Product"}
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if !sess.Authenticated() {
		return ErrUnauthorized
	}

	affected, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "Product"}
	}
	return nil
}
