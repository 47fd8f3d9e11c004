package service

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// UserService describes user lifecycle operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in UserInput) (int64, error)
	Update(ctx context.Context, id int64, in UserInput) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return nil, &NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, in UserInput) (int64, error) {
	name, email, err := in.normalize()
	if err != nil {
		return 0, err
	}
	return s.users.Create(ctx, name, email)
}

func (s *userService) Update(ctx context.Context, id int64, in UserInput) error {
	name, email, err := in.normalize()
	if err != nil {
		return err
	}

	affected, err := s.users.Update(ctx, id, name, email)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "User"}
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	affected, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "User"}
	}
	return nil
}
