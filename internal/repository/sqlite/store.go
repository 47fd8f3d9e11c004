package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultAdmin is written to an empty admins table on Init.
type DefaultAdmin struct {
	Username string
	Password string
	Email    string
}

// Store bundles the repositories sharing one database handle.
type Store struct {
	DB       *sql.DB
	Users    *UserRepository
	Products *ProductRepository
	Admins   *AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		DB:       db,
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
		Admins:   NewAdminRepository(db),
	}
}

// Init creates missing tables and seeds the default admin. It reports whether
// the seed row was written.
func (s *Store) Init(ctx context.Context, seed DefaultAdmin) (bool, error) {
	if err := s.Users.Init(ctx); err != nil {
		return false, err
	}
	if err := s.Products.Init(ctx); err != nil {
		return false, err
	}
	if err := s.Admins.Init(ctx); err != nil {
		return false, err
	}

	seeded, err := s.Admins.SeedDefault(ctx, seed.Username, seed.Password, seed.Email)
	if err != nil {
		return false, fmt.Errorf("seed default admin: %w", err)
	}
	return seeded, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}
