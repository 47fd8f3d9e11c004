package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db   *sql.DB
	exec *Executor
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db, exec: NewExecutor(db)}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, name, email string) (int64, error) {
	return r.exec.Insert(ctx, "insert user", `
INSERT INTO users (name, email, created_at)
VALUES (?, ?, ?)`,
		name,
		email,
		time.Now().UTC(),
	)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := r.exec.QueryAll(ctx, "query users", `
SELECT id, name, email, created_at
FROM users
ORDER BY created_at DESC, id DESC`,
		func(s Scanner) error {
			user, err := scanUser(s)
			if err != nil {
				return err
			}
			users = append(users, *user)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := r.exec.QueryOne(ctx, "get user", `
SELECT id, name, email, created_at
FROM users
WHERE id = ?`,
		func(s Scanner) (err error) {
			user, err = scanUser(s)
			return err
		},
		id,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, name, email string) (int64, error) {
	return r.exec.Exec(ctx, "update user", `
UPDATE users
SET name = ?, email = ?
WHERE id = ?`,
		name,
		email,
		id,
	)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec.Exec(ctx, "delete user", `DELETE FROM users WHERE id = ?`, id)
}

func scanUser(row Scanner) (*domain.User, error) {
	var (
		user      domain.User
		createdAt time.Time
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&createdAt,
	); err != nil {
		return nil, err
	}
	user.CreatedAt = createdAt.UTC()
	return &user, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
