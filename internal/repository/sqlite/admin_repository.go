package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const createAdminsTable = `
CREATE TABLE IF NOT EXISTS admins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL
);
`

type AdminRepository struct {
	db   *sql.DB
	exec *Executor
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db, exec: NewExecutor(db)}
}

func (r *AdminRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAdminsTable); err != nil {
		return fmt.Errorf("create admins table: %w", err)
	}
	return nil
}

// SeedDefault inserts the given admin only when the table is empty. It reports
// whether a row was written.
func (r *AdminRepository) SeedDefault(ctx context.Context, username, password, email string) (bool, error) {
	affected, err := r.exec.Exec(ctx, "seed admin", `
INSERT INTO admins (username, password, email, created_at)
SELECT ?, ?, ?, ?
WHERE NOT EXISTS (SELECT 1 FROM admins)`,
		username,
		password,
		email,
		time.Now().UTC(),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *AdminRepository) Create(ctx context.Context, username, password, email string) (int64, error) {
	return r.exec.Insert(ctx, "insert admin", `
INSERT INTO admins (username, password, email, created_at)
VALUES (?, ?, ?, ?)`,
		username,
		password,
		email,
		time.Now().UTC(),
	)
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var (
		admin     domain.Admin
		createdAt time.Time
	)
	err := r.exec.QueryOne(ctx, "get admin", `
SELECT id, username, password, email, created_at
FROM admins
WHERE username = ?`,
		func(s Scanner) error {
			return s.Scan(&admin.ID, &admin.Username, &admin.Password, &admin.Email, &createdAt)
		},
		username,
	)
	if err != nil {
		return nil, err
	}
	admin.CreatedAt = createdAt.UTC()
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	admins := []domain.Admin{}
	err := r.exec.QueryAll(ctx, "query admins", `
SELECT id, username, email, created_at
FROM admins
ORDER BY created_at DESC, id DESC`,
		func(s Scanner) error {
			var (
				admin     domain.Admin
				createdAt time.Time
			)
			if err := s.Scan(&admin.ID, &admin.Username, &admin.Email, &createdAt); err != nil {
				return err
			}
			admin.CreatedAt = createdAt.UTC()
			admins = append(admins, admin)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, password string) (int64, error) {
	return r.exec.Exec(ctx, "update admin password", `
UPDATE admins
SET password = ?
WHERE id = ?`,
		password,
		id,
	)
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
