package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price REAL NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type ProductRepository struct {
	db   *sql.DB
	exec *Executor
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db, exec: NewExecutor(db)}
}

func (r *ProductRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, name string, price float64, description string) (int64, error) {
	return r.exec.Insert(ctx, "insert product", `
INSERT INTO products (name, price, description, created_at)
VALUES (?, ?, ?, ?)`,
		name,
		price,
		description,
		time.Now().UTC(),
	)
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.exec.QueryAll(ctx, "query products", `
SELECT id, name, price, description, created_at
FROM products
ORDER BY created_at DESC, id DESC`,
		func(s Scanner) error {
			product, err := scanProduct(s)
			if err != nil {
				return err
			}
			products = append(products, *product)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product *domain.Product
	err := r.exec.QueryOne(ctx, "get product", `
SELECT id, name, price, description, created_at
FROM products
WHERE id = ?`,
		func(s Scanner) (err error) {
			product, err = scanProduct(s)
			return err
		},
		id,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, name string, price float64, description string) (int64, error) {
	return r.exec.Exec(ctx, "update product", `
UPDATE products
SET name = ?, price = ?, description = ?
WHERE id = ?`,
		name,
		price,
		description,
		id,
	)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec.Exec(ctx, "delete product", `DELETE FROM products WHERE id = ?`, id)
}

func scanProduct(row Scanner) (*domain.Product, error) {
	var (
		product   domain.Product
		createdAt time.Time
	)
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&createdAt,
	); err != nil {
		return nil, err
	}
	product.CreatedAt = createdAt.UTC()
	return &product, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
