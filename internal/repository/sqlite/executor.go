package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"storefront/internal/repository"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Executor runs exactly one parameterized statement per transaction. A failed
// statement is rolled back and reported as *repository.DataAccessError; a
// successful one is committed before the call returns.
type Executor struct {
	db *sql.DB
}

func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Exec runs an INSERT, UPDATE or DELETE and returns the number of rows affected.
func (e *Executor) Exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	var affected int64
	err := e.inTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Insert runs an INSERT and returns the id of the new row.
func (e *Executor) Insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	err := e.inTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// QueryOne scans the first matching row. It returns repository.ErrNoRow when
// nothing matched; the transaction is still committed in that case.
func (e *Executor) QueryOne(ctx context.Context, op, query string, scan func(Scanner) error, args ...any) error {
	found := true
	err := e.inTx(ctx, op, func(tx *sql.Tx) error {
		err := scan(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrNoRow
	}
	return nil
}

// QueryAll calls scan once per matching row.
func (e *Executor) QueryAll(ctx context.Context, op, query string, scan func(Scanner) error, args ...any) error {
	return e.inTx(ctx, op, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}

func (e *Executor) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return dataAccessError(op, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return dataAccessError(op, err)
	}

	if err := tx.Commit(); err != nil {
		return dataAccessError(op, err)
	}
	return nil
}

func dataAccessError(op string, err error) error {
	return repository.NewDataAccessError(op, err, isConstraintViolation(err))
}

func isConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint failed")
}
