package repository

import "errors"

// ErrNoRow is returned by single-row lookups that matched nothing.
var ErrNoRow = errors.New("no row")

// DataAccessError wraps a store failure. The transaction that produced it has
// already been rolled back.
type DataAccessError struct {
	Op         string
	Err        error
	constraint bool
}

func NewDataAccessError(op string, err error, constraint bool) *DataAccessError {
	return &DataAccessError{Op: op, Err: err, constraint: constraint}
}

// Error returns the driver message unchanged so callers can surface it as is.
func (e *DataAccessError) Error() string {
	return e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// IsConstraint reports whether the failure was a constraint violation, such as
// a duplicate email or username.
func (e *DataAccessError) IsConstraint() bool {
	return e.constraint
}

// IsConstraint reports whether err carries a constraint violation anywhere in
// its chain.
func IsConstraint(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae) && dae.IsConstraint()
}
