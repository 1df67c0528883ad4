package store

import (
	"errors"
	"fmt"
)

// Query error kinds. A [QueryError] always unwraps to exactly one of them,
// so callers classify failures with [errors.Is].
var (
	// ErrConstraint is returned when a write violates a uniqueness, NOT NULL
	// or CHECK constraint of the schema.
	ErrConstraint = errors.New("constraint violation")

	// ErrNotFound is returned when an update or delete targets an entity
	// that does not exist, or a lookup by key finds nothing.
	ErrNotFound = errors.New("record not found")

	// ErrIO is returned when the database file cannot be read or written
	// (disk full, locked past the busy timeout, corruption).
	ErrIO = errors.New("storage i/o failure")

	// ErrInvalidQuery is returned when a query descriptor names an unknown
	// table or column, uses an unsupported operator or carries a value of an
	// unsupported type. Such descriptors never reach the database.
	ErrInvalidQuery = errors.New("invalid query descriptor")
)

// Low-level database operation errors. These are wrapped inside a
// [QueryError] when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when rendering a query descriptor to
	// SQL fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during row
	// iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// QueryError is the error type of every store operation.
type QueryError struct {
	// Kind is one of ErrConstraint, ErrNotFound, ErrIO or ErrInvalidQuery.
	Kind error
	// Op names the failed operation, e.g. "insert lessons".
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *QueryError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidQuery(op, format string, args ...any) error {
	return &QueryError{Kind: ErrInvalidQuery, Op: op, Err: fmt.Errorf(format, args...)}
}

func notFound(op string) error {
	return &QueryError{Kind: ErrNotFound, Op: op}
}

var errUnsupportedValue = errors.New("unsupported value type")
