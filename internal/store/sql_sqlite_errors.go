package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation may be retried.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be
	// retried. This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (the database was busy or locked by another connection).
	Retryable
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3
// and maps driver errors onto the [QueryError] kinds.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Retryable codes: SQLITE_BUSY, SQLITE_LOCKED. Everything else, including
// constraint violations and I/O failures, is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// Kind maps err onto one of ErrConstraint, ErrNotFound, ErrIO or
// ErrInvalidQuery.
//
//   - SQLITE_CONSTRAINT (any extended code) -> ErrConstraint
//   - SQLITE_MISMATCH, SQLITE_RANGE, SQLITE_TOOBIG, SQLITE_ERROR -> ErrInvalidQuery
//   - sql.ErrNoRows is handled by the callers and never reaches here
//   - everything else (BUSY, LOCKED, IOERR, FULL, CANTOPEN, READONLY,
//     CORRUPT, NOTADB, context cancellation) -> ErrIO
//
// A *QueryError keeps its own kind.
func (c *SQLiteErrorClassifier) Kind(err error) error {
	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return queryErr.Kind
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return ErrConstraint
		case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig, sqlite3.ErrError:
			return ErrInvalidQuery
		}
		return ErrIO
	}

	return ErrIO
}
