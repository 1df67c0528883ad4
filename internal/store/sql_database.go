package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/migrations"
)

// DB wraps the sqlite connection pool. All mutating transactions go through
// [DB.WithWriteTx], which serialises them process-wide.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	writeMu sync.Mutex

	// busy or locked write transactions are retried up to writeRetries
	// times, backing off from retryBase up to retryCap
	writeRetries uint64
	retryBase    time.Duration
	retryCap     time.Duration
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewDB wraps an open connection.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
		writeRetries:       5,
		retryBase:          10 * time.Millisecond,
		retryCap:           200 * time.Millisecond,
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.logger)
}

// WithWriteTx runs fn inside a transaction while holding the write lock.
// The transaction is committed when fn returns nil and rolled back on any
// error or panic. A transaction that fails because the database is busy or
// locked is run again after a capped exponential backoff; the lock is
// released while waiting.
func (db *DB) WithWriteTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	b := retry.WithMaxRetries(db.writeRetries, retry.WithCappedDuration(db.retryCap, retry.NewExponential(db.retryBase)))

	for attempt := 1; ; attempt++ {
		err := db.writeTx(ctx, op, fn)
		if err == nil || !db.IsRetryable(err) {
			return err
		}

		delay, stop := b.Next()
		if stop {
			return err
		}
		db.logger.Warn().Err(err).
			Str("func", "DB.WithWriteTx").
			Str("op", op).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("database is busy, retrying write")

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
	}
}

func (db *DB) writeTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.queryError(op, errors.Join(ErrBeginningTransaction, err))
	}
	// no-op after a successful commit
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return db.queryError(op, err)
	}

	if err = tx.Commit(); err != nil {
		return db.queryError(op, errors.Join(ErrCommitingTransaction, err))
	}

	return nil
}

// IsRetryable reports whether err came from a busy or locked database.
func (db *DB) IsRetryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}

// queryError converts a driver error into a *QueryError tagged with op.
// Errors that already are a *QueryError are returned unchanged.
func (db *DB) queryError(op string, err error) error {
	if err == nil {
		return nil
	}

	var queryErr *QueryError
	if errors.As(err, &queryErr) {
		return err
	}

	return &QueryError{Kind: db.errorClassificator.Kind(err), Op: op, Err: err}
}
