// Package migrations embeds the SQL schema of the local store and applies it
// with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrSchemaTooNew is wrapped by [SchemaError] when the database was written
// by a newer build than the running one.
var ErrSchemaTooNew = errors.New("database schema is newer than this build supports")

// SchemaError reports a schema that cannot be brought up to date.
type SchemaError struct {
	Current int64
	Known   int64
	Err     error
}

func (e *SchemaError) Error() string {
	if errors.Is(e.Err, ErrSchemaTooNew) {
		return fmt.Sprintf("schema version %d is newer than known version %d", e.Current, e.Known)
	}
	return fmt.Sprintf("migration error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending embedded migration. It is idempotent and
// only ever moves the schema forward.
func Migrate(ctx context.Context, db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return &SchemaError{Err: errors.New("db is nil")}
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return &SchemaError{Err: fmt.Errorf("setting dialect for db: %w", err)}
	}

	known, err := LatestVersion()
	if err != nil {
		return &SchemaError{Err: err}
	}

	current, err := goose.EnsureDBVersionContext(ctx, db)
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("reading schema version: %w", err)}
	}
	if current > known {
		return &SchemaError{Current: current, Known: known, Err: ErrSchemaTooNew}
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return &SchemaError{Current: current, Known: known, Err: err}
	}

	log.Debug().Str("func", "migrations.Migrate").
		Int64("from", current).
		Int64("to", known).
		Msg("schema is up to date")

	return nil
}

// LatestVersion returns the newest migration version embedded in the binary.
func LatestVersion() (int64, error) {
	goose.SetBaseFS(embedMigrations)

	collected, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("collecting migrations: %w", err)
	}

	last, err := collected.Last()
	if err != nil {
		return 0, fmt.Errorf("collecting migrations: %w", err)
	}

	return last.Version, nil
}

type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug().Str("func", "goose").Msgf(format, v...)
}
