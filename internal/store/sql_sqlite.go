package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
)

// sqliteDSN enables WAL so readers proceed while the single writer holds
// its transaction, waits on a locked file instead of failing at once, and
// takes the write lock at BEGIN so transactions never upgrade mid-way.
func sqliteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", "5000")
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")
	params.Set("_synchronous", "NORMAL")

	return "file:" + path + "?" + params.Encode()
}

// NewConnectSQLite opens (creating if needed) the database file at path
// and verifies the connection.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, &QueryError{Kind: ErrIO, Op: "open database", Err: err}
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error connecting database (ping)")
		return nil, &QueryError{Kind: ErrIO, Op: "open database", Err: fmt.Errorf("ping %s: %w", path, err)}
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return NewDB(conn, log), nil
}
