package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
)

// openSQLiteDB opens a migrated database in a temp dir.
func openSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "academy.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func newSQLMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewDB(conn, logger.Nop()), mock
}

func nopContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// queueRow reads the single queue entry of an entity.
type queueRow struct {
	operation string
	payload   sql.NullString
	base      int64
	seq       int64
	attempts  int
	status    string
}

func readQueueRow(t *testing.T, db *DB, table, id string) (queueRow, bool) {
	t.Helper()

	var r queueRow
	err := db.QueryRow(
		`SELECT operation, payload, base_revision, seq, attempt_count, status FROM sync_queue WHERE entity_table = ? AND entity_id = ?`,
		table, id,
	).Scan(&r.operation, &r.payload, &r.base, &r.seq, &r.attempts, &r.status)
	if err == sql.ErrNoRows {
		return queueRow{}, false
	}
	require.NoError(t, err)
	return r, true
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
