// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

func insertLesson(id, title string) models.Query {
	return models.Query{
		Kind:  models.QueryInsert,
		Table: "lessons",
		ID:    id,
		Values: map[string]any{
			"course_id": "c1",
			"title":     title,
			"duration":  int64(30),
		},
	}
}

// ── Select ──

func TestExecute_SelectEmptyTable(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	res, err := repo.Execute(nopContext(), models.Query{Kind: models.QuerySelect, Table: "lessons"})
	require.NoError(t, err)

	// пустая таблица даёт пустой, но не nil список
	require.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
}

func TestExecute_SelectWithFilters(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := nopContext()

	for i, title := range []string{"Variables", "Functions", "Channels"} {
		q := insertLesson("", title)
		q.Values["sort_order"] = int64(i)
		_, err := repo.Execute(ctx, q)
		require.NoError(t, err)
	}

	res, err := repo.Execute(ctx, models.Query{
		Kind:    models.QuerySelect,
		Table:   "lessons",
		Columns: []string{"title", "sort_order"},
		Filters: []models.Filter{{Column: "sort_order", Op: models.OpGtOrEq, Value: int64(1)}},
		OrderBy: []models.Order{{Column: "sort_order", Desc: true}},
	})
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "Channels", res.Rows[0]["title"])
	assert.Equal(t, int64(2), res.Rows[0]["sort_order"])
	assert.Equal(t, "Functions", res.Rows[1]["title"])
}

func TestExecute_DecodedJSONNumbers(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := nopContext()

	q := insertLesson("1", "Numeric id")
	q.Values["duration"] = json.Number("9007199254740993")
	_, err := repo.Execute(ctx, q)
	require.NoError(t, err)

	// целое число из JSON совпадает с текстовым id "1"
	res, err := repo.Execute(ctx, models.Query{
		Kind:    models.QuerySelect,
		Table:   "lessons",
		Columns: []string{"id", "duration"},
		Filters: []models.Filter{{Column: "id", Op: models.OpEq, Value: json.Number("1")}},
	})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "1", res.Rows[0]["id"])
	// больше 2^53: точность не теряется
	assert.Equal(t, int64(9007199254740993), res.Rows[0]["duration"])
}

func TestExecute_InvalidDescriptorNeverReachesDB(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.Execute(nopContext(), models.Query{Kind: models.QuerySelect, Table: "sqlite_master"})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = repo.Execute(nopContext(), models.Query{Kind: "drop", Table: "lessons"})
	assert.ErrorIs(t, err, ErrInvalidQuery)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Mutations and queue coupling ──

func TestExecute_InsertQueuesCreate(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	res, err := repo.Execute(nopContext(), insertLesson("l1", "Intro"))
	require.NoError(t, err)
	assert.Equal(t, "l1", res.ID)
	assert.EqualValues(t, 1, res.Affected)
	assert.EqualValues(t, 1, res.Revision)

	entry, ok := readQueueRow(t, db, "lessons", "l1")
	require.True(t, ok)
	assert.Equal(t, "create", entry.operation)
	assert.Equal(t, "pending", entry.status)
	assert.EqualValues(t, 1, entry.seq)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(entry.payload.String), &payload))
	assert.Equal(t, "l1", payload["id"])
	assert.Equal(t, "Intro", payload["title"])
	assert.NotContains(t, payload, "revision")
}

func TestExecute_InsertGeneratesID(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	res, err := repo.Execute(nopContext(), insertLesson("", "Intro"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	_, ok := readQueueRow(t, db, "lessons", res.ID)
	assert.True(t, ok)
}

func TestExecute_RepeatedEditsCoalesce(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := nopContext()

	_, err := repo.Execute(ctx, insertLesson("l1", "Intro"))
	require.NoError(t, err)

	var last models.QueryResult
	for _, title := range []string{"Intro 2", "Intro 3"} {
		last, err = repo.Execute(ctx, models.Query{
			Kind:   models.QueryUpdate,
			Table:  "lessons",
			ID:     "l1",
			Values: map[string]any{"title": title},
		})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, last.Revision)

	assert.Equal(t, 1, countRows(t, db, "sync_queue"))

	entry, ok := readQueueRow(t, db, "lessons", "l1")
	require.True(t, ok)
	// create + update остаётся create с последним payload
	assert.Equal(t, "create", entry.operation)
	assert.EqualValues(t, 3, entry.seq)
	assert.Contains(t, entry.payload.String, "Intro 3")
}

func TestExecute_DeleteAfterCreate(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := nopContext()

	_, err := repo.Execute(ctx, insertLesson("l1", "Intro"))
	require.NoError(t, err)

	res, err := repo.Execute(ctx, models.Query{Kind: models.QueryDelete, Table: "lessons", ID: "l1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Affected)

	entry, ok := readQueueRow(t, db, "lessons", "l1")
	require.True(t, ok)
	assert.Equal(t, "delete", entry.operation)
	assert.False(t, entry.payload.Valid)
	assert.Equal(t, 0, countRows(t, db, "lessons"))
}

func TestExecute_ReinsertAfterDeleteContinuesRevision(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := nopContext()

	res, err := repo.Execute(ctx, insertLesson("l1", "Intro"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Revision)

	res, err = repo.Execute(ctx, models.Query{Kind: models.QueryUpdate, Table: "lessons", ID: "l1", Values: map[string]any{"title": "Intro 2"}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Revision)

	res, err = repo.Execute(ctx, models.Query{Kind: models.QueryDelete, Table: "lessons", ID: "l1"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Revision)

	var kept int64
	require.NoError(t, db.QueryRow(`SELECT revision FROM entity_tombstones WHERE entity_table = 'lessons' AND entity_id = 'l1'`).Scan(&kept))
	assert.EqualValues(t, 3, kept)

	// повторная вставка продолжает ревизии, а не начинает с 1
	res, err = repo.Execute(ctx, insertLesson("l1", "Intro again"))
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.Revision)

	sel, err := repo.Execute(ctx, models.Query{Kind: models.QuerySelect, Table: "lessons", Columns: []string{"revision"}})
	require.NoError(t, err)
	require.Len(t, sel.Rows, 1)
	assert.Equal(t, int64(4), sel.Rows[0]["revision"])

	// другая сущность начинает с 1
	res, err = repo.Execute(ctx, insertLesson("l2", "Other"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Revision)
}

func TestExecute_UpdateMissingEntity(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.Execute(nopContext(), models.Query{
		Kind:   models.QueryUpdate,
		Table:  "lessons",
		ID:     "nope",
		Values: map[string]any{"title": "x"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, countRows(t, db, "sync_queue"))

	_, err = repo.Execute(nopContext(), models.Query{Kind: models.QueryDelete, Table: "lessons", ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_ConstraintViolationRollsBackQueue(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	q := insertLesson("l1", "Intro")
	q.Values["duration"] = int64(-1)

	_, err := repo.Execute(nopContext(), q)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraint)

	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, "insert lessons", queryErr.Op)

	assert.Equal(t, 0, countRows(t, db, "lessons"))
	assert.Equal(t, 0, countRows(t, db, "sync_queue"))
}

func TestExecute_DuplicateID(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	_, err := repo.Execute(nopContext(), insertLesson("l1", "Intro"))
	require.NoError(t, err)

	_, err = repo.Execute(nopContext(), insertLesson("l1", "Again"))
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestExecuteBatch_AllOrNothing(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop())

	bad := insertLesson("l2", "Broken")
	bad.Values["duration"] = int64(-5)

	_, err := repo.ExecuteBatch(nopContext(), []models.Query{insertLesson("l1", "Intro"), bad})
	require.ErrorIs(t, err, ErrConstraint)

	assert.Equal(t, 0, countRows(t, db, "lessons"))
	assert.Equal(t, 0, countRows(t, db, "sync_queue"))

	results, err := repo.ExecuteBatch(nopContext(), []models.Query{
		insertLesson("l1", "Intro"),
		{Kind: models.QuerySelect, Table: "lessons"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[1].Rows, 1)
}

func TestExecute_DriverErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		driveErr error
		wantKind error
	}{
		{name: "constraint", driveErr: sqlite3.Error{Code: sqlite3.ErrConstraint}, wantKind: ErrConstraint},
		{name: "disk full", driveErr: sqlite3.Error{Code: sqlite3.ErrFull}, wantKind: ErrIO},
		{name: "busy", driveErr: sqlite3.Error{Code: sqlite3.ErrBusy}, wantKind: ErrIO},
		{name: "unknown", driveErr: errors.New("boom"), wantKind: ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			db.writeRetries = 0
			repo := NewRecordRepository(db, logger.Nop())

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lessons")).WillReturnError(tt.driveErr)
			mock.ExpectRollback()

			_, err := repo.Execute(nopContext(), insertLesson("l1", "Intro"))
			assert.ErrorIs(t, err, tt.wantKind)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExecute_BeginFails(t *testing.T) {
	db, mock := newSQLMock(t)
	db.writeRetries = 2
	db.retryBase = time.Millisecond
	repo := NewRecordRepository(db, logger.Nop())

	// первая попытка и две повторные
	for range 3 {
		mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	_, err := repo.Execute(nopContext(), insertLesson("l1", "Intro"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.True(t, db.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_UpdateBumpsRevisionAndTimestamp(t *testing.T) {
	db := openSQLiteDB(t)
	repo := NewRecordRepository(db, logger.Nop()).(*recordRepository)
	ctx := nopContext()

	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return t0 }
	_, err := repo.Execute(ctx, insertLesson("l1", "Intro"))
	require.NoError(t, err)

	repo.now = func() time.Time { return t0.Add(time.Minute) }
	_, err = repo.Execute(ctx, models.Query{Kind: models.QueryUpdate, Table: "lessons", ID: "l1", Values: map[string]any{"title": "New"}})
	require.NoError(t, err)

	res, err := repo.Execute(ctx, models.Query{Kind: models.QuerySelect, Table: "lessons", Columns: []string{"revision", "updated_at"}})
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(2), res.Rows[0]["revision"])
	assert.True(t, t0.Add(time.Minute).Equal(res.Rows[0]["updated_at"].(time.Time)))
}
