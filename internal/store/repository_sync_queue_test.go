package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

func Test_coalesceOperation(t *testing.T) {
	tests := []struct {
		queued, next, want models.SyncOperation
	}{
		{models.OperationCreate, models.OperationUpdate, models.OperationCreate},
		{models.OperationCreate, models.OperationDelete, models.OperationDelete},
		{models.OperationUpdate, models.OperationUpdate, models.OperationUpdate},
		{models.OperationUpdate, models.OperationDelete, models.OperationDelete},
		{models.OperationDelete, models.OperationCreate, models.OperationUpdate},
	}

	for _, tt := range tests {
		t.Run(string(tt.queued)+"+"+string(tt.next), func(t *testing.T) {
			assert.Equal(t, tt.want, coalesceOperation(tt.queued, tt.next))
		})
	}
}

func Test_rebasedOperation(t *testing.T) {
	assert.Equal(t, models.OperationUpdate, rebasedOperation(models.OperationCreate, models.OperationUpdate))
	assert.Equal(t, models.OperationCreate, rebasedOperation(models.OperationUpdate, models.OperationDelete))
	assert.Equal(t, models.OperationDelete, rebasedOperation(models.OperationDelete, models.OperationUpdate))
	assert.Equal(t, models.OperationUpdate, rebasedOperation(models.OperationUpdate, models.OperationCreate))
}

type syncFixture struct {
	db      *DB
	records *recordRepository
	sync    *syncRepository
	now     time.Time
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	db := openSQLiteDB(t)
	f := &syncFixture{
		db:      db,
		records: NewRecordRepository(db, logger.Nop()).(*recordRepository),
		sync:    NewSyncRepository(db, logger.Nop()).(*syncRepository),
		now:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.records.now = func() time.Time { return f.now }
	f.sync.now = func() time.Time { return f.now }
	return f
}

func (f *syncFixture) insert(t *testing.T, id, title string) {
	t.Helper()
	_, err := f.records.Execute(nopContext(), insertLesson(id, title))
	require.NoError(t, err)
}

func (f *syncFixture) due(t *testing.T) []models.SyncQueueEntry {
	t.Helper()
	entries, err := f.sync.DueEntries(nopContext(), f.now, 100)
	require.NoError(t, err)
	return entries
}

func (f *syncFixture) lessonTitle(t *testing.T, id string) (string, bool) {
	t.Helper()
	res, err := f.records.Execute(nopContext(), models.Query{
		Kind:    models.QuerySelect,
		Table:   "lessons",
		Columns: []string{"title"},
		Filters: []models.Filter{{Column: "id", Op: models.OpEq, Value: id}},
	})
	require.NoError(t, err)
	if len(res.Rows) == 0 {
		return "", false
	}
	return res.Rows[0]["title"].(string), true
}

func remoteLesson(id, title string, revision int64, at time.Time) models.RemoteRecord {
	payload, _ := json.Marshal(map[string]any{"id": id, "course_id": "c1", "title": title, "duration": 30})
	return models.RemoteRecord{
		EntityTable: "lessons",
		EntityID:    id,
		Operation:   models.OperationUpdate,
		Payload:     payload,
		Revision:    revision,
		UpdatedAt:   at,
	}
}

// ── Queue reads ──

func TestDueEntries_OrderAndSchedule(t *testing.T) {
	f := newSyncFixture(t)

	f.insert(t, "l1", "First")
	f.now = f.now.Add(time.Second)
	f.insert(t, "l2", "Second")

	entries := f.due(t)
	require.Len(t, entries, 2)
	assert.Equal(t, "l1", entries[0].EntityID)
	assert.Equal(t, "l2", entries[1].EntityID)
	assert.Equal(t, models.OperationCreate, entries[0].Operation)
	assert.JSONEq(t, `{"id":"l1","course_id":"c1","title":"First","content":"","duration":30,"sort_order":0,"is_active":1,"content_id":""}`, string(entries[0].Payload))

	// перенос следующей попытки убирает запись из due
	require.NoError(t, f.sync.RecordFailure(nopContext(), entries[0].ID, 1, f.now.Add(time.Minute), "timeout", false))

	entries = f.due(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "l2", entries[0].EntityID)

	pending, failed, err := f.sync.Counts(nopContext())
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
	assert.Equal(t, 0, failed)
}

func TestRecordFailure_TerminalAndRetry(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]

	require.NoError(t, f.sync.RecordFailure(ctx, entry.ID, 8, f.now, "rejected: title too long", true))
	assert.Empty(t, f.due(t))

	failedEntries, err := f.sync.FailedEntries(ctx)
	require.NoError(t, err)
	require.Len(t, failedEntries, 1)
	assert.Equal(t, "rejected: title too long", failedEntries[0].LastError)
	assert.Equal(t, 8, failedEntries[0].AttemptCount)

	_, failed, err := f.sync.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	require.NoError(t, f.sync.RetryFailed(ctx, "lessons", "l1"))
	due := f.due(t)
	require.Len(t, due, 1)
	assert.Equal(t, 0, due[0].AttemptCount)
	assert.Equal(t, models.QueueStatusPending, due[0].Status)

	assert.ErrorIs(t, f.sync.RetryFailed(ctx, "lessons", "l1"), ErrNotFound)
	assert.ErrorIs(t, f.sync.DiscardFailed(ctx, "lessons", "missing"), ErrNotFound)
}

func TestEditResetsFailedEntry(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]
	require.NoError(t, f.sync.RecordFailure(ctx, entry.ID, 8, f.now, "boom", true))

	_, err := f.records.Execute(ctx, models.Query{Kind: models.QueryUpdate, Table: "lessons", ID: "l1", Values: map[string]any{"title": "Fixed"}})
	require.NoError(t, err)

	row, ok := readQueueRow(t, f.db, "lessons", "l1")
	require.True(t, ok)
	assert.Equal(t, "pending", row.status)
	assert.Equal(t, 0, row.attempts)
	assert.Equal(t, "create", row.operation)
}

func TestDiscardFailed(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]
	require.NoError(t, f.sync.RecordFailure(ctx, entry.ID, 1, f.now, "rejected", true))

	require.NoError(t, f.sync.DiscardFailed(ctx, "lessons", "l1"))
	assert.Equal(t, 0, countRows(t, f.db, "sync_queue"))

	// локальная запись остаётся
	_, ok := f.lessonTitle(t, "l1")
	assert.True(t, ok)
}

// ── Acknowledge ──

func TestAcknowledge_RemovesEntry(t *testing.T) {
	f := newSyncFixture(t)

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]

	require.NoError(t, f.sync.Acknowledge(nopContext(), entry, 4))
	assert.Equal(t, 0, countRows(t, f.db, "sync_queue"))

	var remoteRev int64
	require.NoError(t, f.db.QueryRow(`SELECT remote_revision FROM lessons WHERE id = 'l1'`).Scan(&remoteRev))
	assert.EqualValues(t, 4, remoteRev)
}

func TestAcknowledge_KeepsNewerEdit(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]

	// правка во время push
	_, err := f.records.Execute(ctx, models.Query{Kind: models.QueryUpdate, Table: "lessons", ID: "l1", Values: map[string]any{"title": "Edited"}})
	require.NoError(t, err)

	require.NoError(t, f.sync.Acknowledge(ctx, entry, 1))

	row, ok := readQueueRow(t, f.db, "lessons", "l1")
	require.True(t, ok)
	assert.Equal(t, "update", row.operation)
	assert.EqualValues(t, 1, row.base)
	assert.Contains(t, row.payload.String, "Edited")
}

func TestAcknowledge_EntryGone(t *testing.T) {
	f := newSyncFixture(t)

	f.insert(t, "l1", "Intro")
	entry := f.due(t)[0]
	require.NoError(t, f.sync.Acknowledge(nopContext(), entry, 1))

	// повторный ack не падает
	assert.NoError(t, f.sync.Acknowledge(nopContext(), entry, 1))
}

// ── Conflicts ──

func TestResolveRemoteWins_AppliesRemoteValue(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	f.insert(t, "l1", "Local")
	entry := f.due(t)[0]
	remote := remoteLesson("l1", "Remote", 5, f.now.Add(time.Hour))

	conflict := models.ConflictRecord{
		ID:              "cf1",
		EntityTable:     "lessons",
		EntityID:        "l1",
		LocalPayload:    entry.Payload,
		RemotePayload:   remote.Payload,
		LocalUpdatedAt:  entry.UpdatedAt,
		RemoteUpdatedAt: remote.UpdatedAt,
		RemoteRevision:  remote.Revision,
		Resolution:      models.ResolutionRemoteWins,
		DetectedAt:      f.now,
	}
	require.NoError(t, f.sync.ResolveRemoteWins(ctx, entry, remote, conflict))

	title, ok := f.lessonTitle(t, "l1")
	require.True(t, ok)
	assert.Equal(t, "Remote", title)
	assert.Equal(t, 0, countRows(t, f.db, "sync_queue"))
	assert.Equal(t, 1, countRows(t, f.db, "sync_conflicts"))

	var remoteRev int64
	require.NoError(t, f.db.QueryRow(`SELECT remote_revision FROM lessons WHERE id = 'l1'`).Scan(&remoteRev))
	assert.EqualValues(t, 5, remoteRev)
}

func TestResolveRemoteWins_RemoteTombstone(t *testing.T) {
	f := newSyncFixture(t)

	f.insert(t, "l1", "Local")
	entry := f.due(t)[0]
	remote := models.RemoteRecord{EntityTable: "lessons", EntityID: "l1", Operation: models.OperationDelete, Revision: 3, UpdatedAt: f.now}

	require.NoError(t, f.sync.ResolveRemoteWins(nopContext(), entry, remote, models.ConflictRecord{
		ID: "cf1", EntityTable: "lessons", EntityID: "l1", Resolution: models.ResolutionRemoteWins,
		LocalUpdatedAt: f.now, RemoteUpdatedAt: f.now, DetectedAt: f.now, RemoteRevision: 3,
	}))

	_, ok := f.lessonTitle(t, "l1")
	assert.False(t, ok)
	assert.Equal(t, 0, countRows(t, f.db, "sync_queue"))
}

func TestResolveLocalWins_Rebases(t *testing.T) {
	f := newSyncFixture(t)

	f.insert(t, "l1", "Local")
	entry := f.due(t)[0]
	remote := remoteLesson("l1", "Remote", 5, f.now.Add(-time.Hour))

	rebased, err := f.sync.ResolveLocalWins(nopContext(), entry, remote, models.ConflictRecord{
		ID: "cf1", EntityTable: "lessons", EntityID: "l1", Resolution: models.ResolutionLocalWins,
		LocalUpdatedAt: f.now, RemoteUpdatedAt: remote.UpdatedAt, DetectedAt: f.now, RemoteRevision: 5,
		RemotePayload: remote.Payload,
	})
	require.NoError(t, err)

	assert.Equal(t, entry.ID, rebased.ID)
	assert.Equal(t, models.OperationUpdate, rebased.Operation)
	assert.EqualValues(t, 5, rebased.BaseRevision)
	assert.Contains(t, string(rebased.Payload), "Local")

	title, _ := f.lessonTitle(t, "l1")
	assert.Equal(t, "Local", title)
	assert.Equal(t, 1, countRows(t, f.db, "sync_conflicts"))
}

// ── Pull ──

func TestApplyRemoteChanges(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	// l1 имеет локальную правку в очереди и не должен перезаписываться
	f.insert(t, "l1", "Local pending")

	changes := []models.RemoteRecord{
		remoteLesson("l1", "Remote l1", 2, f.now),
		remoteLesson("l2", "Remote l2", 3, f.now),
		{EntityTable: "users", EntityID: "u1", Operation: models.OperationUpdate, Revision: 1},
	}

	applied, err := f.sync.ApplyRemoteChanges(ctx, changes)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	title, _ := f.lessonTitle(t, "l1")
	assert.Equal(t, "Local pending", title)
	title, ok := f.lessonTitle(t, "l2")
	require.True(t, ok)
	assert.Equal(t, "Remote l2", title)

	// pull не создаёт записей в очереди
	_, queued := readQueueRow(t, f.db, "lessons", "l2")
	assert.False(t, queued)

	// устаревшая ревизия пропускается, новая применяется
	applied, err = f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{remoteLesson("l2", "Stale", 3, f.now)})
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	applied, err = f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{
		{EntityTable: "lessons", EntityID: "l2", Operation: models.OperationDelete, Revision: 4, UpdatedAt: f.now},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	_, ok = f.lessonTitle(t, "l2")
	assert.False(t, ok)
}

func TestApplyRemoteChanges_RecreatedEntityKeepsRevisionGrowing(t *testing.T) {
	f := newSyncFixture(t)
	ctx := nopContext()

	localRevision := func() int64 {
		t.Helper()
		var rev int64
		require.NoError(t, f.db.QueryRow(`SELECT revision FROM lessons WHERE id = 'l2'`).Scan(&rev))
		return rev
	}

	_, err := f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{remoteLesson("l2", "v1", 1, f.now)})
	require.NoError(t, err)
	_, err = f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{remoteLesson("l2", "v2", 2, f.now)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, localRevision())

	_, err = f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{
		{EntityTable: "lessons", EntityID: "l2", Operation: models.OperationDelete, Revision: 3, UpdatedAt: f.now},
	})
	require.NoError(t, err)

	applied, err := f.sync.ApplyRemoteChanges(ctx, []models.RemoteRecord{remoteLesson("l2", "v4", 4, f.now)})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Greater(t, localRevision(), int64(3))
}

func TestApplyRemoteChanges_RollsBackOnError(t *testing.T) {
	f := newSyncFixture(t)

	bad := remoteLesson("l3", "Bad", 2, f.now)
	bad.Payload = json.RawMessage(`{"id":"l3","course_id":"c1","title":"Bad","duration":-1}`)

	_, err := f.sync.ApplyRemoteChanges(nopContext(), []models.RemoteRecord{
		remoteLesson("l2", "Good", 1, f.now),
		bad,
	})
	assert.ErrorIs(t, err, ErrConstraint)

	_, ok := f.lessonTitle(t, "l2")
	assert.False(t, ok)
}
