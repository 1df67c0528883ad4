package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

type syncRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
	ids    *utils.UUIDGenerator
}

// NewSyncRepository returns the [SyncRepository] backing the sync engine.
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	return &syncRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
		ids:    utils.NewUUIDGenerator(),
	}
}

// queuedChange is one local mutation to be coalesced into the queue.
type queuedChange struct {
	table     string
	entityID  string
	operation models.SyncOperation
	payload   json.RawMessage
	base      int64
	at        time.Time
}

// enqueueChange inserts or coalesces the queue entry of an entity. It must
// run in the transaction that performed the mutation.
func enqueueChange(ctx context.Context, q querier, ids *utils.UUIDGenerator, c queuedChange) error {
	var (
		entryID  string
		queuedOp models.SyncOperation
	)
	err := q.QueryRowContext(ctx, selectQueueEntryForEntity, c.table, c.entityID).Scan(&entryID, &queuedOp)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = q.ExecContext(ctx, insertQueueEntry,
			ids.Generate(),
			c.table,
			c.entityID,
			c.operation,
			nullablePayload(c.payload),
			c.base,
			c.at,
			c.at,
			c.at,
		)
		return err
	}
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, coalesceQueueEntry,
		coalesceOperation(queuedOp, c.operation),
		nullablePayload(c.payload),
		c.base,
		c.at,
		c.at,
		entryID,
	)
	return err
}

// coalesceOperation folds a new change into an already queued one.
//
//	create + update -> create
//	any    + delete -> delete
//	delete + create -> update
//	update + update -> update
func coalesceOperation(queued, next models.SyncOperation) models.SyncOperation {
	switch {
	case next == models.OperationDelete:
		return models.OperationDelete
	case queued == models.OperationCreate:
		return models.OperationCreate
	case queued == models.OperationDelete:
		return models.OperationUpdate
	}
	return next
}

// rebasedOperation adjusts a queued operation after the remote state of the
// entity became known.
func rebasedOperation(current models.SyncOperation, remoteOp models.SyncOperation) models.SyncOperation {
	if remoteOp == models.OperationDelete {
		if current == models.OperationUpdate {
			return models.OperationCreate
		}
		return current
	}
	if current == models.OperationCreate {
		return models.OperationUpdate
	}
	return current
}

func nullablePayload(p json.RawMessage) any {
	if len(p) == 0 {
		return nil
	}
	return string(p)
}

func (s *syncRepository) DueEntries(ctx context.Context, now time.Time, limit int) ([]models.SyncQueueEntry, error) {
	rows, err := s.db.QueryContext(ctx, selectDueQueueEntries, now.UTC(), limit)
	if err != nil {
		s.logger.Err(err).Str("func", "syncRepository.DueEntries").Msg("failed to query due queue entries")
		return nil, s.db.queryError("due entries", err)
	}
	defer rows.Close()

	entries, err := scanQueueEntries(rows)
	if err != nil {
		return nil, s.db.queryError("due entries", err)
	}
	return entries, nil
}

func (s *syncRepository) FailedEntries(ctx context.Context) ([]models.SyncQueueEntry, error) {
	rows, err := s.db.QueryContext(ctx, selectFailedQueueEntries)
	if err != nil {
		return nil, s.db.queryError("failed entries", err)
	}
	defer rows.Close()

	entries, err := scanQueueEntries(rows)
	if err != nil {
		return nil, s.db.queryError("failed entries", err)
	}
	return entries, nil
}

func (s *syncRepository) Counts(ctx context.Context) (pending int, failed int, err error) {
	rows, err := s.db.QueryContext(ctx, countQueueByStatus)
	if err != nil {
		return 0, 0, s.db.queryError("queue counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.QueueStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return 0, 0, s.db.queryError("queue counts", errors.Join(ErrScanningRows, err))
		}
		switch status {
		case models.QueueStatusPending:
			pending = n
		case models.QueueStatusFailed:
			failed = n
		}
	}

	if err := rows.Err(); err != nil {
		return 0, 0, s.db.queryError("queue counts", err)
	}
	return pending, failed, nil
}

func (s *syncRepository) Acknowledge(ctx context.Context, entry models.SyncQueueEntry, remoteRevision int64) error {
	return s.db.WithWriteTx(ctx, "acknowledge", func(tx *sql.Tx) error {
		if entry.Operation != models.OperationDelete {
			if err := setRemoteRevision(ctx, tx, entry.EntityTable, entry.EntityID, remoteRevision); err != nil {
				return err
			}
		}

		seq, currentOp, err := queueSeq(ctx, tx, entry.ID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if seq == entry.Seq {
			_, err = tx.ExecContext(ctx, deleteQueueEntry, entry.ID)
			return err
		}

		// the entity changed while the push was in flight: keep the newer
		// change, now based on the acknowledged revision
		_, err = tx.ExecContext(ctx, rebaseQueueEntry, remoteRevision, rebasedOperation(currentOp, entry.Operation), entry.ID)
		return err
	})
}

func (s *syncRepository) ResolveRemoteWins(ctx context.Context, entry models.SyncQueueEntry, remote models.RemoteRecord, conflict models.ConflictRecord) error {
	return s.db.WithWriteTx(ctx, "resolve remote wins", func(tx *sql.Tx) error {
		if err := insertConflictRecord(ctx, tx, conflict); err != nil {
			return err
		}

		seq, currentOp, err := queueSeq(ctx, tx, entry.ID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if seq != entry.Seq {
			_, err = tx.ExecContext(ctx, rebaseQueueEntry, remote.Revision, rebasedOperation(currentOp, remote.Operation), entry.ID)
			return err
		}

		if err = applyRemoteRecord(ctx, tx, remote); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, deleteQueueEntry, entry.ID)
		return err
	})
}

func (s *syncRepository) ResolveLocalWins(ctx context.Context, entry models.SyncQueueEntry, remote models.RemoteRecord, conflict models.ConflictRecord) (models.SyncQueueEntry, error) {
	var rebased models.SyncQueueEntry
	err := s.db.WithWriteTx(ctx, "resolve local wins", func(tx *sql.Tx) error {
		if err := insertConflictRecord(ctx, tx, conflict); err != nil {
			return err
		}

		_, currentOp, err := queueSeq(ctx, tx, entry.ID)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, rebaseQueueEntry, remote.Revision, rebasedOperation(currentOp, remote.Operation), entry.ID); err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, selectQueueEntryByID, entry.ID)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries, err := scanQueueEntries(rows)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return notFound("queue entry")
		}
		rebased = entries[0]
		return nil
	})
	if err != nil {
		return models.SyncQueueEntry{}, err
	}

	return rebased, nil
}

func (s *syncRepository) RecordFailure(ctx context.Context, entryID string, attempts int, nextAttemptAt time.Time, lastErr string, terminal bool) error {
	status := models.QueueStatusPending
	if terminal {
		status = models.QueueStatusFailed
	}

	return s.db.WithWriteTx(ctx, "record failure", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, recordQueueFailure, attempts, nextAttemptAt.UTC(), lastErr, status, entryID)
		return err
	})
}

func (s *syncRepository) RetryFailed(ctx context.Context, table, entityID string) error {
	return s.db.WithWriteTx(ctx, "retry failed", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, retryFailedQueueEntry, s.now().UTC(), table, entityID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return notFound("retry failed")
		}
		return nil
	})
}

func (s *syncRepository) DiscardFailed(ctx context.Context, table, entityID string) error {
	return s.db.WithWriteTx(ctx, "discard failed", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, discardFailedQueueEntry, table, entityID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return notFound("discard failed")
		}
		return nil
	})
}

func (s *syncRepository) ApplyRemoteChanges(ctx context.Context, changes []models.RemoteRecord) (int, error) {
	applied := 0
	err := s.db.WithWriteTx(ctx, "apply remote changes", func(tx *sql.Tx) error {
		applied = 0
		for _, change := range changes {
			if _, ok := LookupTable(change.EntityTable); !ok {
				s.logger.Warn().
					Str("func", "syncRepository.ApplyRemoteChanges").
					Str("table", change.EntityTable).
					Msg("skipping change for unknown table")
				continue
			}

			var pending int
			if err := tx.QueryRowContext(ctx, queueEntryExists, change.EntityTable, change.EntityID).Scan(&pending); err != nil {
				return err
			}
			if pending > 0 {
				continue
			}

			known, err := localRemoteRevision(ctx, tx, change.EntityTable, change.EntityID)
			if err != nil {
				return err
			}
			if known >= change.Revision {
				continue
			}

			if err = applyRemoteRecord(ctx, tx, change); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return applied, nil
}

func queueSeq(ctx context.Context, q querier, entryID string) (int64, models.SyncOperation, error) {
	var (
		seq int64
		op  models.SyncOperation
	)
	err := q.QueryRowContext(ctx, selectQueueSeq, entryID).Scan(&seq, &op)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", notFound("queue entry")
	}
	return seq, op, err
}

func setRemoteRevision(ctx context.Context, q querier, tableName, id string, revision int64) error {
	table, ok := LookupTable(tableName)
	if !ok {
		return invalidQuery("set remote revision", "unknown table %q", tableName)
	}

	sqlText, args, err := sq.Update(table.Name).
		Set(columnRemoteRevision, revision).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, sqlText, args...)
	return err
}

// localRemoteRevision returns the remote revision last applied to an
// entity, or 0 when it does not exist locally.
func localRemoteRevision(ctx context.Context, q querier, tableName, id string) (int64, error) {
	sqlText, args, err := sq.Select(columnRemoteRevision).From(tableName).Where(sq.Eq{columnID: id}).ToSql()
	if err != nil {
		return 0, err
	}

	var revision int64
	err = q.QueryRowContext(ctx, sqlText, args...).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return revision, err
}

// applyRemoteRecord writes a remote version of an entity into its table.
// Unknown payload fields are ignored.
func applyRemoteRecord(ctx context.Context, q querier, rec models.RemoteRecord) error {
	op := "apply remote " + rec.EntityTable

	table, ok := LookupTable(rec.EntityTable)
	if !ok {
		return invalidQuery(op, "unknown table %q", rec.EntityTable)
	}

	if rec.Operation == models.OperationDelete {
		deletedAt := rec.UpdatedAt.UTC()
		if rec.UpdatedAt.IsZero() {
			deletedAt = time.Now().UTC()
		}
		return deleteRow(ctx, q, table, rec.EntityID, deletedAt)
	}

	values, err := decodePayload(rec.Payload)
	if err != nil {
		return invalidQuery(op, "decode payload: %v", err)
	}
	for col := range values {
		if !table.IsWritable(col) {
			delete(values, col)
		}
	}

	cols, vals, err := writableValues(op, table, values)
	if err != nil {
		return err
	}

	updatedAt := rec.UpdatedAt.UTC()
	if rec.UpdatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	sqlText, args, err := buildUpsertRemote(table, rec.EntityID, cols, vals, rec.Revision, updatedAt)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, sqlText, args...)
	return err
}

func decodePayload(payload json.RawMessage) (map[string]any, error) {
	values := map[string]any{}
	if len(payload) == 0 || string(payload) == "null" {
		return values, nil
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	return values, nil
}

func insertConflictRecord(ctx context.Context, q querier, c models.ConflictRecord) error {
	_, err := q.ExecContext(ctx, insertConflict,
		c.ID,
		c.EntityTable,
		c.EntityID,
		nullablePayload(c.LocalPayload),
		nullablePayload(c.RemotePayload),
		c.LocalUpdatedAt.UTC(),
		c.RemoteUpdatedAt.UTC(),
		c.RemoteRevision,
		c.Resolution,
		c.DetectedAt.UTC(),
	)
	return err
}

func scanQueueEntries(rows *sql.Rows) ([]models.SyncQueueEntry, error) {
	var entries []models.SyncQueueEntry

	for rows.Next() {
		var (
			entry   models.SyncQueueEntry
			payload sql.NullString
		)
		err := rows.Scan(
			&entry.ID,
			&entry.EntityTable,
			&entry.EntityID,
			&entry.Operation,
			&payload,
			&entry.BaseRevision,
			&entry.Seq,
			&entry.EnqueuedAt,
			&entry.UpdatedAt,
			&entry.AttemptCount,
			&entry.NextAttemptAt,
			&entry.LastError,
			&entry.Status,
		)
		if err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		if payload.Valid {
			entry.Payload = json.RawMessage(payload.String)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return entries, nil
}
