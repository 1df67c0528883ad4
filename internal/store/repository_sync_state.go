package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

type syncStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncStateRepository returns the [SyncStateRepository] holding the
// sync cursor and the conflict audit log.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		db:     db,
		logger: logger,
	}
}

func (s *syncStateRepository) GetCursor(ctx context.Context) (models.SyncCursor, error) {
	var (
		lastSync  sql.NullTime
		watermark string
	)

	err := s.db.QueryRowContext(ctx, selectSyncCursor).Scan(&lastSync, &watermark)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncCursor{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "syncStateRepository.GetCursor").Msg("failed to read sync cursor")
		return models.SyncCursor{}, s.db.queryError("get cursor", err)
	}

	cursor := models.SyncCursor{RemoteWatermark: watermark}
	if lastSync.Valid {
		t := lastSync.Time.UTC()
		cursor.LastSuccessfulSyncAt = &t
	}
	return cursor, nil
}

func (s *syncStateRepository) SaveCursor(ctx context.Context, cursor models.SyncCursor) error {
	var lastSync any
	if cursor.LastSuccessfulSyncAt != nil {
		lastSync = cursor.LastSuccessfulSyncAt.UTC()
	}

	return s.db.WithWriteTx(ctx, "save cursor", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, updateSyncCursor, lastSync, cursor.RemoteWatermark)
		return err
	})
}

func (s *syncStateRepository) ListConflicts(ctx context.Context, limit int) ([]models.ConflictRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectRecentConflicts, limit)
	if err != nil {
		return nil, s.db.queryError("list conflicts", err)
	}
	defer rows.Close()

	conflicts := make([]models.ConflictRecord, 0)
	for rows.Next() {
		var (
			c                   models.ConflictRecord
			localPay, remotePay sql.NullString
			localAt, remoteAt   time.Time
			detectedAt          time.Time
		)
		err = rows.Scan(
			&c.ID,
			&c.EntityTable,
			&c.EntityID,
			&localPay,
			&remotePay,
			&localAt,
			&remoteAt,
			&c.RemoteRevision,
			&c.Resolution,
			&detectedAt,
		)
		if err != nil {
			return nil, s.db.queryError("list conflicts", errors.Join(ErrScanningRows, err))
		}
		if localPay.Valid {
			c.LocalPayload = json.RawMessage(localPay.String)
		}
		if remotePay.Valid {
			c.RemotePayload = json.RawMessage(remotePay.String)
		}
		c.LocalUpdatedAt = localAt.UTC()
		c.RemoteUpdatedAt = remoteAt.UTC()
		c.DetectedAt = detectedAt.UTC()
		conflicts = append(conflicts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, s.db.queryError("list conflicts", err)
	}
	return conflicts, nil
}
