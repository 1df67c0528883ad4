// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/paths"
)

// ClientStorages groups every on-device storage component behind one
// value that the service layer receives.
type ClientStorages struct {
	DB *DB

	RecordRepository       RecordRepository
	SyncRepository         SyncRepository
	SyncStateRepository    SyncStateRepository
	ContentAssetRepository ContentAssetRepository
	ContentFileStorage     ContentFileStorage
}

// NewClientStorages opens the database at layout.DBPath, runs pending
// migrations and wires all repositories.
func NewClientStorages(ctx context.Context, layout paths.Layout, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("db", layout.DBPath).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, layout.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:                     db,
		RecordRepository:       NewRecordRepository(db, logger),
		SyncRepository:         NewSyncRepository(db, logger),
		SyncStateRepository:    NewSyncStateRepository(db, logger),
		ContentAssetRepository: NewContentAssetRepository(db, logger),
		ContentFileStorage:     NewContentFileStorage(layout.ObjectsDir, layout.TempDir, logger),
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
