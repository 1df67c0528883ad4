package store

import (
	"context"
	"hash"
	"io"
	"time"

	"github.com/MKhiriev/go-academy-offline/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// RecordRepository executes query descriptors against the application
// tables. Every mutation is coupled with its sync queue entry in one
// transaction.
type RecordRepository interface {
	Execute(ctx context.Context, q models.Query) (models.QueryResult, error)
	// ExecuteBatch runs all queries in one transaction; any failure rolls
	// back the whole batch.
	ExecuteBatch(ctx context.Context, queries []models.Query) ([]models.QueryResult, error)
}

// SyncRepository owns the sync queue and applies remote state locally.
type SyncRepository interface {
	// DueEntries returns pending entries whose next attempt is at or before
	// now, oldest first.
	DueEntries(ctx context.Context, now time.Time, limit int) ([]models.SyncQueueEntry, error)
	FailedEntries(ctx context.Context) ([]models.SyncQueueEntry, error)
	Counts(ctx context.Context) (pending int, failed int, err error)

	// Acknowledge records a successful push. The entry is removed only if
	// it was not modified since it was read.
	Acknowledge(ctx context.Context, entry models.SyncQueueEntry, remoteRevision int64) error
	ResolveRemoteWins(ctx context.Context, entry models.SyncQueueEntry, remote models.RemoteRecord, conflict models.ConflictRecord) error
	// ResolveLocalWins rebases the entry on the remote revision and returns
	// it ready for a forced push.
	ResolveLocalWins(ctx context.Context, entry models.SyncQueueEntry, remote models.RemoteRecord, conflict models.ConflictRecord) (models.SyncQueueEntry, error)
	RecordFailure(ctx context.Context, entryID string, attempts int, nextAttemptAt time.Time, lastErr string, terminal bool) error

	RetryFailed(ctx context.Context, table, entityID string) error
	DiscardFailed(ctx context.Context, table, entityID string) error

	// ApplyRemoteChanges writes pulled changes in one transaction, skipping
	// entities with a queue entry. It returns the number applied.
	ApplyRemoteChanges(ctx context.Context, changes []models.RemoteRecord) (int, error)
}

// SyncStateRepository holds the sync cursor and the conflict audit log.
type SyncStateRepository interface {
	GetCursor(ctx context.Context) (models.SyncCursor, error)
	SaveCursor(ctx context.Context, cursor models.SyncCursor) error
	ListConflicts(ctx context.Context, limit int) ([]models.ConflictRecord, error)
}

// ContentAssetRepository holds content cache metadata.
type ContentAssetRepository interface {
	Get(ctx context.Context, contentID string) (models.ContentAsset, error)
	Upsert(ctx context.Context, req models.FetchRequest) (models.ContentAsset, error)
	SetStatus(ctx context.Context, contentID string, status models.AssetStatus, lastErr string) error
	SetProgress(ctx context.Context, contentID string, received, total int64) error
	MarkComplete(ctx context.Context, contentID, localPath, checksum string, size int64) error
	Delete(ctx context.Context, contentID string) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]models.ContentAsset, error)
	ResetDownloading(ctx context.Context) (int64, error)
	TotalSize(ctx context.Context) (int64, error)
}

// ContentFileStorage manages cached blobs on disk.
type ContentFileStorage interface {
	ObjectPath(key string) string
	Stage(ctx context.Context, key string, r io.Reader, h hash.Hash) (*StagedFile, error)
	Commit(staged *StagedFile) (string, error)
	Discard(staged *StagedFile)
	Verify(path, algo string) (checksum string, size int64, err error)
	Remove(path string) error
	CleanupTemp() (int, error)
	Clear() error
}

// ErrorClassificator classifies driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// Kind maps err to one of the query error kinds.
	Kind(err error) error
}
