package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-academy-offline/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConnectivityMonitor answers whether the remote service is reachable.
// It is implemented by *connectivity.Monitor.
type ConnectivityMonitor interface {
	// IsOnline returns the cached reachability, probing when the cache is
	// cold.
	IsOnline(ctx context.Context) bool
	// Probe ignores the cache and probes the remote.
	Probe(ctx context.Context) bool
	// MarkOffline records an observed transport failure so that callers
	// stop hitting the network until the next probe.
	MarkOffline()
}

// StoragePathResolver returns the database location. It is implemented by
// *paths.Resolver.
type StoragePathResolver interface {
	DatabasePath() (string, error)
}

// ClientSyncService reconciles the local store with the remote service.
type ClientSyncService interface {
	// Sync runs one sync pass, or joins the pass already in flight and
	// returns its result. Offline is not an error: the report has Synced
	// false. Pass-level failures are returned as *SyncError.
	Sync(ctx context.Context) (models.SyncReport, error)

	// Status returns a snapshot of connectivity, queue counters, the last
	// successful sync and the current engine state.
	Status(ctx context.Context) (models.SyncStatus, error)

	// FailedEntries lists terminal queue entries.
	FailedEntries(ctx context.Context) ([]models.SyncQueueEntry, error)
	// RetryFailed puts a terminal entry back into the queue.
	RetryFailed(ctx context.Context, table, entityID string) error
	// DiscardFailed drops a terminal entry. The local record keeps its
	// value and is overwritten by the next pulled remote change.
	DiscardFailed(ctx context.Context, table, entityID string) error

	// Conflicts returns the newest conflict audit records.
	Conflicts(ctx context.Context, limit int) ([]models.ConflictRecord, error)
}

// ClientSyncJob triggers sync passes in the background.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to one minute if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// ClientContentService is the content cache.
type ClientContentService interface {
	// Fetch returns the local path of the asset, downloading it when it is
	// not cached. Concurrent calls for one content id share a single
	// transfer. Failures are returned as *FetchError.
	Fetch(ctx context.Context, req models.FetchRequest) (models.ContentAsset, error)

	// Info returns one asset with its download progress and whether it
	// can be read offline.
	Info(ctx context.Context, contentID string) (models.ContentInfo, error)
	// Evict removes one asset and its file.
	Evict(ctx context.Context, contentID string) error
	List(ctx context.Context) ([]models.ContentAsset, error)
	Usage(ctx context.Context) (models.StorageUsage, error)
	// Clear removes every cached asset.
	Clear(ctx context.Context) error

	// Recover discards interrupted downloads left by a previous process.
	// It must run before the first Fetch.
	Recover(ctx context.Context) error
}

// BoundaryService is the surface offered to the shell. Every method
// returns a response envelope and never an error: failures are reported
// inside the envelope with a stable kind.
type BoundaryService interface {
	StoragePath(ctx context.Context) models.PathResponse
	ExecuteQuery(ctx context.Context, q models.Query) models.QueryResponse
	// ExecuteBatch runs queries in one transaction. Data holds one result
	// per query.
	ExecuteBatch(ctx context.Context, queries []models.Query) models.Response
	CheckConnectivity(ctx context.Context) models.ConnectivityResponse
	TriggerSync(ctx context.Context) models.SyncResponse
	FetchContent(ctx context.Context, req models.FetchRequest) models.FetchResponse

	SyncStatus(ctx context.Context) models.Response
	FailedChanges(ctx context.Context) models.Response
	RetryFailed(ctx context.Context, table, entityID string) models.Response
	DiscardFailed(ctx context.Context, table, entityID string) models.Response
	Conflicts(ctx context.Context, limit int) models.Response

	ListContent(ctx context.Context) models.Response
	ContentUsage(ctx context.Context) models.Response
	// ContentInfo reports one asset and whether it is available offline.
	ContentInfo(ctx context.Context, contentID string) models.Response
	EvictContent(ctx context.Context, contentID string) models.Response
	ClearContent(ctx context.Context) models.Response

	// Dispatch routes a message-passing call to the operation named by
	// req.Op and returns its envelope.
	Dispatch(ctx context.Context, req models.InvokeRequest) any
}
