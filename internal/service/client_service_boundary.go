package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

// Operation names accepted by Dispatch.
const (
	OpGetStoragePath    = "get_storage_path"
	OpExecuteQuery      = "execute_query"
	OpExecuteBatch      = "execute_batch"
	OpCheckConnectivity = "check_connectivity"
	OpTriggerSync       = "trigger_sync"
	OpFetchContent      = "fetch_content"
	OpSyncStatus        = "sync_status"
	OpFailedChanges     = "failed_changes"
	OpRetryFailed       = "retry_failed"
	OpDiscardFailed     = "discard_failed"
	OpConflicts         = "conflicts"
	OpListContent       = "list_content"
	OpContentUsage      = "content_usage"
	OpContentInfo       = "content_info"
	OpEvictContent      = "evict_content"
	OpClearContent      = "clear_content"
)

const defaultConflictsLimit = 50

type boundaryService struct {
	paths   StoragePathResolver
	records store.RecordRepository
	monitor ConnectivityMonitor
	sync    ClientSyncService
	content ClientContentService
	logger  *logger.Logger
}

// NewBoundaryService builds the shell-facing boundary over the core
// services.
func NewBoundaryService(
	paths StoragePathResolver,
	records store.RecordRepository,
	monitor ConnectivityMonitor,
	syncService ClientSyncService,
	contentService ClientContentService,
	logger *logger.Logger,
) BoundaryService {
	return &boundaryService{
		paths:   paths,
		records: records,
		monitor: monitor,
		sync:    syncService,
		content: contentService,
		logger:  logger,
	}
}

func (b *boundaryService) StoragePath(ctx context.Context) models.PathResponse {
	path, err := b.paths.DatabasePath()
	if err != nil {
		b.logFailure(ctx, "boundaryService.StoragePath", err)
		return models.PathResponse{Status: models.StatusError, Error: mapError(err)}
	}
	return models.PathResponse{Status: models.StatusSuccess, Path: path}
}

func (b *boundaryService) ExecuteQuery(ctx context.Context, q models.Query) models.QueryResponse {
	res, err := b.records.Execute(ctx, q)
	if err != nil {
		b.logFailure(ctx, "boundaryService.ExecuteQuery", err)
		return models.QueryResponse{Status: models.StatusError, Error: mapError(err)}
	}

	return models.QueryResponse{
		Status:   models.StatusSuccess,
		Rows:     res.Rows,
		Affected: res.Affected,
		ID:       res.ID,
		Revision: res.Revision,
	}
}

func (b *boundaryService) ExecuteBatch(ctx context.Context, queries []models.Query) models.Response {
	if len(queries) == 0 {
		return errorResponse(fmt.Errorf("%w: batch has no queries", ErrInvalidPayload))
	}
	results, err := b.records.ExecuteBatch(ctx, queries)
	return b.respond(ctx, "boundaryService.ExecuteBatch", results, err)
}

func (b *boundaryService) CheckConnectivity(ctx context.Context) models.ConnectivityResponse {
	return models.ConnectivityResponse{Status: models.StatusSuccess, Online: b.monitor.IsOnline(ctx)}
}

func (b *boundaryService) TriggerSync(ctx context.Context) models.SyncResponse {
	report, err := b.sync.Sync(ctx)
	if err != nil {
		b.logFailure(ctx, "boundaryService.TriggerSync", err)
		return models.SyncResponse{
			Status:    models.StatusError,
			Synced:    false,
			Conflicts: []models.ConflictRecord{},
			Error:     mapError(err),
		}
	}
	if report.Conflicts == nil {
		report.Conflicts = []models.ConflictRecord{}
	}

	resp := models.SyncResponse{
		Status:    models.StatusSuccess,
		Synced:    report.Synced,
		Timestamp: report.Timestamp.UTC().Format(time.RFC3339),
		Pushed:    report.Pushed,
		Pulled:    report.Pulled,
		Failed:    len(report.Failed),
		Conflicts: report.Conflicts,
	}
	if !report.Synced {
		resp.Message = MsgOffline
		return resp
	}

	for _, c := range report.Conflicts {
		if c.Resolution == models.ResolutionRemoteWins {
			resp.Notices = append(resp.Notices, models.ErrorBody{
				Kind:    KindSyncConflict,
				Message: fmt.Sprintf("%s (%s/%s)", MsgServerVersionWins, c.EntityTable, c.EntityID),
			})
		}
	}
	for _, e := range report.Failed {
		resp.Notices = append(resp.Notices, models.ErrorBody{
			Kind:    KindSyncTerminal,
			Message: fmt.Sprintf("%s (%s/%s): %s", MsgChangeRejected, e.EntityTable, e.EntityID, e.LastError),
		})
	}
	return resp
}

func (b *boundaryService) FetchContent(ctx context.Context, req models.FetchRequest) models.FetchResponse {
	asset, err := b.content.Fetch(ctx, req)
	if err != nil {
		b.logFailure(ctx, "boundaryService.FetchContent", err)
		return models.FetchResponse{Status: models.StatusError, ContentID: req.ContentID, Error: mapError(err)}
	}
	return models.FetchResponse{Status: models.StatusSuccess, ContentID: asset.ContentID, LocalPath: asset.LocalPath}
}

func (b *boundaryService) SyncStatus(ctx context.Context) models.Response {
	status, err := b.sync.Status(ctx)
	return b.respond(ctx, "boundaryService.SyncStatus", status, err)
}

func (b *boundaryService) FailedChanges(ctx context.Context) models.Response {
	entries, err := b.sync.FailedEntries(ctx)
	if entries == nil {
		entries = []models.SyncQueueEntry{}
	}
	return b.respond(ctx, "boundaryService.FailedChanges", entries, err)
}

func (b *boundaryService) RetryFailed(ctx context.Context, table, entityID string) models.Response {
	return b.respond(ctx, "boundaryService.RetryFailed", nil, b.sync.RetryFailed(ctx, table, entityID))
}

func (b *boundaryService) DiscardFailed(ctx context.Context, table, entityID string) models.Response {
	return b.respond(ctx, "boundaryService.DiscardFailed", nil, b.sync.DiscardFailed(ctx, table, entityID))
}

func (b *boundaryService) Conflicts(ctx context.Context, limit int) models.Response {
	if limit <= 0 {
		limit = defaultConflictsLimit
	}
	conflicts, err := b.sync.Conflicts(ctx, limit)
	if conflicts == nil {
		conflicts = []models.ConflictRecord{}
	}
	return b.respond(ctx, "boundaryService.Conflicts", conflicts, err)
}

func (b *boundaryService) ListContent(ctx context.Context) models.Response {
	assets, err := b.content.List(ctx)
	if assets == nil {
		assets = []models.ContentAsset{}
	}
	return b.respond(ctx, "boundaryService.ListContent", assets, err)
}

func (b *boundaryService) ContentUsage(ctx context.Context) models.Response {
	usage, err := b.content.Usage(ctx)
	return b.respond(ctx, "boundaryService.ContentUsage", usage, err)
}

func (b *boundaryService) ContentInfo(ctx context.Context, contentID string) models.Response {
	info, err := b.content.Info(ctx, contentID)
	return b.respond(ctx, "boundaryService.ContentInfo", info, err)
}

func (b *boundaryService) EvictContent(ctx context.Context, contentID string) models.Response {
	return b.respond(ctx, "boundaryService.EvictContent", nil, b.content.Evict(ctx, contentID))
}

func (b *boundaryService) ClearContent(ctx context.Context) models.Response {
	return b.respond(ctx, "boundaryService.ClearContent", nil, b.content.Clear(ctx))
}

// entityRef addresses one queued entity in Dispatch payloads.
type entityRef struct {
	Table    string `json:"table"`
	EntityID string `json:"id"`
}

type contentRef struct {
	ContentID string `json:"content_id"`
}

type limitArgs struct {
	Limit int `json:"limit"`
}

func (b *boundaryService) Dispatch(ctx context.Context, req models.InvokeRequest) any {
	switch req.Op {
	case OpGetStoragePath:
		return b.StoragePath(ctx)
	case OpExecuteQuery:
		var q models.Query
		if err := decodeArgs(req.Payload, &q, true); err != nil {
			return models.QueryResponse{Status: models.StatusError, Error: mapError(err)}
		}
		return b.ExecuteQuery(ctx, q)
	case OpExecuteBatch:
		var queries []models.Query
		if err := decodeArgs(req.Payload, &queries, true); err != nil {
			return errorResponse(err)
		}
		return b.ExecuteBatch(ctx, queries)
	case OpCheckConnectivity:
		return b.CheckConnectivity(ctx)
	case OpTriggerSync:
		return b.TriggerSync(ctx)
	case OpFetchContent:
		var fr models.FetchRequest
		if err := decodeArgs(req.Payload, &fr, true); err != nil {
			return models.FetchResponse{Status: models.StatusError, Error: mapError(err)}
		}
		return b.FetchContent(ctx, fr)
	case OpSyncStatus:
		return b.SyncStatus(ctx)
	case OpFailedChanges:
		return b.FailedChanges(ctx)
	case OpRetryFailed, OpDiscardFailed:
		var ref entityRef
		if err := decodeArgs(req.Payload, &ref, true); err != nil {
			return errorResponse(err)
		}
		if req.Op == OpRetryFailed {
			return b.RetryFailed(ctx, ref.Table, ref.EntityID)
		}
		return b.DiscardFailed(ctx, ref.Table, ref.EntityID)
	case OpConflicts:
		var args limitArgs
		if err := decodeArgs(req.Payload, &args, false); err != nil {
			return errorResponse(err)
		}
		return b.Conflicts(ctx, args.Limit)
	case OpListContent:
		return b.ListContent(ctx)
	case OpContentUsage:
		return b.ContentUsage(ctx)
	case OpContentInfo:
		var ref contentRef
		if err := decodeArgs(req.Payload, &ref, true); err != nil {
			return errorResponse(err)
		}
		return b.ContentInfo(ctx, ref.ContentID)
	case OpEvictContent:
		var ref contentRef
		if err := decodeArgs(req.Payload, &ref, true); err != nil {
			return errorResponse(err)
		}
		return b.EvictContent(ctx, ref.ContentID)
	case OpClearContent:
		return b.ClearContent(ctx)
	}

	return errorResponse(fmt.Errorf("%w: %q", ErrUnknownOperation, req.Op))
}

func (b *boundaryService) respond(ctx context.Context, fn string, data any, err error) models.Response {
	if err != nil {
		b.logFailure(ctx, fn, err)
		return errorResponse(err)
	}
	return models.Response{Status: models.StatusSuccess, Data: data}
}

func (b *boundaryService) logFailure(ctx context.Context, fn string, err error) {
	event := b.logger.Err(err).Str("func", fn)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		event = event.Str("trace_id", traceID)
	}
	event.Msg("boundary operation failed")
}

func errorResponse(err error) models.Response {
	return models.Response{Status: models.StatusError, Error: mapError(err)}
}

func decodeArgs(payload json.RawMessage, dst any, required bool) error {
	if len(payload) == 0 || string(payload) == "null" {
		if required {
			return fmt.Errorf("%w: payload is required", ErrInvalidPayload)
		}
		return nil
	}
	// numbers stay json.Number so large integers keep their precision
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}
