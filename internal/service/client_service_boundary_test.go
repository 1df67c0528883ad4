package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/mock"
	"github.com/MKhiriev/go-academy-offline/internal/paths"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/models"
)

type boundaryMocks struct {
	paths   *mock.MockStoragePathResolver
	records *mock.MockRecordRepository
	monitor *mock.MockConnectivityMonitor
	sync    *mock.MockClientSyncService
	content *mock.MockClientContentService
	svc     BoundaryService
}

func newBoundaryMocks(t *testing.T) *boundaryMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &boundaryMocks{
		paths:   mock.NewMockStoragePathResolver(ctrl),
		records: mock.NewMockRecordRepository(ctrl),
		monitor: mock.NewMockConnectivityMonitor(ctrl),
		sync:    mock.NewMockClientSyncService(ctrl),
		content: mock.NewMockClientContentService(ctrl),
	}
	m.svc = NewBoundaryService(m.paths, m.records, m.monitor, m.sync, m.content, logger.Nop())
	return m
}

func envelope(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ── get_storage_path ─────────────────────────────────────────────────────────

func TestBoundary_StoragePath(t *testing.T) {
	m := newBoundaryMocks(t)
	m.paths.EXPECT().DatabasePath().Return("/home/u/.config/academy/academy.db", nil)

	got := m.svc.StoragePath(context.Background())
	assert.JSONEq(t, `{"status":"success","path":"/home/u/.config/academy/academy.db"}`, envelope(t, got))
}

func TestBoundary_StoragePath_Error(t *testing.T) {
	m := newBoundaryMocks(t)
	m.paths.EXPECT().DatabasePath().Return("", &paths.PathError{Err: paths.ErrNoUserDir})

	got := m.svc.StoragePath(context.Background())
	assert.JSONEq(t, `{"status":"error","error":{"kind":"path","message":"storage location unavailable"}}`, envelope(t, got))
}

// ── execute_query ────────────────────────────────────────────────────────────

func TestBoundary_ExecuteQuery_EmptySelectKeepsRows(t *testing.T) {
	m := newBoundaryMocks(t)
	q := models.Query{Kind: models.QuerySelect, Table: "lessons"}
	m.records.EXPECT().Execute(gomock.Any(), q).Return(models.QueryResult{}, nil)

	got := m.svc.ExecuteQuery(context.Background(), q)
	assert.JSONEq(t, `{"status":"success","rows":[]}`, envelope(t, got))
}

func TestBoundary_ExecuteQuery_Insert(t *testing.T) {
	m := newBoundaryMocks(t)
	q := insertLessonQuery("", "Intro")
	m.records.EXPECT().Execute(gomock.Any(), q).Return(models.QueryResult{Affected: 1, ID: "gen-1", Revision: 1}, nil)

	got := m.svc.ExecuteQuery(context.Background(), q)
	assert.JSONEq(t, `{"status":"success","rows":[],"affected":1,"id":"gen-1","revision":1}`, envelope(t, got))
}

func TestBoundary_ExecuteQuery_Constraint(t *testing.T) {
	m := newBoundaryMocks(t)
	m.records.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(models.QueryResult{}, &store.QueryError{Kind: store.ErrConstraint, Op: "insert lessons"})

	got := m.svc.ExecuteQuery(context.Background(), insertLessonQuery("l1", ""))
	assert.JSONEq(t, `{"status":"error","error":{"kind":"query_constraint","message":"the change violates a data constraint"}}`, envelope(t, got))
}

func TestBoundary_ExecuteBatch(t *testing.T) {
	m := newBoundaryMocks(t)
	queries := []models.Query{insertLessonQuery("l1", "Intro"), insertLessonQuery("l2", "Next")}
	m.records.EXPECT().ExecuteBatch(gomock.Any(), queries).Return([]models.QueryResult{
		{Rows: []models.Row{}, Affected: 1, ID: "l1", Revision: 1},
		{Rows: []models.Row{}, Affected: 1, ID: "l2", Revision: 1},
	}, nil)

	got := m.svc.ExecuteBatch(context.Background(), queries)
	assert.JSONEq(t, `{"status":"success","data":[
		{"rows":[],"affected":1,"id":"l1","revision":1},
		{"rows":[],"affected":1,"id":"l2","revision":1}
	]}`, envelope(t, got))
}

func TestBoundary_ExecuteBatch_Empty(t *testing.T) {
	m := newBoundaryMocks(t)

	// пустой батч отклоняется без обращения к хранилищу
	got := m.svc.ExecuteBatch(context.Background(), nil)
	require.NotNil(t, got.Error)
	assert.Equal(t, KindInvalidRequest, got.Error.Kind)
}

func TestBoundary_ExecuteBatch_RolledBack(t *testing.T) {
	m := newBoundaryMocks(t)
	m.records.EXPECT().ExecuteBatch(gomock.Any(), gomock.Any()).
		Return(nil, &store.QueryError{Kind: store.ErrConstraint, Op: "batch"})

	got := m.svc.ExecuteBatch(context.Background(), []models.Query{insertLessonQuery("l1", "")})
	require.NotNil(t, got.Error)
	assert.Equal(t, KindQueryConstraint, got.Error.Kind)
}

// ── check_connectivity ───────────────────────────────────────────────────────

func TestBoundary_CheckConnectivity(t *testing.T) {
	m := newBoundaryMocks(t)
	m.monitor.EXPECT().IsOnline(gomock.Any()).Return(false)

	got := m.svc.CheckConnectivity(context.Background())
	assert.JSONEq(t, `{"status":"success","online":false}`, envelope(t, got))
}

// ── trigger_sync ─────────────────────────────────────────────────────────────

func TestBoundary_TriggerSync_Offline(t *testing.T) {
	m := newBoundaryMocks(t)
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m.sync.EXPECT().Sync(gomock.Any()).Return(models.SyncReport{Synced: false, Timestamp: at}, nil)

	got := m.svc.TriggerSync(context.Background())
	assert.JSONEq(t, `{"status":"success","synced":false,"timestamp":"2026-03-10T09:00:00Z","conflicts":[],"message":"offline, will retry"}`, envelope(t, got))
}

func TestBoundary_TriggerSync_Notices(t *testing.T) {
	m := newBoundaryMocks(t)
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	report := models.SyncReport{
		Synced:    true,
		Timestamp: at,
		Pushed:    2,
		Pulled:    1,
		Conflicts: []models.ConflictRecord{
			{EntityTable: "lessons", EntityID: "l1", Resolution: models.ResolutionRemoteWins},
			{EntityTable: "lessons", EntityID: "l2", Resolution: models.ResolutionLocalWins},
		},
		Failed: []models.SyncQueueEntry{{EntityTable: "courses", EntityID: "c1", LastError: "read-only"}},
	}
	m.sync.EXPECT().Sync(gomock.Any()).Return(report, nil)

	got := m.svc.TriggerSync(context.Background())
	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.True(t, got.Synced)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, []models.ErrorBody{
		{Kind: KindSyncConflict, Message: "sync conflict resolved using server version (lessons/l1)"},
		{Kind: KindSyncTerminal, Message: "change rejected by server (courses/c1): read-only"},
	}, got.Notices)
}

func TestBoundary_TriggerSync_Error(t *testing.T) {
	m := newBoundaryMocks(t)
	m.sync.EXPECT().Sync(gomock.Any()).
		Return(models.SyncReport{}, &SyncError{Kind: ErrSyncNetwork, Entity: "lessons/l1"})

	got := m.svc.TriggerSync(context.Background())
	assert.JSONEq(t, `{"status":"error","synced":false,"conflicts":[],"error":{"kind":"sync_network","message":"offline, will retry"}}`, envelope(t, got))
}

// ── fetch_content ────────────────────────────────────────────────────────────

func TestBoundary_FetchContent(t *testing.T) {
	m := newBoundaryMocks(t)
	req := models.FetchRequest{ContentID: "v1", SourceURL: "https://cdn/v1"}
	m.content.EXPECT().Fetch(gomock.Any(), req).
		Return(models.ContentAsset{ContentID: "v1", LocalPath: "/cache/objects/ab/abcd"}, nil)

	got := m.svc.FetchContent(context.Background(), req)
	assert.JSONEq(t, `{"status":"success","content_id":"v1","local_path":"/cache/objects/ab/abcd"}`, envelope(t, got))
}

func TestBoundary_FetchContent_Offline(t *testing.T) {
	m := newBoundaryMocks(t)
	m.content.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(models.ContentAsset{}, &FetchError{Kind: ErrFetchNetwork, ContentID: "v1", Err: ErrContentOffline})

	got := m.svc.FetchContent(context.Background(), models.FetchRequest{ContentID: "v1", SourceURL: "u"})
	assert.JSONEq(t, `{"status":"error","content_id":"v1","error":{"kind":"fetch_network","message":"content unavailable offline"}}`, envelope(t, got))
}

// ── auxiliary operations ─────────────────────────────────────────────────────

func TestBoundary_ListingsAreNeverNull(t *testing.T) {
	m := newBoundaryMocks(t)
	ctx := context.Background()

	m.sync.EXPECT().FailedEntries(gomock.Any()).Return(nil, nil)
	m.sync.EXPECT().Conflicts(gomock.Any(), defaultConflictsLimit).Return(nil, nil)
	m.content.EXPECT().List(gomock.Any()).Return(nil, nil)

	assert.JSONEq(t, `{"status":"success","data":[]}`, envelope(t, m.svc.FailedChanges(ctx)))
	assert.JSONEq(t, `{"status":"success","data":[]}`, envelope(t, m.svc.Conflicts(ctx, 0)))
	assert.JSONEq(t, `{"status":"success","data":[]}`, envelope(t, m.svc.ListContent(ctx)))
}

func TestBoundary_SyncStatus(t *testing.T) {
	m := newBoundaryMocks(t)
	m.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{
		Online:         true,
		PendingChanges: 3,
		State:          models.SyncStateIdle,
	}, nil)

	got := m.svc.SyncStatus(context.Background())
	assert.JSONEq(t, `{"status":"success","data":{"is_online":true,"pending_changes":3,"failed_changes":0,"state":"idle"}}`, envelope(t, got))
}

func TestBoundary_EvictContent_NotFound(t *testing.T) {
	m := newBoundaryMocks(t)
	m.content.EXPECT().Evict(gomock.Any(), "v1").Return(&store.QueryError{Kind: store.ErrNotFound, Op: "get content asset"})

	got := m.svc.EvictContent(context.Background(), "v1")
	assert.JSONEq(t, `{"status":"error","error":{"kind":"query_not_found","message":"record not found"}}`, envelope(t, got))
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

func TestBoundary_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		req     models.InvokeRequest
		prepare func(m *boundaryMocks)
		want    string
	}{
		{
			name: "execute_query",
			req: models.InvokeRequest{
				Op:      OpExecuteQuery,
				Payload: json.RawMessage(`{"kind":"select","table":"lessons","limit":5}`),
			},
			prepare: func(m *boundaryMocks) {
				q := models.Query{Kind: models.QuerySelect, Table: "lessons", Limit: 5}
				m.records.EXPECT().Execute(gomock.Any(), q).
					Return(models.QueryResult{Rows: []models.Row{{"id": "l1"}}}, nil)
			},
			want: `{"status":"success","rows":[{"id":"l1"}]}`,
		},
		{
			name: "execute_query keeps numbers exact",
			req: models.InvokeRequest{
				Op:      OpExecuteQuery,
				Payload: json.RawMessage(`{"kind":"insert","table":"lessons","id":"l1","values":{"duration":9007199254740993},"filters":[{"column":"id","op":"eq","value":1}]}`),
			},
			prepare: func(m *boundaryMocks) {
				m.records.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, q models.Query) (models.QueryResult, error) {
						assert.Equal(t, json.Number("9007199254740993"), q.Values["duration"])
						require.Len(t, q.Filters, 1)
						assert.Equal(t, json.Number("1"), q.Filters[0].Value)
						return models.QueryResult{Rows: []models.Row{}, Affected: 1, ID: "l1", Revision: 1}, nil
					})
			},
			want: `{"status":"success","rows":[],"affected":1,"id":"l1","revision":1}`,
		},
		{
			name: "execute_query without payload",
			req:  models.InvokeRequest{Op: OpExecuteQuery},
			want: `{"status":"error","error":{"kind":"invalid_request","message":"invalid payload: payload is required"}}`,
		},
		{
			name: "retry_failed",
			req:  models.InvokeRequest{Op: OpRetryFailed, Payload: json.RawMessage(`{"table":"lessons","id":"l1"}`)},
			prepare: func(m *boundaryMocks) {
				m.sync.EXPECT().RetryFailed(gomock.Any(), "lessons", "l1").Return(nil)
			},
			want: `{"status":"success"}`,
		},
		{
			name: "discard_failed",
			req:  models.InvokeRequest{Op: OpDiscardFailed, Payload: json.RawMessage(`{"table":"lessons","id":"l1"}`)},
			prepare: func(m *boundaryMocks) {
				m.sync.EXPECT().DiscardFailed(gomock.Any(), "lessons", "l1").Return(nil)
			},
			want: `{"status":"success"}`,
		},
		{
			name: "conflicts with limit",
			req:  models.InvokeRequest{Op: OpConflicts, Payload: json.RawMessage(`{"limit":2}`)},
			prepare: func(m *boundaryMocks) {
				m.sync.EXPECT().Conflicts(gomock.Any(), 2).Return([]models.ConflictRecord{}, nil)
			},
			want: `{"status":"success","data":[]}`,
		},
		{
			name: "evict_content",
			req:  models.InvokeRequest{Op: OpEvictContent, Payload: json.RawMessage(`{"content_id":"v1"}`)},
			prepare: func(m *boundaryMocks) {
				m.content.EXPECT().Evict(gomock.Any(), "v1").Return(nil)
			},
			want: `{"status":"success"}`,
		},
		{
			name: "content_info",
			req:  models.InvokeRequest{Op: OpContentInfo, Payload: json.RawMessage(`{"content_id":"v1"}`)},
			prepare: func(m *boundaryMocks) {
				m.content.EXPECT().Info(gomock.Any(), "v1").Return(models.ContentInfo{
					Asset:    models.ContentAsset{ContentID: "v1", SourceURL: "https://cdn/v1", Title: "Intro", Type: models.ContentLesson, Status: models.AssetDownloading, BytesReceived: 5, BytesTotal: 10},
					Progress: models.DownloadProgress{ContentID: "v1", Progress: 50, Status: models.DownloadDownloading},
				}, nil)
			},
			want: `{"status":"success","data":{
				"asset":{"content_id":"v1","source_url":"https://cdn/v1","title":"Intro","type":"lesson","size_bytes":0,"bytes_received":5,"bytes_total":10,"status":"downloading","created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"},
				"offline":false,
				"progress":{"content_id":"v1","progress":50,"status":"downloading"}}}`,
		},
		{
			name: "content_info without payload",
			req:  models.InvokeRequest{Op: OpContentInfo},
			want: `{"status":"error","error":{"kind":"invalid_request","message":"invalid payload: payload is required"}}`,
		},
		{
			name: "content_usage",
			req:  models.InvokeRequest{Op: OpContentUsage},
			prepare: func(m *boundaryMocks) {
				m.content.EXPECT().Usage(gomock.Any()).Return(models.StorageUsage{Used: 1, Available: 9, Limit: 10, Assets: 1}, nil)
			},
			want: `{"status":"success","data":{"used":1,"available":9,"limit":10,"assets":1}}`,
		},
		{
			name: "clear_content failure",
			req:  models.InvokeRequest{Op: OpClearContent},
			prepare: func(m *boundaryMocks) {
				m.content.EXPECT().Clear(gomock.Any()).Return(&FetchError{Kind: ErrFetchIO, Err: errors.New("busy")})
			},
			want: `{"status":"error","error":{"kind":"fetch_io","message":"content storage unavailable"}}`,
		},
		{
			name: "unknown op",
			req:  models.InvokeRequest{Op: "drop_database"},
			want: `{"status":"error","error":{"kind":"invalid_request","message":"unknown operation: \"drop_database\""}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newBoundaryMocks(t)
			if tt.prepare != nil {
				tt.prepare(m)
			}
			got := m.svc.Dispatch(context.Background(), tt.req)
			assert.JSONEq(t, tt.want, envelope(t, got))
		})
	}
}

func TestBoundary_Dispatch_MalformedPayload(t *testing.T) {
	m := newBoundaryMocks(t)

	got := m.svc.Dispatch(context.Background(), models.InvokeRequest{Op: OpFetchContent, Payload: json.RawMessage(`[1,2]`)})
	resp, ok := got.(models.FetchResponse)
	require.True(t, ok)
	assert.Equal(t, models.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, KindInvalidRequest, resp.Error.Kind)
}
