package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-academy-offline/internal/adapter"
	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/connectivity"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/paths"
	"github.com/MKhiriev/go-academy-offline/internal/remotetest"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/models"
)

// coreFixture wires a real on-disk store to the in-memory remote.
type coreFixture struct {
	remote   *remotetest.Server
	layout   paths.Layout
	storages *store.ClientStorages
	adapter  adapter.RemoteAdapter
	monitor  *connectivity.Monitor
}

func newCoreFixture(t *testing.T) *coreFixture {
	t.Helper()
	ctx := context.Background()

	layout, err := paths.NewResolver("academy-test", config.ClientStorage{
		BaseDir: t.TempDir(),
		DBFile:  "academy.db",
	}).Resolve()
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, layout, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	srv := remotetest.New(t)
	remote, err := adapter.NewHTTPRemoteAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL(),
		RequestTimeout: 5 * time.Second,
		ProbeTimeout:   time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return &coreFixture{
		remote:   srv,
		layout:   layout,
		storages: storages,
		adapter:  remote,
		monitor:  connectivity.NewMonitor(remote, time.Minute, time.Second, logger.Nop()),
	}
}

func (f *coreFixture) syncService() ClientSyncService {
	return NewClientSyncService(
		f.storages.SyncRepository,
		f.storages.SyncStateRepository,
		f.adapter,
		f.monitor,
		SyncOptions{BackoffBase: time.Millisecond, BackoffCap: 10 * time.Millisecond},
		logger.Nop(),
	)
}

func (f *coreFixture) contentService(opts ContentOptions) ClientContentService {
	if opts.RetryBase == 0 {
		opts.RetryBase = time.Millisecond
	}
	return NewClientContentService(
		f.storages.ContentAssetRepository,
		f.storages.ContentFileStorage,
		f.adapter,
		f.monitor,
		opts,
		logger.Nop(),
	)
}

func (f *coreFixture) exec(t *testing.T, q models.Query) models.QueryResult {
	t.Helper()
	res, err := f.storages.RecordRepository.Execute(context.Background(), q)
	require.NoError(t, err)
	return res
}

func (f *coreFixture) lesson(t *testing.T, id string) models.Row {
	t.Helper()
	res := f.exec(t, models.Query{
		Kind:    models.QuerySelect,
		Table:   "lessons",
		Filters: []models.Filter{{Column: "id", Op: models.OpEq, Value: id}},
	})
	require.Len(t, res.Rows, 1)
	return res.Rows[0]
}

func insertLessonQuery(id, title string) models.Query {
	return models.Query{
		Kind:   models.QueryInsert,
		Table:  "lessons",
		ID:     id,
		Values: map[string]any{"course_id": "c1", "title": title},
	}
}

func updateLessonQuery(id, title string) models.Query {
	return models.Query{
		Kind:   models.QueryUpdate,
		Table:  "lessons",
		ID:     id,
		Values: map[string]any{"title": title},
	}
}
