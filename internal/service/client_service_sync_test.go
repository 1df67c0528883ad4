package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-academy-offline/internal/adapter"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/mock"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/models"
)

type syncMocks struct {
	queue   *mock.MockSyncRepository
	state   *mock.MockSyncStateRepository
	remote  *mock.MockRemoteAdapter
	monitor *mock.MockConnectivityMonitor
	now     time.Time
	svc     *clientSyncService
}

func newSyncMocks(t *testing.T, opts SyncOptions) *syncMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &syncMocks{
		queue:   mock.NewMockSyncRepository(ctrl),
		state:   mock.NewMockSyncStateRepository(ctrl),
		remote:  mock.NewMockRemoteAdapter(ctrl),
		monitor: mock.NewMockConnectivityMonitor(ctrl),
		now:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	m.svc = NewClientSyncService(m.queue, m.state, m.remote, m.monitor, opts, logger.Nop()).(*clientSyncService)
	m.svc.now = func() time.Time { return m.now }
	return m
}

func queueEntry(id, entityID string, seq int64, updatedAt time.Time) models.SyncQueueEntry {
	return models.SyncQueueEntry{
		ID:            id,
		EntityTable:   "lessons",
		EntityID:      entityID,
		Operation:     models.OperationUpdate,
		Payload:       json.RawMessage(`{"id":"` + entityID + `","title":"local"}`),
		BaseRevision:  2,
		Seq:           seq,
		UpdatedAt:     updatedAt,
		NextAttemptAt: updatedAt,
		Status:        models.QueueStatusPending,
	}
}

// expectEmptyPull ожидает чтение курсора и одну пустую страницу изменений.
func (m *syncMocks) expectEmptyPull(watermark string) {
	m.state.EXPECT().GetCursor(gomock.Any()).Return(models.SyncCursor{RemoteWatermark: watermark}, nil)
	m.remote.EXPECT().Pull(gomock.Any(), watermark, 100).Return(models.ChangesResponse{Watermark: watermark}, nil)
}

// ── Sync: probing ────────────────────────────────────────────────────────────

func TestClientSyncService_Sync_Offline(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	m.monitor.EXPECT().Probe(gomock.Any()).Return(false)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Synced)
	assert.Equal(t, m.now, report.Timestamp)
	assert.Empty(t, report.Conflicts)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

// ── Sync: push ───────────────────────────────────────────────────────────────

func TestClientSyncService_Sync_AppliedEntryIsAcknowledged(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entry := queueEntry("q1", "l1", 1, m.now.Add(-time.Minute))

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	gomock.InOrder(
		m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil),
		m.remote.EXPECT().Push(gomock.Any(), pushRequest(entry, false)).
			Return(models.PushResponse{Result: models.PushApplied, Revision: 3}, nil),
		m.queue.EXPECT().Acknowledge(gomock.Any(), entry, int64(3)).Return(nil),
	)
	m.expectEmptyPull("7")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.SyncCursor) error {
			require.NotNil(t, c.LastSuccessfulSyncAt)
			assert.Equal(t, m.now, *c.LastSuccessfulSyncAt)
			assert.Equal(t, "7", c.RemoteWatermark)
			return nil
		})

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Synced)
	assert.Equal(t, 1, report.Pushed)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

func TestClientSyncService_Sync_ConflictTieGoesToRemote(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	at := m.now.Add(-time.Hour)
	entry := queueEntry("q1", "l1", 1, at)
	remote := models.RemoteRecord{
		EntityTable: "lessons",
		EntityID:    "l1",
		Operation:   models.OperationUpdate,
		Payload:     json.RawMessage(`{"id":"l1","title":"remote"}`),
		Revision:    5,
		UpdatedAt:   at,
	}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).
		Return(models.PushResponse{Result: models.PushConflict, Remote: &remote}, nil)
	m.queue.EXPECT().ResolveRemoteWins(gomock.Any(), entry, remote, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.SyncQueueEntry, _ models.RemoteRecord, c models.ConflictRecord) error {
			assert.Equal(t, models.ResolutionRemoteWins, c.Resolution)
			assert.NotEmpty(t, c.ID)
			assert.JSONEq(t, `{"id":"l1","title":"local"}`, string(c.LocalPayload))
			assert.JSONEq(t, `{"id":"l1","title":"remote"}`, string(c.RemotePayload))
			assert.Equal(t, int64(5), c.RemoteRevision)
			return nil
		})
	m.expectEmptyPull("")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.ResolutionRemoteWins, report.Conflicts[0].Resolution)
	assert.Zero(t, report.Pushed)
}

func TestClientSyncService_Sync_NewerLocalChangeIsForced(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entry := queueEntry("q1", "l1", 1, m.now.Add(-time.Minute))
	remote := models.RemoteRecord{
		EntityTable: "lessons",
		EntityID:    "l1",
		Operation:   models.OperationUpdate,
		Revision:    9,
		UpdatedAt:   m.now.Add(-time.Hour),
	}
	rebased := entry
	rebased.BaseRevision = 9

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	gomock.InOrder(
		m.remote.EXPECT().Push(gomock.Any(), pushRequest(entry, false)).
			Return(models.PushResponse{Result: models.PushConflict, Remote: &remote}, nil),
		m.queue.EXPECT().ResolveLocalWins(gomock.Any(), entry, remote, gomock.Any()).Return(rebased, nil),
		m.remote.EXPECT().Push(gomock.Any(), pushRequest(rebased, true)).
			Return(models.PushResponse{Result: models.PushApplied, Revision: 10}, nil),
		m.queue.EXPECT().Acknowledge(gomock.Any(), rebased, int64(10)).Return(nil),
	)
	m.expectEmptyPull("")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, models.ResolutionLocalWins, report.Conflicts[0].Resolution)
	assert.Equal(t, 1, report.Pushed)
}

func TestClientSyncService_Sync_RejectedEntryGoesTerminal(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entry := queueEntry("q1", "l1", 1, m.now)

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).
		Return(models.PushResponse{Result: models.PushRejected, Reason: "title too long"}, nil)
	m.queue.EXPECT().RecordFailure(gomock.Any(), "q1", 1, m.now, "title too long", true).Return(nil)
	m.expectEmptyPull("")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Synced)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, models.QueueStatusFailed, report.Failed[0].Status)
	assert.Equal(t, "title too long", report.Failed[0].LastError)
}

func TestClientSyncService_Sync_TransientFailureAbortsPass(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{BackoffBase: time.Second, BackoffCap: time.Minute})
	first := queueEntry("q1", "l1", 1, m.now)
	second := queueEntry("q2", "l2", 1, m.now)
	cause := &adapter.StatusError{Code: 503, Err: adapter.ErrServiceUnavailable}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{first, second}, nil)
	// второй элемент пачки не отправляется
	m.remote.EXPECT().Push(gomock.Any(), pushRequest(first, false)).Return(models.PushResponse{}, cause)
	m.queue.EXPECT().RecordFailure(gomock.Any(), "q1", 1, m.now.Add(time.Second), cause.Error(), false).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyncNetwork)
	assert.False(t, report.Synced)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, "lessons/l1", syncErr.Entity)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

func TestClientSyncService_Sync_TransportFailureMarksOffline(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entry := queueEntry("q1", "l1", 1, m.now)
	cause := errors.Join(adapter.ErrTransport, errors.New("connection refused"))

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, cause)
	m.queue.EXPECT().RecordFailure(gomock.Any(), "q1", 1, gomock.Any(), gomock.Any(), false).Return(nil)
	m.monitor.EXPECT().MarkOffline()

	_, err := m.svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncNetwork)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestClientSyncService_Sync_LastAttemptGoesTerminal(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{MaxAttempts: 3})
	entry := queueEntry("q1", "l1", 1, m.now)
	entry.AttemptCount = 2
	cause := &adapter.StatusError{Code: 500, Err: adapter.ErrInternalServerError}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, cause)
	m.queue.EXPECT().RecordFailure(gomock.Any(), "q1", 3, gomock.Any(), cause.Error(), true).Return(nil)

	report, err := m.svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncNetwork)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 3, report.Failed[0].AttemptCount)
}

func TestClientSyncService_Sync_PermanentErrorDoesNotAbortBatch(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	first := queueEntry("q1", "l1", 1, m.now)
	second := queueEntry("q2", "l2", 1, m.now)
	cause := &adapter.StatusError{Code: 400, Err: adapter.ErrBadRequest}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{first, second}, nil)
	m.remote.EXPECT().Push(gomock.Any(), pushRequest(first, false)).Return(models.PushResponse{}, cause)
	m.queue.EXPECT().RecordFailure(gomock.Any(), "q1", 1, gomock.Any(), gomock.Any(), false).Return(nil)
	m.remote.EXPECT().Push(gomock.Any(), pushRequest(second, false)).
		Return(models.PushResponse{Result: models.PushApplied, Revision: 1}, nil)
	m.queue.EXPECT().Acknowledge(gomock.Any(), second, int64(1)).Return(nil)
	m.expectEmptyPull("")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pushed)
}

func TestClientSyncService_Sync_PushPagesUntilNothingNew(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{PushBatchSize: 2})
	e1 := queueEntry("q1", "l1", 1, m.now)
	e2 := queueEntry("q2", "l2", 1, m.now)
	e3 := queueEntry("q3", "l3", 1, m.now)

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	gomock.InOrder(
		m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 2).Return([]models.SyncQueueEntry{e1, e2}, nil),
		m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 2).Return([]models.SyncQueueEntry{e3}, nil),
	)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).
		Return(models.PushResponse{Result: models.PushApplied, Revision: 1}, nil).Times(3)
	m.queue.EXPECT().Acknowledge(gomock.Any(), gomock.Any(), int64(1)).Return(nil).Times(3)
	m.expectEmptyPull("")
	m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).Return(nil)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Pushed)
}

// ── Sync: pull ───────────────────────────────────────────────────────────────

func TestClientSyncService_Sync_PullAppliesAllPagesOnce(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{PullPageSize: 1})
	c1 := models.RemoteRecord{EntityTable: "lessons", EntityID: "a", Operation: models.OperationCreate, Revision: 1}
	c2 := models.RemoteRecord{EntityTable: "lessons", EntityID: "b", Operation: models.OperationCreate, Revision: 2}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return(nil, nil)
	m.state.EXPECT().GetCursor(gomock.Any()).Return(models.SyncCursor{}, nil)
	gomock.InOrder(
		m.remote.EXPECT().Pull(gomock.Any(), "", 1).
			Return(models.ChangesResponse{Changes: []models.RemoteRecord{c1}, Watermark: "1", HasMore: true}, nil),
		m.remote.EXPECT().Pull(gomock.Any(), "1", 1).
			Return(models.ChangesResponse{Changes: []models.RemoteRecord{c2}, Watermark: "2"}, nil),
		m.queue.EXPECT().ApplyRemoteChanges(gomock.Any(), []models.RemoteRecord{c1, c2}).Return(2, nil),
		m.state.EXPECT().SaveCursor(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.SyncCursor) error {
				assert.Equal(t, "2", c.RemoteWatermark)
				return nil
			}),
	)

	report, err := m.svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Pulled)
}

func TestClientSyncService_Sync_PullFailureKeepsCursor(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return(nil, nil)
	m.state.EXPECT().GetCursor(gomock.Any()).Return(models.SyncCursor{RemoteWatermark: "4"}, nil)
	m.remote.EXPECT().Pull(gomock.Any(), "4", 100).
		Return(models.ChangesResponse{}, &adapter.StatusError{Code: 502, Err: adapter.ErrBadGateway})
	// SaveCursor не должен вызываться

	_, err := m.svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncNetwork)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

func TestClientSyncService_Sync_StoreFailureIsReturned(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	ioErr := &store.QueryError{Kind: store.ErrIO, Op: "due entries"}

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return(nil, ioErr)

	_, err := m.svc.Sync(context.Background())
	assert.ErrorIs(t, err, store.ErrIO)
}

// ── Sync: single flight ──────────────────────────────────────────────────────

func TestClientSyncService_Sync_ConcurrentCallsShareOnePass(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entered := make(chan struct{})
	release := make(chan struct{})

	m.monitor.EXPECT().Probe(gomock.Any()).DoAndReturn(func(context.Context) bool {
		close(entered)
		<-release
		return false
	}).Times(1)

	const callers = 5
	var wg sync.WaitGroup
	reports := make([]models.SyncReport, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[0], _ = m.svc.Sync(context.Background())
	}()
	<-entered

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reports[i], _ = m.svc.Sync(context.Background())
		}(i)
	}
	// даём остальным вызовам присоединиться к проходу
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range reports {
		assert.False(t, r.Synced)
		assert.Equal(t, m.now, r.Timestamp)
	}
}

func TestClientSyncService_Sync_JoinedCallerLeavesAtItsDeadline(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entered := make(chan struct{})
	release := make(chan struct{})

	m.monitor.EXPECT().Probe(gomock.Any()).DoAndReturn(func(context.Context) bool {
		close(entered)
		<-release
		return false
	}).Times(1)

	leader := make(chan error, 1)
	go func() {
		_, err := m.svc.Sync(context.Background())
		leader <- err
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	begin := time.Now()
	report, err := m.svc.Sync(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotNil(t, report.Conflicts)
	assert.Less(t, time.Since(begin), 2*time.Second)

	close(release)
	require.NoError(t, <-leader)
}

func TestClientSyncService_Sync_LeaderCancelKeepsSharedPass(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entered := make(chan struct{})
	release := make(chan struct{})
	passErr := make(chan error, 1)

	m.monitor.EXPECT().Probe(gomock.Any()).DoAndReturn(func(ctx context.Context) bool {
		close(entered)
		<-release
		passErr <- ctx.Err()
		return false
	}).Times(1)

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leader := make(chan error, 1)
	go func() {
		_, err := m.svc.Sync(leaderCtx)
		leader <- err
	}()
	<-entered

	joined := make(chan error, 1)
	go func() {
		_, err := m.svc.Sync(context.Background())
		joined <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leader, context.Canceled)

	close(release)
	require.NoError(t, <-joined)
	assert.NoError(t, <-passErr, "проход не должен отменяться, пока его ждёт другой вызов")
}

// waitPassDone ждёт, пока фоновый проход синхронизации завершится.
func waitPassDone(t *testing.T, svc *clientSyncService) {
	t.Helper()
	assert.Eventually(t, func() bool {
		svc.group.mu.Lock()
		defer svc.group.mu.Unlock()
		return len(svc.group.flights) == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClientSyncService_Sync_CancelDuringPushLeavesQueueUntouched(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	entry := queueEntry("q1", "l1", 1, m.now.Add(-time.Minute))
	ctx, cancel := context.WithCancel(context.Background())

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).Return([]models.SyncQueueEntry{entry}, nil)
	m.remote.EXPECT().Push(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.PushRequest) (models.PushResponse, error) {
			cancel()
			// единственный вызывающий ушёл, проход отменяется
			<-ctx.Done()
			return models.PushResponse{}, fmt.Errorf("%w: push request: %v", adapter.ErrTransport, ctx.Err())
		})
	// RecordFailure, MarkOffline, GetCursor, Pull и SaveCursor не ожидаются

	_, err := m.svc.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	waitPassDone(t, m.svc)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

func TestClientSyncService_Sync_CancelBetweenPushAndPullKeepsCursor(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	ctx, cancel := context.WithCancel(context.Background())

	m.monitor.EXPECT().Probe(gomock.Any()).Return(true)
	m.queue.EXPECT().DueEntries(gomock.Any(), m.now, 50).DoAndReturn(
		func(ctx context.Context, _ time.Time, _ int) ([]models.SyncQueueEntry, error) {
			cancel()
			<-ctx.Done()
			return nil, nil
		})
	// GetCursor, Pull и SaveCursor не ожидаются

	_, err := m.svc.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	waitPassDone(t, m.svc)
	assert.Equal(t, models.SyncStateIdle, m.svc.State())
}

// ── Status and auxiliary operations ──────────────────────────────────────────

func TestClientSyncService_Status(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	last := m.now.Add(-time.Hour)

	m.queue.EXPECT().Counts(gomock.Any()).Return(4, 1, nil)
	m.state.EXPECT().GetCursor(gomock.Any()).Return(models.SyncCursor{LastSuccessfulSyncAt: &last}, nil)
	m.monitor.EXPECT().IsOnline(gomock.Any()).Return(true)

	status, err := m.svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatus{
		Online:         true,
		LastSync:       &last,
		PendingChanges: 4,
		FailedChanges:  1,
		State:          models.SyncStateIdle,
	}, status)
}

func TestClientSyncService_Status_StoreError(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	m.queue.EXPECT().Counts(gomock.Any()).Return(0, 0, &store.QueryError{Kind: store.ErrIO, Op: "queue counts"})

	_, err := m.svc.Status(context.Background())
	assert.ErrorIs(t, err, store.ErrIO)
}

func TestClientSyncService_Delegation(t *testing.T) {
	m := newSyncMocks(t, SyncOptions{})
	ctx := context.Background()

	m.queue.EXPECT().FailedEntries(ctx).Return([]models.SyncQueueEntry{{ID: "q1"}}, nil)
	m.queue.EXPECT().RetryFailed(ctx, "lessons", "l1").Return(nil)
	m.queue.EXPECT().DiscardFailed(ctx, "lessons", "l2").Return(store.ErrNotFound)
	m.state.EXPECT().ListConflicts(ctx, 10).Return(nil, nil)

	failed, err := m.svc.FailedEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
	assert.NoError(t, m.svc.RetryFailed(ctx, "lessons", "l1"))
	assert.ErrorIs(t, m.svc.DiscardFailed(ctx, "lessons", "l2"), store.ErrNotFound)
	_, err = m.svc.Conflicts(ctx, 10)
	assert.NoError(t, err)
}

// ── backoff ──────────────────────────────────────────────────────────────────

func TestClientSyncService_backoff(t *testing.T) {
	svc := &clientSyncService{opts: SyncOptions{BackoffBase: time.Second, BackoffCap: 10 * time.Second}.withDefaults()}

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second},
		{64, 10 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.backoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestSyncOptions_withDefaults(t *testing.T) {
	opts := SyncOptions{}.withDefaults()
	assert.Equal(t, 5, opts.MaxAttempts)
	assert.Equal(t, 2*time.Second, opts.BackoffBase)
	assert.Equal(t, 5*time.Minute, opts.BackoffCap)
	assert.Equal(t, 100, opts.PullPageSize)
	assert.Equal(t, 50, opts.PushBatchSize)
	assert.Equal(t, 10*time.Minute, opts.PassTimeout)
}
