package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-academy-offline/internal/adapter"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/metrics"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

const syncFlightKey = "sync"

// SyncOptions tunes the sync engine. Zero values fall back to defaults.
type SyncOptions struct {
	// MaxAttempts is the number of failed pushes after which an entry goes
	// terminal.
	MaxAttempts int
	// BackoffBase is the delay after the first failed push. It doubles on
	// every further failure up to BackoffCap.
	BackoffBase   time.Duration
	BackoffCap    time.Duration
	PullPageSize  int
	PushBatchSize int
	// PassTimeout bounds one shared sync pass.
	PassTimeout time.Duration
}

func (o SyncOptions) withDefaults() SyncOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 5
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = 2 * time.Second
	}
	if o.BackoffCap < o.BackoffBase {
		o.BackoffCap = 5 * time.Minute
	}
	if o.PullPageSize <= 0 {
		o.PullPageSize = 100
	}
	if o.PushBatchSize <= 0 {
		o.PushBatchSize = 50
	}
	if o.PassTimeout <= 0 {
		o.PassTimeout = 10 * time.Minute
	}
	return o
}

type clientSyncService struct {
	queue   store.SyncRepository
	state   store.SyncStateRepository
	remote  adapter.RemoteAdapter
	monitor ConnectivityMonitor
	opts    SyncOptions
	logger  *logger.Logger
	ids     *utils.UUIDGenerator
	now     func() time.Time

	group flightGroup

	mu      sync.RWMutex
	current models.SyncState
}

// NewClientSyncService builds the sync engine.
func NewClientSyncService(
	queue store.SyncRepository,
	state store.SyncStateRepository,
	remote adapter.RemoteAdapter,
	monitor ConnectivityMonitor,
	opts SyncOptions,
	logger *logger.Logger,
) ClientSyncService {
	opts = opts.withDefaults()
	return &clientSyncService{
		queue:   queue,
		state:   state,
		remote:  remote,
		monitor: monitor,
		opts:    opts,
		group:   flightGroup{timeout: opts.PassTimeout},
		logger:  logger,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		current: models.SyncStateIdle,
	}
}

func (s *clientSyncService) Sync(ctx context.Context) (models.SyncReport, error) {
	v, err, shared := s.group.Do(ctx, syncFlightKey, func(ctx context.Context) (any, error) {
		return s.run(ctx)
	})
	if shared {
		logger.FromContext(ctx).Debug().Str("func", "clientSyncService.Sync").Msg("joined in-flight sync pass")
	}

	report, ok := v.(models.SyncReport)
	if !ok {
		report = models.SyncReport{Timestamp: s.now().UTC(), Conflicts: []models.ConflictRecord{}}
	}
	return report, err
}

func (s *clientSyncService) run(ctx context.Context) (models.SyncReport, error) {
	start := s.now()
	defer func() {
		metrics.SyncPassDuration.Observe(time.Since(start).Seconds())
	}()

	report := models.SyncReport{
		Timestamp: start.UTC(),
		Conflicts: []models.ConflictRecord{},
	}

	s.setState(models.SyncStateProbing)
	if !s.monitor.Probe(ctx) {
		s.setState(models.SyncStateIdle)
		metrics.SyncPasses.WithLabelValues("offline").Inc()
		s.logger.Info().Str("func", "clientSyncService.run").Msg("remote unreachable, sync skipped")
		return report, nil
	}

	s.setState(models.SyncStatePushingLocal)
	if err := s.push(ctx, &report); err != nil {
		return s.fail(report, err)
	}

	if err := ctx.Err(); err != nil {
		return s.fail(report, fmt.Errorf("sync interrupted before pull: %w", err))
	}

	s.setState(models.SyncStatePullingRemote)
	cursor, err := s.state.GetCursor(ctx)
	if err != nil {
		return s.fail(report, fmt.Errorf("read sync cursor: %w", err))
	}
	watermark, pulled, err := s.pull(ctx, cursor.RemoteWatermark)
	if err != nil {
		return s.fail(report, err)
	}
	report.Pulled = pulled

	s.setState(models.SyncStateReconciling)
	finished := s.now().UTC()
	if err = s.state.SaveCursor(ctx, models.SyncCursor{LastSuccessfulSyncAt: &finished, RemoteWatermark: watermark}); err != nil {
		return s.fail(report, fmt.Errorf("save sync cursor: %w", err))
	}

	report.Synced = true
	report.Timestamp = finished
	s.setState(models.SyncStateIdle)
	metrics.SyncPasses.WithLabelValues("synced").Inc()

	s.logger.Info().
		Str("func", "clientSyncService.run").
		Int("pushed", report.Pushed).
		Int("pulled", report.Pulled).
		Int("conflicts", len(report.Conflicts)).
		Int("failed", len(report.Failed)).
		Msg("sync pass finished")

	return report, nil
}

// fail records a failed pass. Failed entries keep their next_attempt_at,
// so the engine is idle again once the failure is logged.
func (s *clientSyncService) fail(report models.SyncReport, err error) (models.SyncReport, error) {
	s.setState(models.SyncStateBackoff)
	metrics.SyncPasses.WithLabelValues("error").Inc()
	s.logger.Err(err).Str("func", "clientSyncService.run").Msg("sync pass failed")
	s.setState(models.SyncStateIdle)
	return report, err
}

// push sends due entries page by page until a page brings nothing new.
// An entry that stays due after it was handled (zero backoff) is not
// pushed twice in one pass.
func (s *clientSyncService) push(ctx context.Context, report *models.SyncReport) error {
	seen := make(map[string]int64)
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("push interrupted: %w", err)
		}

		entries, err := s.queue.DueEntries(ctx, s.now(), s.opts.PushBatchSize)
		if err != nil {
			return fmt.Errorf("read due entries: %w", err)
		}

		fresh := 0
		for _, entry := range entries {
			if seq, ok := seen[entry.ID]; ok && seq == entry.Seq {
				continue
			}
			seen[entry.ID] = entry.Seq
			fresh++

			if err = s.pushEntry(ctx, entry, report); err != nil {
				return err
			}
		}

		if fresh == 0 || len(entries) < s.opts.PushBatchSize {
			return nil
		}
	}
}

func (s *clientSyncService) pushEntry(ctx context.Context, entry models.SyncQueueEntry, report *models.SyncReport) error {
	resp, err := s.remote.Push(ctx, pushRequest(entry, false))
	if err != nil {
		return s.pushFailed(ctx, entry, err, report)
	}

	switch resp.Result {
	case models.PushApplied:
		return s.acknowledge(ctx, entry, resp.Revision, report)
	case models.PushConflict:
		return s.resolveConflict(ctx, entry, resp.Remote, report)
	case models.PushRejected:
		return s.reject(ctx, entry, resp.Reason, report)
	}

	return s.pushFailed(ctx, entry, fmt.Errorf("%w: push result %q", adapter.ErrUnexpectedResponse, resp.Result), report)
}

func (s *clientSyncService) acknowledge(ctx context.Context, entry models.SyncQueueEntry, revision int64, report *models.SyncReport) error {
	if err := s.queue.Acknowledge(ctx, entry, revision); err != nil {
		return fmt.Errorf("acknowledge %s/%s: %w", entry.EntityTable, entry.EntityID, err)
	}
	report.Pushed++
	metrics.PushedEntries.WithLabelValues("applied").Inc()
	return nil
}

// resolveConflict applies last-writer-wins by updated_at. The remote wins
// ties.
func (s *clientSyncService) resolveConflict(ctx context.Context, entry models.SyncQueueEntry, remote *models.RemoteRecord, report *models.SyncReport) error {
	if remote == nil {
		return s.pushFailed(ctx, entry, fmt.Errorf("%w: conflict without remote record", adapter.ErrUnexpectedResponse), report)
	}
	metrics.PushedEntries.WithLabelValues("conflict").Inc()

	conflict := models.ConflictRecord{
		ID:              s.ids.Generate(),
		EntityTable:     entry.EntityTable,
		EntityID:        entry.EntityID,
		LocalPayload:    entry.Payload,
		RemotePayload:   remote.Payload,
		LocalUpdatedAt:  entry.UpdatedAt.UTC(),
		RemoteUpdatedAt: remote.UpdatedAt.UTC(),
		RemoteRevision:  remote.Revision,
		DetectedAt:      s.now().UTC(),
	}

	log := s.logger.Warn().
		Str("func", "clientSyncService.resolveConflict").
		Str("table", entry.EntityTable).
		Str("entity_id", entry.EntityID).
		Int64("remote_revision", remote.Revision)

	if !entry.UpdatedAt.After(remote.UpdatedAt) {
		conflict.Resolution = models.ResolutionRemoteWins
		if err := s.queue.ResolveRemoteWins(ctx, entry, *remote, conflict); err != nil {
			return fmt.Errorf("apply remote version of %s/%s: %w", entry.EntityTable, entry.EntityID, err)
		}
		report.Conflicts = append(report.Conflicts, conflict)
		metrics.Conflicts.WithLabelValues(string(conflict.Resolution)).Inc()
		log.Msg("conflict resolved with remote version")
		return nil
	}

	conflict.Resolution = models.ResolutionLocalWins
	rebased, err := s.queue.ResolveLocalWins(ctx, entry, *remote, conflict)
	if err != nil {
		return fmt.Errorf("rebase %s/%s: %w", entry.EntityTable, entry.EntityID, err)
	}
	report.Conflicts = append(report.Conflicts, conflict)
	metrics.Conflicts.WithLabelValues(string(conflict.Resolution)).Inc()
	log.Msg("conflict resolved with local version, forcing push")

	resp, err := s.remote.Push(ctx, pushRequest(rebased, true))
	if err != nil {
		return s.pushFailed(ctx, rebased, err, report)
	}
	switch resp.Result {
	case models.PushApplied:
		return s.acknowledge(ctx, rebased, resp.Revision, report)
	case models.PushRejected:
		return s.reject(ctx, rebased, resp.Reason, report)
	}

	// the remote moved again under a forced push; try again next pass
	return s.recordFailure(ctx, rebased, &SyncError{Kind: ErrSyncConflict, Entity: entityKey(rebased)}, report)
}

func (s *clientSyncService) reject(ctx context.Context, entry models.SyncQueueEntry, reason string, report *models.SyncReport) error {
	if reason == "" {
		reason = "rejected by remote"
	}
	attempts := entry.AttemptCount + 1
	if err := s.queue.RecordFailure(ctx, entry.ID, attempts, s.now(), reason, true); err != nil {
		return fmt.Errorf("record rejection of %s/%s: %w", entry.EntityTable, entry.EntityID, err)
	}

	entry.AttemptCount = attempts
	entry.Status = models.QueueStatusFailed
	entry.LastError = reason
	report.Failed = append(report.Failed, entry)
	metrics.PushedEntries.WithLabelValues("rejected").Inc()

	s.logger.Warn().
		Str("func", "clientSyncService.reject").
		Str("table", entry.EntityTable).
		Str("entity_id", entry.EntityID).
		Str("reason", reason).
		Msg("change rejected by remote")
	return nil
}

// pushFailed handles a push that produced no verdict. Transient failures
// abort the rest of the batch; other failures only back off the entry.
func (s *clientSyncService) pushFailed(ctx context.Context, entry models.SyncQueueEntry, cause error, report *models.SyncReport) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("push interrupted: %w", ctxErr)
	}

	if err := s.recordFailure(ctx, entry, cause, report); err != nil {
		return err
	}

	if !adapter.IsTransient(cause) {
		return nil
	}
	if errors.Is(cause, adapter.ErrTransport) {
		s.monitor.MarkOffline()
	}
	return &SyncError{Kind: ErrSyncNetwork, Entity: entityKey(entry), Err: cause}
}

func (s *clientSyncService) recordFailure(ctx context.Context, entry models.SyncQueueEntry, cause error, report *models.SyncReport) error {
	attempts := entry.AttemptCount + 1
	terminal := attempts >= s.opts.MaxAttempts
	next := s.now().Add(s.backoff(attempts))

	if err := s.queue.RecordFailure(ctx, entry.ID, attempts, next, cause.Error(), terminal); err != nil {
		return fmt.Errorf("record failure of %s/%s: %w", entry.EntityTable, entry.EntityID, err)
	}

	log := s.logger.Err(cause).
		Str("func", "clientSyncService.recordFailure").
		Str("table", entry.EntityTable).
		Str("entity_id", entry.EntityID).
		Int("attempts", attempts)

	if terminal {
		entry.AttemptCount = attempts
		entry.Status = models.QueueStatusFailed
		entry.LastError = cause.Error()
		report.Failed = append(report.Failed, entry)
		metrics.PushedEntries.WithLabelValues("terminal").Inc()
		log.Msg("change failed permanently")
		return nil
	}

	metrics.PushedEntries.WithLabelValues("retry").Inc()
	log.Time("next_attempt_at", next).Msg("change push failed, will retry")
	return nil
}

// backoff returns min(base * 2^(attempts-1), cap).
func (s *clientSyncService) backoff(attempts int) time.Duration {
	b := retry.WithCappedDuration(s.opts.BackoffCap, retry.NewExponential(s.opts.BackoffBase))

	var delay time.Duration
	for range max(attempts, 1) {
		delay, _ = b.Next()
	}
	return delay
}

// pull collects every page newer than since and applies them in one
// transaction.
func (s *clientSyncService) pull(ctx context.Context, since string) (string, int, error) {
	var changes []models.RemoteRecord
	watermark := since
	for {
		page, err := s.remote.Pull(ctx, watermark, s.opts.PullPageSize)
		if err != nil {
			return "", 0, s.remoteFailed(ctx, err)
		}
		changes = append(changes, page.Changes...)

		previous := watermark
		if page.Watermark != "" {
			watermark = page.Watermark
		}
		if !page.HasMore || len(page.Changes) == 0 || watermark == previous {
			break
		}
	}

	if len(changes) == 0 {
		return watermark, 0, nil
	}

	applied, err := s.queue.ApplyRemoteChanges(ctx, changes)
	if err != nil {
		return "", 0, fmt.Errorf("apply pulled changes: %w", err)
	}
	metrics.PulledChanges.Add(float64(applied))
	return watermark, applied, nil
}

func (s *clientSyncService) remoteFailed(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("pull interrupted: %w", ctxErr)
	}
	if errors.Is(err, adapter.ErrTransport) {
		s.monitor.MarkOffline()
	}
	return &SyncError{Kind: ErrSyncNetwork, Err: err}
}

func (s *clientSyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	pending, failed, err := s.queue.Counts(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count queue entries: %w", err)
	}

	cursor, err := s.state.GetCursor(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("read sync cursor: %w", err)
	}

	return models.SyncStatus{
		Online:         s.monitor.IsOnline(ctx),
		LastSync:       cursor.LastSuccessfulSyncAt,
		PendingChanges: pending,
		FailedChanges:  failed,
		State:          s.State(),
	}, nil
}

func (s *clientSyncService) FailedEntries(ctx context.Context) ([]models.SyncQueueEntry, error) {
	return s.queue.FailedEntries(ctx)
}

func (s *clientSyncService) RetryFailed(ctx context.Context, table, entityID string) error {
	return s.queue.RetryFailed(ctx, table, entityID)
}

func (s *clientSyncService) DiscardFailed(ctx context.Context, table, entityID string) error {
	return s.queue.DiscardFailed(ctx, table, entityID)
}

func (s *clientSyncService) Conflicts(ctx context.Context, limit int) ([]models.ConflictRecord, error) {
	return s.state.ListConflicts(ctx, limit)
}

// State returns the current engine state.
func (s *clientSyncService) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *clientSyncService) setState(state models.SyncState) {
	s.mu.Lock()
	s.current = state
	s.mu.Unlock()
}

func pushRequest(entry models.SyncQueueEntry, force bool) models.PushRequest {
	return models.PushRequest{
		EntityTable:  entry.EntityTable,
		EntityID:     entry.EntityID,
		Operation:    entry.Operation,
		Payload:      entry.Payload,
		BaseRevision: entry.BaseRevision,
		UpdatedAt:    entry.UpdatedAt.UTC(),
		Force:        force,
	}
}

func entityKey(entry models.SyncQueueEntry) string {
	return entry.EntityTable + "/" + entry.EntityID
}
