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

// DefaultContentLimit is the content cache size limit used when none is
// configured: 5 GiB.
const DefaultContentLimit int64 = 5 << 30

// ContentOptions tunes the content cache. Zero values fall back to
// defaults.
type ContentOptions struct {
	LimitBytes int64
	// Checksum is the digest algorithm for assets fetched without an
	// expected checksum.
	Checksum string
	// Retries bounds in-call retries of transient download failures.
	Retries   uint64
	RetryBase time.Duration
	RetryCap  time.Duration
	// DownloadTimeout bounds one shared download, retries included.
	DownloadTimeout time.Duration
	// ProgressInterval is the minimum time between two progress writes
	// of one download.
	ProgressInterval time.Duration
}

func (o ContentOptions) withDefaults() ContentOptions {
	if o.LimitBytes <= 0 {
		o.LimitBytes = DefaultContentLimit
	}
	if _, err := utils.NewHasher(o.Checksum); err != nil {
		o.Checksum = utils.ChecksumSHA256
	}
	if o.RetryBase <= 0 {
		o.RetryBase = 200 * time.Millisecond
	}
	if o.RetryCap < o.RetryBase {
		o.RetryCap = 5 * time.Second
	}
	if o.DownloadTimeout <= 0 {
		o.DownloadTimeout = time.Hour
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = 250 * time.Millisecond
	}
	return o
}

type clientContentService struct {
	assets  store.ContentAssetRepository
	files   store.ContentFileStorage
	remote  adapter.RemoteAdapter
	monitor ConnectivityMonitor
	opts    ContentOptions
	logger  *logger.Logger

	group flightGroup

	// verified holds the checksum each asset was verified against since
	// the process started.
	mu       sync.Mutex
	verified map[string]string
}

// NewClientContentService builds the content cache.
func NewClientContentService(
	assets store.ContentAssetRepository,
	files store.ContentFileStorage,
	remote adapter.RemoteAdapter,
	monitor ConnectivityMonitor,
	opts ContentOptions,
	logger *logger.Logger,
) ClientContentService {
	opts = opts.withDefaults()
	return &clientContentService{
		assets:   assets,
		files:    files,
		remote:   remote,
		monitor:  monitor,
		opts:     opts,
		logger:   logger,
		group:    flightGroup{timeout: opts.DownloadTimeout},
		verified: make(map[string]string),
	}
}

func (s *clientContentService) Fetch(ctx context.Context, req models.FetchRequest) (models.ContentAsset, error) {
	if req.ContentID == "" || req.SourceURL == "" {
		return models.ContentAsset{}, fmt.Errorf("%w: content_id and source_url are required", ErrInvalidPayload)
	}
	if !req.Type.Valid() {
		return models.ContentAsset{}, fmt.Errorf("%w: unknown content type %q", ErrInvalidPayload, req.Type)
	}
	if req.ExpectedChecksum != "" {
		algo, digest, err := utils.ParseChecksum(req.ExpectedChecksum)
		if err != nil {
			return models.ContentAsset{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		req.ExpectedChecksum = algo + ":" + digest
	}

	v, err, shared := s.group.Do(ctx, req.ContentID, func(ctx context.Context) (any, error) {
		return s.fetch(ctx, req)
	})
	if shared {
		logger.FromContext(ctx).Debug().
			Str("func", "clientContentService.Fetch").
			Str("content_id", req.ContentID).
			Msg("joined in-flight fetch")
	}
	var fetchErr *FetchError
	if err != nil && !errors.As(err, &fetchErr) {
		// this caller gave up; a shared download may still be running
		return models.ContentAsset{}, &FetchError{Kind: ErrFetchNetwork, ContentID: req.ContentID, Err: err}
	}

	asset, _ := v.(models.ContentAsset)
	return asset, err
}

func (s *clientContentService) fetch(ctx context.Context, req models.FetchRequest) (models.ContentAsset, error) {
	asset, err := s.assets.Get(ctx, req.ContentID)
	switch {
	case err == nil && asset.Status == models.AssetComplete:
		if s.usable(ctx, asset, req.ExpectedChecksum) {
			metrics.CacheHits.Inc()
			return asset, nil
		}
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return models.ContentAsset{}, s.ioError(req.ContentID, err)
	}
	metrics.CacheMisses.Inc()

	if _, err = s.assets.Upsert(ctx, req); err != nil {
		return models.ContentAsset{}, s.ioError(req.ContentID, err)
	}

	if !s.monitor.IsOnline(ctx) {
		return models.ContentAsset{}, &FetchError{Kind: ErrFetchNetwork, ContentID: req.ContentID, Err: ErrContentOffline}
	}

	if err = s.assets.SetStatus(ctx, req.ContentID, models.AssetDownloading, ""); err != nil {
		return models.ContentAsset{}, s.ioError(req.ContentID, err)
	}

	path, checksum, size, err := s.download(ctx, req)
	if err != nil {
		return models.ContentAsset{}, s.downloadFailed(ctx, req, err)
	}

	if err = s.assets.MarkComplete(ctx, req.ContentID, path, checksum, size); err != nil {
		return models.ContentAsset{}, s.ioError(req.ContentID, err)
	}
	s.markVerified(req.ContentID, checksum)

	metrics.Downloads.WithLabelValues("complete").Inc()
	metrics.DownloadedBytes.Add(float64(size))
	s.logger.Info().
		Str("func", "clientContentService.fetch").
		Str("content_id", req.ContentID).
		Int64("size", size).
		Str("checksum", checksum).
		Msg("content cached")

	asset, err = s.assets.Get(ctx, req.ContentID)
	if err != nil {
		return models.ContentAsset{}, s.ioError(req.ContentID, err)
	}
	return asset, nil
}

// usable reports whether a complete asset can be served. The first read
// of an asset in this process re-hashes its file; a missing or corrupt
// file sends the asset back to pending.
func (s *clientContentService) usable(ctx context.Context, asset models.ContentAsset, expected string) bool {
	want := asset.Checksum
	if expected != "" {
		want = expected
	}
	if s.isVerified(asset.ContentID, want) {
		return true
	}

	log := s.logger.Warn().
		Str("func", "clientContentService.usable").
		Str("content_id", asset.ContentID).
		Str("path", asset.LocalPath)

	algo, _, err := utils.ParseChecksum(want)
	if err == nil {
		var got string
		got, _, err = s.files.Verify(asset.LocalPath, algo)
		if err == nil && got == want {
			s.markVerified(asset.ContentID, want)
			return true
		}
		if err == nil {
			err = fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, got, want)
		}
	}

	log.AnErr("reason", err).Msg("cached content failed verification, fetching again")
	s.forget(asset.ContentID)
	if rmErr := s.files.Remove(asset.LocalPath); rmErr != nil {
		s.logger.Err(rmErr).Str("func", "clientContentService.usable").Str("path", asset.LocalPath).Msg("failed to remove cached file")
	}
	if stErr := s.assets.SetStatus(ctx, asset.ContentID, models.AssetPending, err.Error()); stErr != nil {
		s.logger.Err(stErr).Str("func", "clientContentService.usable").Str("content_id", asset.ContentID).Msg("failed to reset asset status")
	}
	return false
}

// download streams the asset into the cache, retrying transient failures
// with exponential backoff.
func (s *clientContentService) download(ctx context.Context, req models.FetchRequest) (string, string, int64, error) {
	algo := s.opts.Checksum
	if req.ExpectedChecksum != "" {
		algo, _, _ = utils.ParseChecksum(req.ExpectedChecksum)
	}
	key := store.ObjectKey(req.ContentID)

	backoff := retry.NewExponential(s.opts.RetryBase)
	backoff = retry.WithCappedDuration(s.opts.RetryCap, backoff)
	backoff = retry.WithMaxRetries(s.opts.Retries, backoff)

	var staged *store.StagedFile
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		st, err := s.transfer(ctx, key, req, algo)
		if err != nil {
			if adapter.IsTransient(err) {
				s.logger.Err(err).
					Str("func", "clientContentService.download").
					Str("content_id", req.ContentID).
					Msg("transient download failure, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		staged = st
		return nil
	})
	if err != nil {
		return "", "", 0, err
	}

	checksum := utils.FormatChecksum(algo, staged.Sum)
	if req.ExpectedChecksum != "" && checksum != req.ExpectedChecksum {
		s.files.Discard(staged)
		return "", "", 0, fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, checksum, req.ExpectedChecksum)
	}

	path, err := s.files.Commit(staged)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %w", ErrFetchIO, err)
	}
	return path, checksum, staged.Size, nil
}

// transfer runs one download attempt and leaves a staged file on success.
func (s *clientContentService) transfer(ctx context.Context, key string, req models.FetchRequest, algo string) (*store.StagedFile, error) {
	dl, err := s.remote.Download(ctx, req.SourceURL)
	if err != nil {
		return nil, err
	}
	defer dl.Body.Close()

	declared := dl.ContentLength
	if req.ExpectedSize > 0 {
		declared = req.ExpectedSize
	}
	if declared > 0 {
		if err = s.checkLimit(ctx, declared); err != nil {
			return nil, err
		}
	}

	h, err := utils.NewHasher(algo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchIO, err)
	}

	total := max(declared, 0)
	s.setProgress(ctx, req.ContentID, 0, total)
	body := &progressReader{
		r:        dl.Body,
		interval: s.opts.ProgressInterval,
		last:     time.Now(),
		report: func(read int64) {
			s.setProgress(ctx, req.ContentID, read, total)
		},
	}

	staged, err := s.files.Stage(ctx, key, body, h)
	if err != nil {
		if adapter.IsTransient(err) || ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchIO, err)
	}

	if req.ExpectedSize > 0 && staged.Size != req.ExpectedSize {
		s.files.Discard(staged)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrChecksumMismatch, staged.Size, req.ExpectedSize)
	}
	if declared <= 0 {
		if err = s.checkLimit(ctx, staged.Size); err != nil {
			s.files.Discard(staged)
			return nil, err
		}
	}

	return staged, nil
}

// setProgress records download progress. A failed write only loses
// progress reporting, so it is logged and ignored.
func (s *clientContentService) setProgress(ctx context.Context, contentID string, read, total int64) {
	if err := s.assets.SetProgress(ctx, contentID, read, total); err != nil {
		s.logger.Err(err).
			Str("func", "clientContentService.setProgress").
			Str("content_id", contentID).
			Msg("failed to record download progress")
	}
}

func (s *clientContentService) checkLimit(ctx context.Context, size int64) error {
	used, err := s.assets.TotalSize(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchIO, err)
	}
	if used+size > s.opts.LimitBytes {
		return fmt.Errorf("%w: %w: %d bytes used, %d requested, limit %d",
			ErrFetchIO, ErrStorageLimit, used, size, s.opts.LimitBytes)
	}
	return nil
}

// downloadFailed records the failure on the asset and converts err to a
// *FetchError. An interrupted download leaves the asset pending; any other
// failure marks it failed until the next Fetch.
func (s *clientContentService) downloadFailed(ctx context.Context, req models.FetchRequest, err error) error {
	fetchErr := &FetchError{ContentID: req.ContentID, Err: err}
	status := models.AssetFailed
	result := "io"

	switch {
	case errors.Is(err, ErrChecksumMismatch):
		fetchErr.Kind = ErrChecksumMismatch
		result = "checksum_mismatch"
	case ctx.Err() != nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fetchErr.Kind = ErrFetchNetwork
		status = models.AssetPending
		result = "network"
	case errors.Is(err, ErrFetchIO):
		fetchErr.Kind = ErrFetchIO
	default:
		fetchErr.Kind = ErrFetchNetwork
		result = "network"
		if errors.Is(err, adapter.ErrTransport) {
			s.monitor.MarkOffline()
		}
	}

	metrics.Downloads.WithLabelValues(result).Inc()
	s.logger.Err(err).
		Str("func", "clientContentService.downloadFailed").
		Str("content_id", req.ContentID).
		Str("status", string(status)).
		Msg("content download failed")

	// the caller may be gone; the status must still leave downloading
	if stErr := s.assets.SetStatus(context.WithoutCancel(ctx), req.ContentID, status, err.Error()); stErr != nil {
		s.logger.Err(stErr).Str("func", "clientContentService.downloadFailed").Str("content_id", req.ContentID).Msg("failed to record download failure")
	}
	return fetchErr
}

func (s *clientContentService) ioError(contentID string, err error) error {
	return &FetchError{Kind: ErrFetchIO, ContentID: contentID, Err: err}
}

func (s *clientContentService) Evict(ctx context.Context, contentID string) error {
	asset, err := s.assets.Get(ctx, contentID)
	if err != nil {
		return err
	}

	path := asset.LocalPath
	if path == "" {
		path = s.files.ObjectPath(store.ObjectKey(contentID))
	}
	if err = s.files.Remove(path); err != nil {
		return s.ioError(contentID, err)
	}
	s.forget(contentID)

	return s.assets.Delete(ctx, contentID)
}

// Info reports an asset, its download progress and whether it can be read
// offline. A complete asset whose file fails verification is reported, and
// stored, as pending.
func (s *clientContentService) Info(ctx context.Context, contentID string) (models.ContentInfo, error) {
	asset, err := s.assets.Get(ctx, contentID)
	if err != nil {
		return models.ContentInfo{}, err
	}

	offline := asset.Status == models.AssetComplete && s.usable(ctx, asset, "")
	if asset.Status == models.AssetComplete && !offline {
		asset.Status = models.AssetPending
	}

	return models.ContentInfo{
		Asset:    asset,
		Offline:  offline,
		Progress: asset.Progress(),
	}, nil
}

func (s *clientContentService) List(ctx context.Context) ([]models.ContentAsset, error) {
	return s.assets.List(ctx)
}

func (s *clientContentService) Usage(ctx context.Context) (models.StorageUsage, error) {
	used, err := s.assets.TotalSize(ctx)
	if err != nil {
		return models.StorageUsage{}, err
	}
	assets, err := s.assets.List(ctx)
	if err != nil {
		return models.StorageUsage{}, err
	}

	return models.StorageUsage{
		Used:      used,
		Available: max(s.opts.LimitBytes-used, 0),
		Limit:     s.opts.LimitBytes,
		Assets:    len(assets),
	}, nil
}

func (s *clientContentService) Clear(ctx context.Context) error {
	if err := s.files.Clear(); err != nil {
		return &FetchError{Kind: ErrFetchIO, Err: err}
	}
	s.mu.Lock()
	clear(s.verified)
	s.mu.Unlock()

	return s.assets.DeleteAll(ctx)
}

func (s *clientContentService) Recover(ctx context.Context) error {
	removed, err := s.files.CleanupTemp()
	if err != nil {
		return &FetchError{Kind: ErrFetchIO, Err: fmt.Errorf("clean temp dir: %w", err)}
	}

	reset, err := s.assets.ResetDownloading(ctx)
	if err != nil {
		return &FetchError{Kind: ErrFetchIO, Err: fmt.Errorf("reset interrupted downloads: %w", err)}
	}

	if removed > 0 || reset > 0 {
		s.logger.Info().
			Str("func", "clientContentService.Recover").
			Int("temp_files", removed).
			Int64("assets_reset", reset).
			Msg("discarded interrupted downloads")
	}
	return nil
}

func (s *clientContentService) isVerified(contentID, checksum string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	got, ok := s.verified[contentID]
	return ok && got == checksum
}

func (s *clientContentService) markVerified(contentID, checksum string) {
	s.mu.Lock()
	s.verified[contentID] = checksum
	s.mu.Unlock()
}

func (s *clientContentService) forget(contentID string) {
	s.mu.Lock()
	delete(s.verified, contentID)
	s.mu.Unlock()
}
