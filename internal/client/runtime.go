package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-academy-offline/internal/adapter"
	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/connectivity"
	"github.com/MKhiriev/go-academy-offline/internal/handler"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/paths"
	"github.com/MKhiriev/go-academy-offline/internal/server"
	"github.com/MKhiriev/go-academy-offline/internal/service"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/internal/workers"
	"github.com/MKhiriev/go-academy-offline/models"
)

const logRole = "core"

var _ Client = (*Runtime)(nil)

// Runtime owns every long-lived component of the core.
type Runtime struct {
	Config    *config.ClientConfig
	BuildInfo models.AppBuildInfo
	Layout    paths.Layout
	Logger    *logger.Logger
	Storages  *store.ClientStorages
	Monitor   *connectivity.Monitor
	Services  *service.ClientServices
	Workers   *workers.Workers

	logCloser io.Closer
	closeOnce sync.Once
	closeErr  error
}

// NewRuntime resolves the storage layout, opens and migrates the database,
// connects the remote adapter and discards downloads interrupted by a
// previous crash. Background workers are not started; see [Runtime.Start].
func NewRuntime(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo) (*Runtime, error) {
	resolver := paths.NewResolver(cfg.App.ID, cfg.Storage)
	layout, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = layout.LogFile
	}
	log, logCloser := logger.NewClientLogger(logRole, logger.FileOptions{
		Path:       logFile,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	rt := &Runtime{Config: cfg, BuildInfo: buildInfo, Layout: layout, Logger: log, logCloser: logCloser}

	rt.Storages, err = store.NewClientStorages(ctx, layout, log)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, log)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("remote adapter: %w", err)
	}
	rt.Monitor = connectivity.NewMonitor(remote, cfg.Adapter.ProbeTTL, cfg.Adapter.ProbeTimeout, log)

	rt.Services = service.NewClientServices(rt.Storages, remote, rt.Monitor, resolver, service.ClientServicesOptions{
		Sync: service.SyncOptions{
			MaxAttempts:  cfg.Workers.SyncMaxAttempts,
			BackoffBase:  cfg.Workers.SyncBackoffBase,
			BackoffCap:   cfg.Workers.SyncBackoffCap,
			PullPageSize: cfg.Workers.PullPageSize,
		},
		Content: service.ContentOptions{
			LimitBytes: cfg.Storage.ContentLimitBytes,
			Checksum:   cfg.Storage.ContentChecksum,
			Retries:    cfg.Adapter.DownloadRetries,
		},
	}, log)

	if err = rt.Services.ContentService.Recover(ctx); err != nil {
		_ = rt.Close()
		return nil, err
	}

	rt.Workers = workers.NewWorkers(
		workers.NewSyncWorker(rt.Services.SyncJob, cfg.Workers.SyncInterval),
		workers.NewReconnectWorker(rt.Monitor, rt.Services.SyncService, cfg.Adapter.ProbeTTL, log),
	)

	log.Info().
		Str("func", "client.NewRuntime").
		Str("base", layout.Base).
		Str("remote", cfg.Adapter.HTTPAddress).
		Str("version", buildInfo.BuildVersion()).
		Msg("runtime ready")
	return rt, nil
}

// Start launches the background workers.
func (r *Runtime) Start(ctx context.Context) {
	r.Workers.Run(ctx)
}

// Run starts the workers and serves the bridge until ctx is cancelled.
func (r *Runtime) Run(ctx context.Context) error {
	handlers, err := handler.NewHandlers(r.Services.Boundary, r.BuildInfo, r.Config.Server, r.Logger)
	if err != nil {
		return err
	}
	srv, err := server.NewServer(handlers, r.Config.Server, r.Logger)
	if err != nil {
		return err
	}

	r.Start(ctx)
	defer r.Workers.Stop()

	return srv.RunServer(ctx)
}

// Close stops the workers and releases the database and the log file.
// It is safe to call more than once.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		if r.Workers != nil {
			r.Workers.Stop()
		}

		var errs []error
		if err := r.Storages.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storages: %w", err))
		}
		if r.Logger != nil {
			r.Logger.Info().Str("func", "Runtime.Close").Msg("runtime closed")
		}
		if r.logCloser != nil {
			if err := r.logCloser.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close log: %w", err))
			}
		}
		r.closeErr = errors.Join(errs...)
	})
	return r.closeErr
}
