package config

import (
	"fmt"
	"time"
)

// ClientApp holds application identity settings.
type ClientApp struct {
	ID      string
	Version string
}

// ClientStorage groups on-device storage settings.
type ClientStorage struct {
	// BaseDir overrides the per-user application directory when non-empty.
	BaseDir string
	// DBFile is the database file name inside the base directory.
	DBFile string
	// ContentLimitBytes caps the total size of cached content.
	ContentLimitBytes int64
	// ContentChecksum is the digest algorithm for new assets.
	ContentChecksum string
}

// ClientAdapter holds remote service settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote service base URL.
	HTTPAddress string
	// Token is an optional bearer token.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// ProbeTimeout bounds a reachability probe.
	ProbeTimeout time.Duration
	// ProbeTTL is how long a probe result is cached.
	ProbeTTL time.Duration
	// DownloadRetries is the number of in-call download retries.
	DownloadRetries uint64
}

// ClientWorkers contains sync engine settings.
type ClientWorkers struct {
	SyncInterval    time.Duration
	SyncMaxAttempts int
	SyncBackoffBase time.Duration
	SyncBackoffCap  time.Duration
	PullPageSize    int
}

// ClientServer contains the loopback bridge listener settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientLog contains log output settings.
type ClientLog struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// ClientConfig is the runtime configuration of the core assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Adapter ClientAdapter
	Workers ClientWorkers
	Server  ClientServer
	Log     ClientLog
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps cfg onto a [ClientConfig] and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ID:      cfg.App.ID,
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			BaseDir:           cfg.Storage.BaseDir,
			DBFile:            cfg.Storage.DBFile,
			ContentLimitBytes: cfg.Storage.ContentLimitBytes,
			ContentChecksum:   cfg.Storage.ContentChecksum,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			Token:           cfg.Adapter.Token,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			ProbeTimeout:    cfg.Adapter.ProbeTimeout,
			ProbeTTL:        cfg.Adapter.ProbeTTL,
			DownloadRetries: cfg.Adapter.DownloadRetries,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			SyncMaxAttempts: cfg.Workers.SyncMaxAttempts,
			SyncBackoffBase: cfg.Workers.SyncBackoffBase,
			SyncBackoffCap:  cfg.Workers.SyncBackoffCap,
			PullPageSize:    cfg.Workers.PullPageSize,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Log: ClientLog{
			File:       cfg.Log.File,
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
