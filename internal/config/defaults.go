package config

import "time"

// Default values applied to every field left empty by the other sources.
const (
	DefaultAppID             = "academy-offline"
	DefaultDBFile            = "academy.db"
	DefaultContentLimitBytes = int64(5) << 30
	DefaultContentChecksum   = "sha256"
	DefaultServerAddress     = "127.0.0.1:47821"
	DefaultAdapterAddress    = "http://127.0.0.1:8080"
	DefaultSyncMaxAttempts   = 8
	DefaultPullPageSize      = 200
	DefaultDownloadRetries   = 3
	DefaultLogLevel          = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ID: DefaultAppID,
		},
		Storage: Storage{
			DBFile:            DefaultDBFile,
			ContentLimitBytes: DefaultContentLimitBytes,
			ContentChecksum:   DefaultContentChecksum,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 2 * time.Minute,
		},
		Adapter: Adapter{
			HTTPAddress:     DefaultAdapterAddress,
			RequestTimeout:  30 * time.Second,
			ProbeTimeout:    2 * time.Second,
			ProbeTTL:        3 * time.Second,
			DownloadRetries: DefaultDownloadRetries,
		},
		Workers: Workers{
			SyncInterval:    5 * time.Minute,
			SyncMaxAttempts: DefaultSyncMaxAttempts,
			SyncBackoffBase: 2 * time.Second,
			SyncBackoffCap:  10 * time.Minute,
			PullPageSize:    DefaultPullPageSize,
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  20,
			MaxBackups: 5,
		},
	}
}
