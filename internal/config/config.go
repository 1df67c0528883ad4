// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional config file and
// the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// Storage holds on-device storage settings: the base directory, the
	// database file name and the content cache policy.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the loopback bridge listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote service endpoint, timeouts and the
	// connectivity probe policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync engine schedule and retry policy.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log file rotation settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c /
	// -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application identity values.
type App struct {
	// ID names the per-user application directory under the OS config dir.
	// Env: APP_ID
	ID string `env:"ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups on-device storage settings.
type Storage struct {
	// BaseDir overrides the per-user application directory.
	// Env: STORAGE_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// DBFile is the database file name inside the base directory.
	// Env: STORAGE_DB_FILE
	DBFile string `env:"DB_FILE"`

	// ContentLimitBytes caps the total size of cached content assets.
	// Env: STORAGE_CONTENT_LIMIT_BYTES
	ContentLimitBytes int64 `env:"CONTENT_LIMIT_BYTES"`

	// ContentChecksum is the digest algorithm for newly cached assets,
	// "sha256" or "blake2b".
	// Env: STORAGE_CONTENT_CHECKSUM
	ContentChecksum string `env:"CONTENT_CHECKSUM"`
}

// Server holds settings for the loopback HTTP bridge used by the shell.
type Server struct {
	// HTTPAddress is the TCP address the bridge listens on, in "host:port"
	// format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single bridge request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the remote service client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote service
	// (e.g. "https://api.example.org"). Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Token is an optional bearer token attached to every remote request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds push, pull and probe requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds a single reachability probe.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// ProbeTTL is how long a probe result is reused.
	// Env: ADAPTER_PROBE_TTL
	ProbeTTL time.Duration `env:"PROBE_TTL"`

	// DownloadRetries is the number of in-call retries of a transient
	// content download failure. Env: ADAPTER_DOWNLOAD_RETRIES
	DownloadRetries uint64 `env:"DOWNLOAD_RETRIES"`
}

// Workers holds configuration of the sync engine.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// SyncMaxAttempts is the number of failed pushes after which a queue
	// entry becomes terminal. Env: WORKERS_SYNC_MAX_ATTEMPTS
	SyncMaxAttempts int `env:"SYNC_MAX_ATTEMPTS"`

	// SyncBackoffBase is the first retry delay of a failed push.
	// Env: WORKERS_SYNC_BACKOFF_BASE
	SyncBackoffBase time.Duration `env:"SYNC_BACKOFF_BASE"`

	// SyncBackoffCap caps the exponential retry delay.
	// Env: WORKERS_SYNC_BACKOFF_CAP
	SyncBackoffCap time.Duration `env:"SYNC_BACKOFF_CAP"`

	// PullPageSize is the number of remote changes requested per page.
	// Env: WORKERS_PULL_PAGE_SIZE
	PullPageSize int `env:"PULL_PAGE_SIZE"`
}

// Log holds log output settings.
type Log struct {
	// File overrides the log file path. Empty means <base>/logs/core.log.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
