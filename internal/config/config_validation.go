// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the values that are set on the merged [StructuredConfig].
// Empty fields are allowed here; required fields are enforced by
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.ContentChecksum != "" && !isKnownChecksum(cfg.Storage.ContentChecksum) {
		return fmt.Errorf("%w: unknown checksum algorithm %q", ErrInvalidStorageConfigs, cfg.Storage.ContentChecksum)
	}
	if cfg.Storage.ContentLimitBytes < 0 {
		return fmt.Errorf("%w: negative content limit", ErrInvalidStorageConfigs)
	}
	if cfg.Workers.SyncMaxAttempts < 0 || cfg.Workers.PullPageSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.ID == "" || strings.ContainsAny(cfg.App.ID, `/\`) {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DBFile == "" || strings.ContainsAny(cfg.Storage.DBFile, `/\`) {
		return fmt.Errorf("%w: db file must be a plain file name", ErrInvalidStorageConfigs)
	}
	if !isKnownChecksum(cfg.Storage.ContentChecksum) || cfg.Storage.ContentLimitBytes <= 0 {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: remote address must be an http(s) URL", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeTimeout <= 0 || cfg.Adapter.ProbeTTL <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.SyncMaxAttempts <= 0 || cfg.Workers.PullPageSize <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.SyncBackoffBase <= 0 || cfg.Workers.SyncBackoffCap < cfg.Workers.SyncBackoffBase {
		return fmt.Errorf("%w: backoff cap must not be below base", ErrInvalidWorkerConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func isKnownChecksum(algo string) bool {
	return algo == "sha256" || algo == "blake2b"
}
