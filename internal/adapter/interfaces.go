// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote learning service.
//
// [RemoteAdapter] decouples the sync engine, the connectivity monitor and
// the content cache from HTTP. Non-2xx answers are returned as
// *[StatusError] wrapping the sentinels in errors.go; failures below HTTP
// wrap [ErrTransport]. [IsTransient] tells retryable failures apart.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-academy-offline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter is the client side of the remote sync and content API.
type RemoteAdapter interface {
	// Health probes HEAD /api/health. Any answer below 500 means the remote
	// is reachable.
	Health(ctx context.Context) error

	// Push sends one queued change. Applied, conflict and rejected verdicts
	// are returned as a response, not as an error.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Pull returns one page of remote changes newer than since.
	Pull(ctx context.Context, since string, limit int) (models.ChangesResponse, error)

	// Download opens the body of sourceURL. The caller closes Body.
	Download(ctx context.Context, sourceURL string) (*Download, error)
}

// Download is an open content transfer.
type Download struct {
	Body io.ReadCloser
	// ContentLength is -1 when the remote did not announce a size.
	ContentLength int64
}
