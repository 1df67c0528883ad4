// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-academy-offline/internal/paths"
	"github.com/MKhiriev/go-academy-offline/internal/store"
	"github.com/MKhiriev/go-academy-offline/migrations"
	"github.com/MKhiriev/go-academy-offline/models"
)

// Error kinds reported in boundary envelopes.
const (
	KindPath                  = "path"
	KindSchema                = "schema"
	KindQueryConstraint       = "query_constraint"
	KindQueryNotFound         = "query_not_found"
	KindQueryIO               = "query_io"
	KindQueryInvalid          = "query_invalid"
	KindSyncNetwork           = "sync_network"
	KindSyncConflict          = "sync_conflict"
	KindSyncTerminal          = "sync_terminal"
	KindFetchNetwork          = "fetch_network"
	KindFetchChecksumMismatch = "fetch_checksum_mismatch"
	KindFetchIO               = "fetch_io"
	KindInvalidRequest        = "invalid_request"
	KindInternal              = "internal"
)

// Messages shown to the user.
const (
	MsgOffline            = "offline, will retry"
	MsgSyncInterrupted    = "sync interrupted, will retry"
	MsgServerVersionWins  = "sync conflict resolved using server version"
	MsgChangeRejected     = "change rejected by server"
	MsgContentOffline     = "content unavailable offline"
	MsgContentUnavailable = "content unavailable, will retry"
	MsgContentCorrupt     = "content failed integrity check"
	MsgContentStorage     = "content storage unavailable"
	MsgContentLimit       = "content storage limit reached"
	MsgStoragePath        = "storage location unavailable"
	MsgSchemaTooNew       = "database was created by a newer version of the application"
	MsgSchema             = "database schema could not be prepared"
	MsgConstraint         = "the change violates a data constraint"
	MsgNotFound           = "record not found"
	MsgStorageIO          = "local storage unavailable, try again"
	MsgInternal           = "internal error"
)

// mapError converts a service or store error into the envelope error
// body. Invalid descriptors keep their detail because it names the
// offending table or column; every other kind gets a fixed message.
func mapError(err error) *models.ErrorBody {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrSyncTerminal):
		return errorBody(KindSyncTerminal, MsgChangeRejected)
	case errors.Is(err, ErrSyncConflict):
		return errorBody(KindSyncConflict, MsgServerVersionWins)
	case errors.Is(err, ErrSyncNetwork):
		return errorBody(KindSyncNetwork, MsgOffline)

	case errors.Is(err, ErrChecksumMismatch):
		return errorBody(KindFetchChecksumMismatch, MsgContentCorrupt)
	case errors.Is(err, ErrContentOffline):
		return errorBody(KindFetchNetwork, MsgContentOffline)
	case errors.Is(err, ErrFetchNetwork):
		return errorBody(KindFetchNetwork, MsgContentUnavailable)
	case errors.Is(err, ErrStorageLimit):
		return errorBody(KindFetchIO, MsgContentLimit)
	case errors.Is(err, ErrFetchIO):
		return errorBody(KindFetchIO, MsgContentStorage)

	case errors.Is(err, migrations.ErrSchemaTooNew):
		return errorBody(KindSchema, MsgSchemaTooNew)
	case isSchemaError(err):
		return errorBody(KindSchema, MsgSchema)
	case isPathError(err):
		return errorBody(KindPath, MsgStoragePath)

	case errors.Is(err, store.ErrInvalidQuery):
		return errorBody(KindQueryInvalid, err.Error())
	case errors.Is(err, store.ErrConstraint):
		return errorBody(KindQueryConstraint, MsgConstraint)
	case errors.Is(err, store.ErrNotFound):
		return errorBody(KindQueryNotFound, MsgNotFound)
	case errors.Is(err, store.ErrIO):
		return errorBody(KindQueryIO, MsgStorageIO)

	case errors.Is(err, ErrInvalidPayload), errors.Is(err, ErrUnknownOperation):
		return errorBody(KindInvalidRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorBody(KindSyncNetwork, MsgSyncInterrupted)
	}

	return errorBody(KindInternal, MsgInternal)
}

func errorBody(kind, msg string) *models.ErrorBody {
	return &models.ErrorBody{Kind: kind, Message: msg}
}

func isSchemaError(err error) bool {
	var schemaErr *migrations.SchemaError
	return errors.As(err, &schemaErr)
}

func isPathError(err error) bool {
	var pathErr *paths.PathError
	return errors.As(err, &pathErr)
}
