package service

import (
	"errors"
	"fmt"
)

// Sync error kinds. A *SyncError unwraps to exactly one of them.
var (
	// ErrSyncNetwork is returned when the remote became unreachable or
	// answered with a server error during a pass. Queued changes are kept
	// and retried later.
	ErrSyncNetwork = errors.New("sync network failure")
	// ErrSyncConflict marks a change that lost a last-writer-wins decision
	// or could not be reconciled.
	ErrSyncConflict = errors.New("sync conflict")
	// ErrSyncTerminal marks a change the remote will never accept. It stays
	// failed until retried or discarded explicitly.
	ErrSyncTerminal = errors.New("sync change rejected")
)

// Fetch error kinds. A *FetchError unwraps to exactly one of them.
var (
	ErrFetchNetwork     = errors.New("content download failed")
	ErrChecksumMismatch = errors.New("content checksum mismatch")
	ErrFetchIO          = errors.New("content storage failure")
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrContentOffline   = errors.New("content unavailable offline")
	ErrStorageLimit     = errors.New("content storage limit exceeded")
)

// SyncError is the error type of the sync engine.
type SyncError struct {
	Kind error
	// Entity is "table/id" for entry-level errors and empty for pass-level
	// errors.
	Entity string
	Err    error
}

func (e *SyncError) Error() string {
	prefix := e.Kind.Error()
	if e.Entity != "" {
		prefix += " (" + e.Entity + ")"
	}
	if e.Err == nil {
		return prefix
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *SyncError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// FetchError is the error type of the content cache.
type FetchError struct {
	Kind      error
	ContentID string
	Err       error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v (%s)", e.Kind, e.ContentID)
	}
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.ContentID, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
