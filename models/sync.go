package models

import (
	"encoding/json"
	"time"
)

// SyncOperation is the kind of change carried by a queue entry or a remote
// change record.
type SyncOperation string

const (
	OperationCreate SyncOperation = "create"
	OperationUpdate SyncOperation = "update"
	OperationDelete SyncOperation = "delete"
)

// QueueStatus is the lifecycle status of a [SyncQueueEntry].
type QueueStatus string

const (
	// QueueStatusPending entries are eligible for push once NextAttemptAt
	// has passed.
	QueueStatusPending QueueStatus = "pending"
	// QueueStatusFailed entries are terminal and are never pushed again
	// until explicitly retried.
	QueueStatusFailed QueueStatus = "failed"
)

// SyncQueueEntry is a pending local change awaiting acknowledgement by the
// remote service. There is at most one entry per (EntityTable, EntityID).
type SyncQueueEntry struct {
	ID            string          `json:"id"`
	EntityTable   string          `json:"entity_table"`
	EntityID      string          `json:"entity_id"`
	Operation     SyncOperation   `json:"operation"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	BaseRevision  int64           `json:"base_revision"`
	Seq           int64           `json:"seq"`
	EnqueuedAt    time.Time       `json:"enqueued_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	AttemptCount  int             `json:"attempt_count"`
	NextAttemptAt time.Time       `json:"next_attempt_at"`
	LastError     string          `json:"last_error,omitempty"`
	Status        QueueStatus     `json:"status"`
}

// SyncCursor remembers the last fully successful sync pass.
type SyncCursor struct {
	LastSuccessfulSyncAt *time.Time `json:"last_successful_sync_at,omitempty"`
	RemoteWatermark      string     `json:"remote_watermark"`
}

// ConflictResolution names the side that won a last-writer-wins decision.
type ConflictResolution string

const (
	ResolutionRemoteWins ConflictResolution = "remote_wins"
	ResolutionLocalWins  ConflictResolution = "local_wins"
)

// ConflictRecord is the audit entry written whenever a pushed change
// collides with a newer remote revision.
type ConflictRecord struct {
	ID              string             `json:"id"`
	EntityTable     string             `json:"entity_table"`
	EntityID        string             `json:"entity_id"`
	LocalPayload    json.RawMessage    `json:"local_payload,omitempty"`
	RemotePayload   json.RawMessage    `json:"remote_payload,omitempty"`
	LocalUpdatedAt  time.Time          `json:"local_updated_at"`
	RemoteUpdatedAt time.Time          `json:"remote_updated_at"`
	RemoteRevision  int64              `json:"remote_revision"`
	Resolution      ConflictResolution `json:"resolution"`
	DetectedAt      time.Time          `json:"detected_at"`
}

// SyncState is a state of the sync engine state machine.
type SyncState string

const (
	SyncStateIdle          SyncState = "idle"
	SyncStateProbing       SyncState = "probing"
	SyncStatePushingLocal  SyncState = "pushing_local"
	SyncStatePullingRemote SyncState = "pulling_remote"
	SyncStateReconciling   SyncState = "reconciling"
	SyncStateBackoff       SyncState = "backoff"
)

// SyncReport is the outcome of one sync pass.
type SyncReport struct {
	Synced    bool             `json:"synced"`
	Timestamp time.Time        `json:"timestamp"`
	Pushed    int              `json:"pushed"`
	Pulled    int              `json:"pulled"`
	Conflicts []ConflictRecord `json:"conflicts"`
	Failed    []SyncQueueEntry `json:"failed,omitempty"`
}

// SyncStatus is a cheap snapshot of the sync subsystem for the shell.
type SyncStatus struct {
	Online         bool       `json:"is_online"`
	LastSync       *time.Time `json:"last_sync,omitempty"`
	PendingChanges int        `json:"pending_changes"`
	FailedChanges  int        `json:"failed_changes"`
	State          SyncState  `json:"state"`
}
