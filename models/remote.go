package models

import (
	"encoding/json"
	"time"
)

// PushResult is the remote verdict for one pushed change.
type PushResult string

const (
	PushApplied  PushResult = "applied"
	PushConflict PushResult = "conflict"
	PushRejected PushResult = "rejected"
)

// PushRequest is the body of POST /api/sync/push.
type PushRequest struct {
	EntityTable  string          `json:"entity_table"`
	EntityID     string          `json:"entity_id"`
	Operation    SyncOperation   `json:"operation"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	BaseRevision int64           `json:"base_revision"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Force        bool            `json:"force,omitempty"`
}

// PushResponse is the remote answer to a [PushRequest].
type PushResponse struct {
	Result   PushResult    `json:"result"`
	Revision int64         `json:"revision,omitempty"`
	Remote   *RemoteRecord `json:"remote,omitempty"`
	Reason   string        `json:"reason,omitempty"`
}

// RemoteRecord is a remote entity version. Operation is delete for
// tombstones.
type RemoteRecord struct {
	EntityTable string          `json:"entity_table"`
	EntityID    string          `json:"entity_id"`
	Operation   SyncOperation   `json:"operation"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	Revision    int64           `json:"revision"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ChangesResponse is one page of GET /api/sync/changes.
type ChangesResponse struct {
	Changes   []RemoteRecord `json:"changes"`
	Watermark string         `json:"watermark"`
	HasMore   bool           `json:"has_more"`
}
