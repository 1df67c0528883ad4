package models

import "encoding/json"

// EnvelopeStatus is the top-level status of every boundary response.
type EnvelopeStatus string

const (
	StatusSuccess EnvelopeStatus = "success"
	StatusError   EnvelopeStatus = "error"
)

// ErrorBody is the serialisable form of a boundary error. Kind is one of
// the stable error kind strings (for example "query_constraint" or
// "fetch_checksum_mismatch"); Message is safe to show to a user.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// PathResponse answers get_storage_path.
type PathResponse struct {
	Status EnvelopeStatus `json:"status"`
	Path   string         `json:"path,omitempty"`
	Error  *ErrorBody     `json:"error,omitempty"`
}

// QueryResponse answers execute_query. Rows is always present on success,
// empty rather than null when nothing matched.
type QueryResponse struct {
	Status   EnvelopeStatus `json:"status"`
	Rows     []Row          `json:"rows,omitempty"`
	Affected int64          `json:"affected,omitempty"`
	ID       string         `json:"id,omitempty"`
	Revision int64          `json:"revision,omitempty"`
	Error    *ErrorBody     `json:"error,omitempty"`
}

// MarshalJSON keeps "rows" in successful responses even when it is empty.
func (r QueryResponse) MarshalJSON() ([]byte, error) {
	type plain QueryResponse
	if r.Status != StatusSuccess {
		return json.Marshal(plain(r))
	}
	rows := r.Rows
	if rows == nil {
		rows = []Row{}
	}
	return json.Marshal(struct {
		Status   EnvelopeStatus `json:"status"`
		Rows     []Row          `json:"rows"`
		Affected int64          `json:"affected,omitempty"`
		ID       string         `json:"id,omitempty"`
		Revision int64          `json:"revision,omitempty"`
	}{r.Status, rows, r.Affected, r.ID, r.Revision})
}

// ConnectivityResponse answers check_connectivity.
type ConnectivityResponse struct {
	Status EnvelopeStatus `json:"status"`
	Online bool           `json:"online"`
}

// SyncResponse answers trigger_sync.
type SyncResponse struct {
	Status    EnvelopeStatus   `json:"status"`
	Synced    bool             `json:"synced"`
	Timestamp string           `json:"timestamp,omitempty"`
	Pushed    int              `json:"pushed,omitempty"`
	Pulled    int              `json:"pulled,omitempty"`
	Failed    int              `json:"failed,omitempty"`
	Conflicts []ConflictRecord `json:"conflicts"`
	// Notices report entry-level outcomes of a successful pass, such as a
	// conflict resolved in favour of the server.
	Notices []ErrorBody `json:"notices,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// FetchResponse answers fetch_content.
type FetchResponse struct {
	Status    EnvelopeStatus `json:"status"`
	ContentID string         `json:"content_id"`
	LocalPath string         `json:"local_path,omitempty"`
	Error     *ErrorBody     `json:"error,omitempty"`
}

// Response is the generic envelope used by the auxiliary operations
// (status, listings, eviction).
type Response struct {
	Status EnvelopeStatus `json:"status"`
	Data   any            `json:"data,omitempty"`
	Error  *ErrorBody     `json:"error,omitempty"`
}

// InvokeRequest is a message-passing boundary call: Op names the
// operation, Payload carries its JSON arguments.
type InvokeRequest struct {
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
