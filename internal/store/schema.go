package store

import "slices"

// Columns maintained by the store itself on every application table. They
// can be read and filtered on but never written through a query descriptor.
const (
	columnID             = "id"
	columnRevision       = "revision"
	columnRemoteRevision = "remote_revision"
	columnCreatedAt      = "created_at"
	columnUpdatedAt      = "updated_at"
)

var systemColumns = []string{columnID, columnRevision, columnRemoteRevision, columnCreatedAt, columnUpdatedAt}

// tombstonesTable keeps the last revision of deleted rows.
const tombstonesTable = "entity_tombstones"

// TableSchema describes one application table known to the store.
type TableSchema struct {
	Name string
	// Writable lists the columns a descriptor may set, in schema order.
	Writable []string
}

// Columns returns every readable column: id, the writable columns, then
// the bookkeeping columns.
func (t TableSchema) Columns() []string {
	cols := make([]string, 0, len(t.Writable)+len(systemColumns))
	cols = append(cols, columnID)
	cols = append(cols, t.Writable...)
	return append(cols, systemColumns[1:]...)
}

// HasColumn reports whether col is readable.
func (t TableSchema) HasColumn(col string) bool {
	return slices.Contains(systemColumns, col) || slices.Contains(t.Writable, col)
}

// IsWritable reports whether col may be set by a descriptor.
func (t TableSchema) IsWritable(col string) bool {
	return slices.Contains(t.Writable, col)
}

// applicationTables is the fixed registry descriptors are validated
// against. It mirrors the migrations.
var applicationTables = map[string]TableSchema{
	"courses": {
		Name:     "courses",
		Writable: []string{"title", "description", "is_active"},
	},
	"lessons": {
		Name:     "lessons",
		Writable: []string{"course_id", "title", "content", "duration", "sort_order", "is_active", "content_id"},
	},
	"lesson_progress": {
		Name:     "lesson_progress",
		Writable: []string{"lesson_id", "user_id", "completed", "progress"},
	},
}

// LookupTable returns the schema of an application table.
func LookupTable(name string) (TableSchema, bool) {
	t, ok := applicationTables[name]
	return t, ok
}

// Tables returns the names of all application tables, sorted.
func Tables() []string {
	names := make([]string, 0, len(applicationTables))
	for name := range applicationTables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
