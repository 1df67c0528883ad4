package models

// QueryKind tags the variant carried by a [Query].
type QueryKind string

const (
	QuerySelect QueryKind = "select"
	QueryInsert QueryKind = "insert"
	QueryUpdate QueryKind = "update"
	QueryDelete QueryKind = "delete"
)

// FilterOp is a comparison operator allowed inside a [Filter].
type FilterOp string

const (
	OpEq     FilterOp = "eq"
	OpNotEq  FilterOp = "ne"
	OpLt     FilterOp = "lt"
	OpLtOrEq FilterOp = "lte"
	OpGt     FilterOp = "gt"
	OpGtOrEq FilterOp = "gte"
	OpLike   FilterOp = "like"
	OpIn     FilterOp = "in"
	OpIsNull FilterOp = "is_null"
)

// Query is the constrained query descriptor accepted by the local store.
//
// It is a tagged variant: Kind selects which of the remaining fields are
// meaningful.
//
//   - select: Table, Columns (empty means every known column), Filters,
//     OrderBy, Limit, Offset.
//   - insert: Table, ID (generated when empty), Values.
//   - update: Table, ID, Values.
//   - delete: Table, ID.
//
// Mutations always address a single entity by ID so that every change can
// be paired with exactly one sync queue entry.
type Query struct {
	Kind    QueryKind      `json:"kind"`
	Table   string         `json:"table"`
	ID      string         `json:"id,omitempty"`
	Columns []string       `json:"columns,omitempty"`
	Values  map[string]any `json:"values,omitempty"`
	Filters []Filter       `json:"filters,omitempty"`
	OrderBy []Order        `json:"order_by,omitempty"`
	Limit   uint64         `json:"limit,omitempty"`
	Offset  uint64         `json:"offset,omitempty"`
}

// Filter is a single column predicate. Filters of one query are ANDed.
type Filter struct {
	Column string   `json:"column"`
	Op     FilterOp `json:"op"`
	Value  any      `json:"value,omitempty"`
}

// Order is one ORDER BY term.
type Order struct {
	Column string `json:"column"`
	Desc   bool   `json:"desc,omitempty"`
}

// Row is one result row keyed by column name.
type Row map[string]any

// QueryResult is what the store returns for any [Query].
type QueryResult struct {
	Rows     []Row  `json:"rows"`
	Affected int64  `json:"affected,omitempty"`
	ID       string `json:"id,omitempty"`
	Revision int64  `json:"revision,omitempty"`
}

// IsMutation reports whether the query changes data.
func (q Query) IsMutation() bool {
	return q.Kind == QueryInsert || q.Kind == QueryUpdate || q.Kind == QueryDelete
}
