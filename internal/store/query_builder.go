package store

import (
	"encoding/json"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-academy-offline/models"
)

// Query descriptors are validated against the table registry and rendered
// with squirrel. Identifiers only ever come from the registry; values are
// always bound as placeholders.

func buildSelect(q models.Query) (string, []any, error) {
	const op = "select"

	table, ok := LookupTable(q.Table)
	if !ok {
		return "", nil, invalidQuery(op, "unknown table %q", q.Table)
	}

	cols := q.Columns
	if len(cols) == 0 {
		cols = table.Columns()
	}
	for _, col := range cols {
		if !table.HasColumn(col) {
			return "", nil, invalidQuery(op, "unknown column %q in table %q", col, table.Name)
		}
	}

	b := sq.Select(cols...).From(table.Name)

	for _, f := range q.Filters {
		pred, err := filterPredicate(table, f)
		if err != nil {
			return "", nil, err
		}
		b = b.Where(pred)
	}

	for _, o := range q.OrderBy {
		if !table.HasColumn(o.Column) {
			return "", nil, invalidQuery(op, "unknown order column %q", o.Column)
		}
		if o.Desc {
			b = b.OrderBy(o.Column + " DESC")
		} else {
			b = b.OrderBy(o.Column + " ASC")
		}
	}
	if len(q.OrderBy) == 0 {
		b = b.OrderBy(columnID + " ASC")
	}

	limit := q.Limit
	if q.Offset > 0 && limit == 0 {
		// sqlite only accepts OFFSET after a LIMIT
		limit = math.MaxInt64
	}
	if limit > 0 {
		b = b.Limit(limit)
	}
	if q.Offset > 0 {
		b = b.Offset(q.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func filterPredicate(table TableSchema, f models.Filter) (sq.Sqlizer, error) {
	const op = "select"

	if !table.HasColumn(f.Column) {
		return nil, invalidQuery(op, "unknown filter column %q", f.Column)
	}

	if f.Op == models.OpIsNull {
		isNull, ok := f.Value.(bool)
		if !ok && f.Value != nil {
			return nil, invalidQuery(op, "is_null expects a boolean")
		}
		if f.Value == nil || isNull {
			return sq.Eq{f.Column: nil}, nil
		}
		return sq.NotEq{f.Column: nil}, nil
	}

	if f.Op == models.OpIn {
		list, ok := f.Value.([]any)
		if !ok || len(list) == 0 {
			return nil, invalidQuery(op, "in expects a non-empty list")
		}
		values := make([]any, 0, len(list))
		for _, v := range list {
			nv, err := normalizeValue(v)
			if err != nil || nv == nil {
				return nil, invalidQuery(op, "unsupported value in list for %q", f.Column)
			}
			values = append(values, nv)
		}
		return sq.Eq{f.Column: values}, nil
	}

	v, err := normalizeValue(f.Value)
	if err != nil {
		return nil, invalidQuery(op, "filter %q: %v", f.Column, err)
	}

	switch f.Op {
	case models.OpEq:
		return sq.Eq{f.Column: v}, nil
	case models.OpNotEq:
		return sq.NotEq{f.Column: v}, nil
	}

	if v == nil {
		return nil, invalidQuery(op, "operator %q needs a value", f.Op)
	}

	switch f.Op {
	case models.OpLt:
		return sq.Lt{f.Column: v}, nil
	case models.OpLtOrEq:
		return sq.LtOrEq{f.Column: v}, nil
	case models.OpGt:
		return sq.Gt{f.Column: v}, nil
	case models.OpGtOrEq:
		return sq.GtOrEq{f.Column: v}, nil
	case models.OpLike:
		if _, ok := v.(string); !ok {
			return nil, invalidQuery(op, "like expects a string")
		}
		return sq.Like{f.Column: v}, nil
	}

	return nil, invalidQuery(op, "unsupported operator %q", f.Op)
}

// writableValues validates values against the table and returns the
// columns in schema order with their normalised values.
func writableValues(op string, table TableSchema, values map[string]any) ([]string, []any, error) {
	for col := range values {
		if !table.IsWritable(col) {
			return nil, nil, invalidQuery(op, "column %q of %q is not writable", col, table.Name)
		}
	}

	cols := make([]string, 0, len(values))
	vals := make([]any, 0, len(values))
	for _, col := range table.Writable {
		raw, ok := values[col]
		if !ok {
			continue
		}
		v, err := normalizeValue(raw)
		if err != nil {
			return nil, nil, invalidQuery(op, "column %q: %v", col, err)
		}
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return cols, vals, nil
}

func buildInsert(table TableSchema, id string, cols []string, vals []any, now time.Time) (string, []any, error) {
	allCols := append([]string{columnID}, cols...)
	allCols = append(allCols, columnRevision, columnRemoteRevision, columnCreatedAt, columnUpdatedAt)

	allVals := append([]any{id}, vals...)
	allVals = append(allVals, startRevision(table, id), 0, now, now)

	return sq.Insert(table.Name).Columns(allCols...).Values(allVals...).ToSql()
}

// startRevision is the revision a new row starts at: one past the revision
// of its last deletion, or 1.
func startRevision(table TableSchema, id string) sq.Sqlizer {
	return sq.Expr(
		"COALESCE((SELECT revision FROM "+tombstonesTable+" WHERE entity_table = ? AND entity_id = ?), 0) + 1",
		table.Name, id,
	)
}

func buildUpdate(table TableSchema, id string, cols []string, vals []any, now time.Time) (string, []any, error) {
	b := sq.Update(table.Name)
	for i, col := range cols {
		b = b.Set(col, vals[i])
	}

	return b.
		Set(columnRevision, sq.Expr(columnRevision+" + 1")).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func buildDelete(table TableSchema, id string) (string, []any, error) {
	return sq.Delete(table.Name).Where(sq.Eq{columnID: id}).ToSql()
}

// buildTombstone renders the statement that keeps the revision a row is
// deleted at. It must run before the row is deleted.
func buildTombstone(table TableSchema, id string, now time.Time) (string, []any, error) {
	deleted := sq.Select().
		Column(sq.Expr("?", table.Name)).
		Column(columnID).
		Column(columnRevision+" + 1").
		Column(sq.Expr("?", now)).
		From(table.Name).
		Where(sq.Eq{columnID: id})

	return sq.Insert(tombstonesTable).
		Columns("entity_table", "entity_id", "revision", "deleted_at").
		Select(deleted).
		Suffix("ON CONFLICT(entity_table, entity_id) DO UPDATE SET revision = excluded.revision, deleted_at = excluded.deleted_at").
		ToSql()
}

// buildUpsertRemote renders the statement that applies a remote version of
// an entity. The local revision still moves forward on every write.
func buildUpsertRemote(table TableSchema, id string, cols []string, vals []any, remoteRevision int64, updatedAt time.Time) (string, []any, error) {
	allCols := append([]string{columnID}, cols...)
	allCols = append(allCols, columnRevision, columnRemoteRevision, columnCreatedAt, columnUpdatedAt)

	allVals := append([]any{id}, vals...)
	allVals = append(allVals, startRevision(table, id), remoteRevision, updatedAt, updatedAt)

	set := "ON CONFLICT(" + columnID + ") DO UPDATE SET "
	for _, col := range cols {
		set += col + " = excluded." + col + ", "
	}
	set += columnRevision + " = " + table.Name + "." + columnRevision + " + 1, " +
		columnRemoteRevision + " = excluded." + columnRemoteRevision + ", " +
		columnUpdatedAt + " = excluded." + columnUpdatedAt

	return sq.Insert(table.Name).Columns(allCols...).Values(allVals...).Suffix(set).ToSql()
}

func normalizeValue(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool, int, int64, float64:
		return value, nil
	case int32:
		return int64(value), nil
	case float32:
		return float64(value), nil
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i, nil
		}
		f, err := value.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case time.Time:
		return value.UTC(), nil
	}

	return nil, errUnsupportedValue
}
