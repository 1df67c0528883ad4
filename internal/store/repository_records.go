package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

type recordRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
	ids    *utils.UUIDGenerator
}

// NewRecordRepository returns the [RecordRepository] executing query
// descriptors against the application tables.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (r *recordRepository) Execute(ctx context.Context, q models.Query) (models.QueryResult, error) {
	log := logger.FromContext(ctx)

	if q.Kind == models.QuerySelect {
		return r.selectRows(ctx, r.db, q)
	}
	if !q.IsMutation() {
		return models.QueryResult{}, invalidQuery("execute", "unknown query kind %q", q.Kind)
	}

	var result models.QueryResult
	err := r.db.WithWriteTx(ctx, string(q.Kind)+" "+q.Table, func(tx *sql.Tx) error {
		var err error
		result, err = r.mutate(ctx, tx, q)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Execute").
			Str("kind", string(q.Kind)).
			Str("table", q.Table).
			Str("id", q.ID).
			Msg("mutation failed")
		return models.QueryResult{}, err
	}

	return result, nil
}

func (r *recordRepository) ExecuteBatch(ctx context.Context, queries []models.Query) ([]models.QueryResult, error) {
	results := make([]models.QueryResult, 0, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	err := r.db.WithWriteTx(ctx, "batch", func(tx *sql.Tx) error {
		for _, q := range queries {
			var (
				result models.QueryResult
				err    error
			)
			switch {
			case q.Kind == models.QuerySelect:
				result, err = r.selectRows(ctx, tx, q)
			case q.IsMutation():
				result, err = r.mutate(ctx, tx, q)
			default:
				err = invalidQuery("batch", "unknown query kind %q", q.Kind)
			}
			if err != nil {
				return err
			}
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.ExecuteBatch").
			Int("statements", len(queries)).
			Msg("batch rolled back")
		return nil, err
	}

	return results, nil
}

func (r *recordRepository) selectRows(ctx context.Context, q querier, query models.Query) (models.QueryResult, error) {
	op := "select " + query.Table

	sqlText, args, err := buildSelect(query)
	if err != nil {
		return models.QueryResult{}, err
	}

	rows, err := q.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return models.QueryResult{}, r.db.queryError(op, err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return models.QueryResult{}, r.db.queryError(op, err)
	}

	return models.QueryResult{Rows: result}, nil
}

// mutate applies one insert, update or delete and records the matching
// sync queue entry in the same transaction.
func (r *recordRepository) mutate(ctx context.Context, tx *sql.Tx, q models.Query) (models.QueryResult, error) {
	op := string(q.Kind) + " " + q.Table

	table, ok := LookupTable(q.Table)
	if !ok {
		return models.QueryResult{}, invalidQuery(op, "unknown table %q", q.Table)
	}
	now := r.now().UTC()

	switch q.Kind {
	case models.QueryInsert:
		cols, vals, err := writableValues(op, table, q.Values)
		if err != nil {
			return models.QueryResult{}, err
		}
		id := q.ID
		if id == "" {
			id = r.ids.Generate()
		}

		sqlText, args, err := buildInsert(table, id, cols, vals, now)
		if err != nil {
			return models.QueryResult{}, invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, sqlText, args...); err != nil {
			return models.QueryResult{}, err
		}

		snap, err := snapshot(ctx, tx, table, id)
		if err != nil {
			return models.QueryResult{}, err
		}
		if err = enqueueChange(ctx, tx, r.ids, queuedChange{
			table:     table.Name,
			entityID:  id,
			operation: models.OperationCreate,
			payload:   snap.payload,
			base:      snap.remoteRevision,
			at:        now,
		}); err != nil {
			return models.QueryResult{}, err
		}

		return models.QueryResult{Rows: []models.Row{}, Affected: 1, ID: id, Revision: snap.revision}, nil

	case models.QueryUpdate:
		if q.ID == "" {
			return models.QueryResult{}, invalidQuery(op, "update needs an id")
		}
		cols, vals, err := writableValues(op, table, q.Values)
		if err != nil {
			return models.QueryResult{}, err
		}
		if len(cols) == 0 {
			return models.QueryResult{}, invalidQuery(op, "update needs at least one value")
		}

		sqlText, args, err := buildUpdate(table, q.ID, cols, vals, now)
		if err != nil {
			return models.QueryResult{}, invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, sqlText, args...)
		if err != nil {
			return models.QueryResult{}, err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return models.QueryResult{}, notFound(op)
		}

		snap, err := snapshot(ctx, tx, table, q.ID)
		if err != nil {
			return models.QueryResult{}, err
		}
		if err = enqueueChange(ctx, tx, r.ids, queuedChange{
			table:     table.Name,
			entityID:  q.ID,
			operation: models.OperationUpdate,
			payload:   snap.payload,
			base:      snap.remoteRevision,
			at:        now,
		}); err != nil {
			return models.QueryResult{}, err
		}

		return models.QueryResult{Rows: []models.Row{}, Affected: 1, ID: q.ID, Revision: snap.revision}, nil

	case models.QueryDelete:
		if q.ID == "" {
			return models.QueryResult{}, invalidQuery(op, "delete needs an id")
		}

		snap, err := snapshot(ctx, tx, table, q.ID)
		if err != nil {
			return models.QueryResult{}, err
		}

		if err = deleteRow(ctx, tx, table, q.ID, now); err != nil {
			return models.QueryResult{}, err
		}

		if err = enqueueChange(ctx, tx, r.ids, queuedChange{
			table:     table.Name,
			entityID:  q.ID,
			operation: models.OperationDelete,
			base:      snap.remoteRevision,
			at:        now,
		}); err != nil {
			return models.QueryResult{}, err
		}

		return models.QueryResult{Rows: []models.Row{}, Affected: 1, ID: q.ID, Revision: snap.revision + 1}, nil
	}

	return models.QueryResult{}, invalidQuery(op, "unknown query kind %q", q.Kind)
}

// deleteRow removes one row and records the revision it was deleted at.
func deleteRow(ctx context.Context, q querier, table TableSchema, id string, now time.Time) error {
	op := "delete " + table.Name

	sqlText, args, err := buildTombstone(table, id, now)
	if err != nil {
		return invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, sqlText, args...); err != nil {
		return err
	}

	sqlText, args, err = buildDelete(table, id)
	if err != nil {
		return invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
	}
	_, err = q.ExecContext(ctx, sqlText, args...)
	return err
}

type entitySnapshot struct {
	payload        json.RawMessage
	revision       int64
	remoteRevision int64
}

// snapshot reads the current state of one entity. The payload holds id
// and the writable columns only.
func snapshot(ctx context.Context, q querier, table TableSchema, id string) (entitySnapshot, error) {
	op := "snapshot " + table.Name

	cols := append([]string{columnID}, table.Writable...)
	cols = append(cols, columnRevision, columnRemoteRevision)

	sqlText, args, err := sq.Select(cols...).From(table.Name).Where(sq.Eq{columnID: id}).ToSql()
	if err != nil {
		return entitySnapshot{}, invalidQuery(op, "%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return entitySnapshot{}, err
	}
	defer rows.Close()

	found, err := scanRows(rows)
	if err != nil {
		return entitySnapshot{}, err
	}
	if len(found) == 0 {
		return entitySnapshot{}, notFound(op)
	}

	row := found[0]
	snap := entitySnapshot{
		revision:       toInt64(row[columnRevision]),
		remoteRevision: toInt64(row[columnRemoteRevision]),
	}
	delete(row, columnRevision)
	delete(row, columnRemoteRevision)

	if snap.payload, err = json.Marshal(row); err != nil {
		return entitySnapshot{}, err
	}

	return snap, nil
}

func scanRows(rows *sql.Rows) ([]models.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}

		row := make(models.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return result, nil
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
