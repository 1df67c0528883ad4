package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

const contentAssetsTable = "content_assets"

var contentAssetColumns = []string{
	"content_id",
	"source_url",
	"title",
	"content_type",
	"local_path",
	"checksum",
	"size_bytes",
	"bytes_received",
	"bytes_total",
	"status",
	"last_error",
	"created_at",
	"updated_at",
}

type contentAssetRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewContentAssetRepository returns the [ContentAssetRepository] holding
// content cache metadata.
func NewContentAssetRepository(db *DB, logger *logger.Logger) ContentAssetRepository {
	return &contentAssetRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *contentAssetRepository) Get(ctx context.Context, contentID string) (models.ContentAsset, error) {
	query, args, err := sq.Select(contentAssetColumns...).
		From(contentAssetsTable).
		Where(sq.Eq{"content_id": contentID}).
		ToSql()
	if err != nil {
		return models.ContentAsset{}, invalidQuery("get asset", "%w: %v", ErrBuildingSQLQuery, err)
	}

	asset, err := scanAsset(c.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentAsset{}, notFound("get asset")
	}
	if err != nil {
		return models.ContentAsset{}, c.db.queryError("get asset", err)
	}
	return asset, nil
}

// Upsert registers an asset or updates its source and metadata. An asset
// that is already complete keeps its status and file; any other asset goes
// back to pending so a failed download can be attempted again. Empty title
// or type leave the stored values alone.
func (c *contentAssetRepository) Upsert(ctx context.Context, req models.FetchRequest) (models.ContentAsset, error) {
	now := c.now().UTC()

	query, args, err := sq.Insert(contentAssetsTable).
		Columns("content_id", "source_url", "title", "content_type", "status", "created_at", "updated_at").
		Values(req.ContentID, req.SourceURL, req.Title, req.Type, models.AssetPending, now, now).
		Suffix(upsertAssetConflict).
		ToSql()
	if err != nil {
		return models.ContentAsset{}, invalidQuery("upsert asset", "%w: %v", ErrBuildingSQLQuery, err)
	}

	err = c.db.WithWriteTx(ctx, "upsert asset", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return models.ContentAsset{}, err
	}

	return c.Get(ctx, req.ContentID)
}

const upsertAssetConflict = `ON CONFLICT(content_id) DO UPDATE SET
	source_url = excluded.source_url,
	title = CASE WHEN excluded.title <> '' THEN excluded.title ELSE content_assets.title END,
	content_type = CASE WHEN excluded.content_type <> '' THEN excluded.content_type ELSE content_assets.content_type END,
	status = CASE WHEN content_assets.status = 'complete' THEN content_assets.status ELSE 'pending' END,
	updated_at = excluded.updated_at`

// SetProgress records how many bytes of a running download have arrived.
// total is 0 while the size is unknown.
func (c *contentAssetRepository) SetProgress(ctx context.Context, contentID string, received, total int64) error {
	query, args, err := sq.Update(contentAssetsTable).
		Set("bytes_received", received).
		Set("bytes_total", total).
		Set("updated_at", c.now().UTC()).
		Where(sq.Eq{"content_id": contentID}).
		ToSql()
	if err != nil {
		return invalidQuery("set asset progress", "%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "set asset progress", query, args)
}

func (c *contentAssetRepository) SetStatus(ctx context.Context, contentID string, status models.AssetStatus, lastErr string) error {
	query, args, err := sq.Update(contentAssetsTable).
		Set("status", status).
		Set("last_error", lastErr).
		Set("updated_at", c.now().UTC()).
		Where(sq.Eq{"content_id": contentID}).
		ToSql()
	if err != nil {
		return invalidQuery("set asset status", "%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "set asset status", query, args)
}

func (c *contentAssetRepository) MarkComplete(ctx context.Context, contentID, localPath, checksum string, size int64) error {
	query, args, err := sq.Update(contentAssetsTable).
		Set("status", models.AssetComplete).
		Set("local_path", localPath).
		Set("checksum", checksum).
		Set("size_bytes", size).
		Set("bytes_received", size).
		Set("bytes_total", size).
		Set("last_error", "").
		Set("updated_at", c.now().UTC()).
		Where(sq.Eq{"content_id": contentID}).
		ToSql()
	if err != nil {
		return invalidQuery("complete asset", "%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "complete asset", query, args)
}

func (c *contentAssetRepository) Delete(ctx context.Context, contentID string) error {
	query, args, err := sq.Delete(contentAssetsTable).Where(sq.Eq{"content_id": contentID}).ToSql()
	if err != nil {
		return invalidQuery("delete asset", "%w: %v", ErrBuildingSQLQuery, err)
	}

	return c.exec(ctx, "delete asset", query, args)
}

func (c *contentAssetRepository) DeleteAll(ctx context.Context) error {
	return c.db.WithWriteTx(ctx, "delete assets", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM "+contentAssetsTable)
		return err
	})
}

func (c *contentAssetRepository) List(ctx context.Context) ([]models.ContentAsset, error) {
	query, args, err := sq.Select(contentAssetColumns...).
		From(contentAssetsTable).
		OrderBy("created_at ASC", "content_id ASC").
		ToSql()
	if err != nil {
		return nil, invalidQuery("list assets", "%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, c.db.queryError("list assets", err)
	}
	defer rows.Close()

	assets := make([]models.ContentAsset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, c.db.queryError("list assets", errors.Join(ErrScanningRows, err))
		}
		assets = append(assets, asset)
	}
	if err = rows.Err(); err != nil {
		return nil, c.db.queryError("list assets", err)
	}

	return assets, nil
}

// ResetDownloading returns assets left in downloading by an interrupted
// process to pending.
func (c *contentAssetRepository) ResetDownloading(ctx context.Context) (int64, error) {
	query, args, err := sq.Update(contentAssetsTable).
		Set("status", models.AssetPending).
		Set("updated_at", c.now().UTC()).
		Where(sq.Eq{"status": models.AssetDownloading}).
		ToSql()
	if err != nil {
		return 0, invalidQuery("reset assets", "%w: %v", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = c.db.WithWriteTx(ctx, "reset assets", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		c.logger.Err(err).Str("func", "contentAssetRepository.ResetDownloading").Msg("failed to reset interrupted downloads")
		return 0, err
	}

	return affected, nil
}

// TotalSize sums the size of all complete assets.
func (c *contentAssetRepository) TotalSize(ctx context.Context) (int64, error) {
	query, args, err := sq.Select("COALESCE(SUM(size_bytes), 0)").
		From(contentAssetsTable).
		Where(sq.Eq{"status": models.AssetComplete}).
		ToSql()
	if err != nil {
		return 0, invalidQuery("asset usage", "%w: %v", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, c.db.queryError("asset usage", err)
	}
	return total, nil
}

func (c *contentAssetRepository) exec(ctx context.Context, op, query string, args []any) error {
	return c.db.WithWriteTx(ctx, op, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return notFound(op)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (models.ContentAsset, error) {
	var asset models.ContentAsset
	err := row.Scan(
		&asset.ContentID,
		&asset.SourceURL,
		&asset.Title,
		&asset.Type,
		&asset.LocalPath,
		&asset.Checksum,
		&asset.SizeBytes,
		&asset.BytesReceived,
		&asset.BytesTotal,
		&asset.Status,
		&asset.LastError,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return models.ContentAsset{}, err
	}

	asset.CreatedAt = asset.CreatedAt.UTC()
	asset.UpdatedAt = asset.UpdatedAt.UTC()
	return asset, nil
}
