package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
)

const partSuffix = ".part"

// ErrStagedFileClosed is returned when a staged file is committed or
// discarded twice.
var ErrStagedFileClosed = errors.New("staged file already closed")

// StagedFile is a fully written and synced temp file awaiting commit.
type StagedFile struct {
	Key      string
	TempPath string
	Size     int64
	// Sum is the raw digest of the written bytes.
	Sum []byte

	closed bool
}

type contentFileStorage struct {
	objectsDir string
	tempDir    string
	logger     *logger.Logger
	ids        *utils.UUIDGenerator
}

// NewContentFileStorage returns the [ContentFileStorage] rooted at the
// given object and temp directories. Both must live on one filesystem so
// that commit is an atomic rename.
func NewContentFileStorage(objectsDir, tempDir string, logger *logger.Logger) ContentFileStorage {
	return &contentFileStorage{
		objectsDir: objectsDir,
		tempDir:    tempDir,
		logger:     logger,
		ids:        utils.NewUUIDGenerator(),
	}
}

// ObjectKey derives the on-disk key of a content id.
func ObjectKey(contentID string) string {
	sum := sha256.Sum256([]byte(contentID))
	return hex.EncodeToString(sum[:])
}

func (c *contentFileStorage) ObjectPath(key string) string {
	return filepath.Join(c.objectsDir, key[:2], key)
}

// Stage streams r into a new temp file while feeding h. The file is
// fsynced before Stage returns. On any error the temp file is removed.
func (c *contentFileStorage) Stage(ctx context.Context, key string, r io.Reader, h hash.Hash) (*StagedFile, error) {
	if err := os.MkdirAll(c.tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	tmpPath := filepath.Join(c.tempDir, key+"-"+c.ids.Generate()+partSuffix)
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	staged, err := c.write(ctx, f, r, h)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temp file: %w", closeErr)
	}
	if err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			c.logger.Err(rmErr).Str("func", "contentFileStorage.Stage").Str("path", tmpPath).Msg("failed to remove temp file")
		}
		return nil, err
	}

	staged.Key = key
	staged.TempPath = tmpPath
	return staged, nil
}

func (c *contentFileStorage) write(ctx context.Context, f *os.File, r io.Reader, h hash.Hash) (*StagedFile, error) {
	n, err := io.Copy(io.MultiWriter(f, h), &ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, err
	}
	if err = f.Sync(); err != nil {
		return nil, fmt.Errorf("sync temp file: %w", err)
	}

	return &StagedFile{Size: n, Sum: h.Sum(nil)}, nil
}

// Commit atomically moves a staged file to its object path and returns it.
func (c *contentFileStorage) Commit(staged *StagedFile) (string, error) {
	if staged == nil || staged.closed {
		return "", ErrStagedFileClosed
	}

	dst := c.ObjectPath(staged.Key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		c.Discard(staged)
		return "", fmt.Errorf("create object dir: %w", err)
	}
	if err := os.Rename(staged.TempPath, dst); err != nil {
		c.Discard(staged)
		return "", fmt.Errorf("commit object: %w", err)
	}
	staged.closed = true

	syncDir(filepath.Dir(dst))
	return dst, nil
}

// Discard removes a staged file that will not be committed.
func (c *contentFileStorage) Discard(staged *StagedFile) {
	if staged == nil || staged.closed {
		return
	}
	staged.closed = true

	if err := os.Remove(staged.TempPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.logger.Err(err).Str("func", "contentFileStorage.Discard").Str("path", staged.TempPath).Msg("failed to remove staged file")
	}
}

// Verify re-hashes a committed object with algo.
func (c *contentFileStorage) Verify(path, algo string) (string, int64, error) {
	return utils.HashFile(path, algo)
}

func (c *contentFileStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// CleanupTemp deletes every leftover file in the temp directory and
// returns how many were removed.
func (c *contentFileStorage) CleanupTemp() (int, error) {
	entries, err := os.ReadDir(c.tempDir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.tempDir, e.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		if strings.HasSuffix(e.Name(), partSuffix) {
			removed++
		}
	}

	return removed, errors.Join(errs...)
}

// Clear removes every committed object.
func (c *contentFileStorage) Clear() error {
	if err := os.RemoveAll(c.objectsDir); err != nil {
		return err
	}
	return os.MkdirAll(c.objectsDir, 0o755)
}

// syncDir flushes a directory entry after a rename. Not every platform
// supports fsync on directories, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

// ctxReader stops a copy as soon as ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
