// Package paths resolves the on-device storage layout: the database file,
// the content cache tree and the log directory, all under one per-user
// application directory.
package paths

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-academy-offline/internal/config"
)

// Directory and file names inside the base directory.
const (
	contentDirName = "content"
	objectsDirName = "objects"
	tempDirName    = ".tmp"
	logsDirName    = "logs"
	logFileName    = "core.log"
)

// Layout is the resolved set of storage locations.
type Layout struct {
	Base       string
	DBPath     string
	ContentDir string
	ObjectsDir string
	TempDir    string
	LogsDir    string
	LogFile    string
}

// Resolver computes and prepares the storage layout. Resolution is
// deterministic for a given configuration and idempotent: repeated calls
// return the same layout and create nothing new.
type Resolver struct {
	appID         string
	baseDir       string
	dbFile        string
	userConfigDir func() (string, error)

	once   sync.Once
	layout Layout
	err    error
}

// NewResolver builds a Resolver for the given application id and storage
// settings. cfg.BaseDir, when set, replaces the OS per-user directory.
func NewResolver(appID string, cfg config.ClientStorage) *Resolver {
	return &Resolver{
		appID:         appID,
		baseDir:       cfg.BaseDir,
		dbFile:        cfg.DBFile,
		userConfigDir: os.UserConfigDir,
	}
}

// Resolve returns the storage layout, creating every directory in it.
// Failures are reported as *PathError.
func (r *Resolver) Resolve() (Layout, error) {
	r.once.Do(func() {
		r.layout, r.err = r.resolve()
	})
	return r.layout, r.err
}

// DatabasePath returns the absolute path of the database file.
func (r *Resolver) DatabasePath() (string, error) {
	layout, err := r.Resolve()
	if err != nil {
		return "", err
	}
	return layout.DBPath, nil
}

func (r *Resolver) resolve() (Layout, error) {
	base := r.baseDir
	if base == "" {
		userDir, err := r.userConfigDir()
		if err != nil || userDir == "" {
			return Layout{}, &PathError{Err: ErrNoUserDir}
		}
		base = filepath.Join(userDir, r.appID)
	}

	base, err := filepath.Abs(base)
	if err != nil {
		return Layout{}, &PathError{Path: base, Err: err}
	}

	content := filepath.Join(base, contentDirName)
	layout := Layout{
		Base:       base,
		DBPath:     filepath.Join(base, r.dbFile),
		ContentDir: content,
		ObjectsDir: filepath.Join(content, objectsDirName),
		TempDir:    filepath.Join(content, tempDirName),
		LogsDir:    filepath.Join(base, logsDirName),
	}
	layout.LogFile = filepath.Join(layout.LogsDir, logFileName)

	for _, dir := range []string{layout.Base, layout.ObjectsDir, layout.TempDir, layout.LogsDir} {
		if err := ensureDir(dir); err != nil {
			return Layout{}, err
		}
	}

	return layout, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PathError{Path: dir, Err: err}
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return &PathError{Path: dir, Err: ErrNotWritable}
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}
