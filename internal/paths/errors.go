package paths

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUserDir is returned when the OS does not report a per-user
	// configuration directory and no base directory override is set.
	ErrNoUserDir = errors.New("per-user application directory is unavailable")

	// ErrNotWritable is returned when a storage directory exists but cannot
	// be written to.
	ErrNotWritable = errors.New("storage directory is not writable")
)

// PathError reports a storage location that could not be resolved or
// created.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("resolve storage path: %v", e.Err)
	}
	return fmt.Sprintf("resolve storage path %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
