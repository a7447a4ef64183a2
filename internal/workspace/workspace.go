// Package workspace manages the on-disk workspace directory that holds run
// history and intermediate files, with flock-based locking so concurrent
// invocations do not corrupt the run database.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another process holds the workspace lock.
var ErrLocked = errors.New("workspace is locked by another process")

// Workspace is a locked workspace directory.
type Workspace struct {
	dir  string
	lock *flock.Flock
}

// Acquire creates dir if needed and takes an exclusive lock on it.
// Returns ErrLocked when another process already holds the lock.
func Acquire(dir string) (*Workspace, error) {
	if dir == "" {
		return nil, errors.New("workspace directory must be set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace %q: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, "capsync.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire workspace lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return &Workspace{dir: dir, lock: lock}, nil
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// RunsDBPath returns the path of the run history database.
func (w *Workspace) RunsDBPath() string {
	return filepath.Join(w.dir, "runs.db")
}

// Release unlocks the workspace.
func (w *Workspace) Release() error {
	if err := w.lock.Unlock(); err != nil {
		return fmt.Errorf("release workspace lock: %w", err)
	}
	return nil
}
