// Package runlock guards against concurrent sortd runs with an
// advisory file lock. Two processes moving the same files would race
// each other's collision probes.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld means another process holds the run lock.
var ErrHeld = errors.New("another sortd instance is already running")

// Lock is a process-wide run guard backed by a lock file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// DefaultPath returns the lock file location, preferring the user
// cache directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "sortd.lock")
}

// New creates a lock at the given path without acquiring it.
func New(path string) *Lock {
	return &Lock{
		flock: flock.New(path),
		path:  path,
	}
}

// Acquire takes the lock without blocking. A lock held by another
// process returns an error wrapping ErrHeld.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to prepare lock directory: %w", err)
	}
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !acquired {
		return fmt.Errorf("%w (lock file %s)", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock. Releasing a lock that was never acquired is
// a no-op.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
