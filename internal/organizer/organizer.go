// Package organizer handles file movement and collision handling for sortd.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MoveErrorType represents the type of move error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source no longer exists.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
	// CollisionExhausted indicates no free destination name was found.
	CollisionExhausted MoveErrorType = "COLLISION_EXHAUSTED"
	// MoveFailed covers the remaining filesystem failures during a move.
	MoveFailed MoveErrorType = "MOVE_FAILED"
)

// MoveError represents an error that occurred during file movement.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// MoveResult represents the outcome of one move.
type MoveResult struct {
	SourcePath      string
	DestinationPath string
	Renamed         bool // a collision suffix was applied
	DryRun          bool // computed only, nothing was mutated
}

// Mover places entries into destination directories, resolving name
// collisions and honouring dry-run. One Mover serves a whole run so its
// resolver can keep the claimed-name set across directories.
type Mover struct {
	resolver *Resolver
	dryRun   bool
}

// NewMover returns a Mover. With dryRun set it computes destinations
// without touching the filesystem.
func NewMover(dryRun bool) *Mover {
	return &Mover{
		resolver: NewResolver(),
		dryRun:   dryRun,
	}
}

// Move places source inside targetDir, creating the directory on real
// runs and suffixing the destination name on collision. Directories
// move wholesale via rename.
func (m *Mover) Move(source, targetDir string) (*MoveResult, error) {
	if _, err := os.Lstat(source); err != nil {
		if os.IsNotExist(err) {
			return nil, &MoveError{
				Type: SourceNotFound,
				Path: source,
				Err:  err,
			}
		}
		return nil, &MoveError{
			Type: MoveFailed,
			Path: source,
			Err:  err,
		}
	}

	if !m.dryRun {
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			if os.IsPermission(err) {
				return nil, &MoveError{
					Type: PermissionDenied,
					Path: targetDir,
					Err:  err,
				}
			}
			return nil, &MoveError{
				Type: MoveFailed,
				Path: targetDir,
				Err:  err,
			}
		}
	}

	destPath, err := m.resolver.Resolve(targetDir, filepath.Base(source))
	if err != nil {
		return nil, err
	}

	result := &MoveResult{
		SourcePath:      source,
		DestinationPath: destPath,
		Renamed:         filepath.Base(destPath) != filepath.Base(source),
		DryRun:          m.dryRun,
	}

	if m.dryRun {
		return result, nil
	}

	if err := os.Rename(source, destPath); err != nil {
		if os.IsPermission(err) {
			return nil, &MoveError{
				Type: PermissionDenied,
				Path: source,
				Err:  err,
			}
		}
		// Rename across devices fails; fall back to copy+delete.
		if err := copyAndDelete(source, destPath); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// copyAndDelete copies a regular file to dst and deletes the original.
// Used as a fallback when os.Rename fails across filesystems.
func copyAndDelete(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return &MoveError{
				Type: SourceNotFound,
				Path: src,
				Err:  err,
			}
		}
		return &MoveError{
			Type: MoveFailed,
			Path: src,
			Err:  err,
		}
	}
	if !srcInfo.Mode().IsRegular() {
		return &MoveError{
			Type: MoveFailed,
			Path: src,
			Err:  errors.New("cannot copy non-regular file across devices"),
		}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsPermission(err) {
			return &MoveError{
				Type: PermissionDenied,
				Path: src,
				Err:  err,
			}
		}
		return &MoveError{
			Type: MoveFailed,
			Path: src,
			Err:  err,
		}
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		if os.IsPermission(err) {
			return &MoveError{
				Type: PermissionDenied,
				Path: dst,
				Err:  err,
			}
		}
		return &MoveError{
			Type: MoveFailed,
			Path: dst,
			Err:  err,
		}
	}

	if err := os.Remove(src); err != nil {
		// Source still present, remove the copy.
		os.Remove(dst)
		if os.IsPermission(err) {
			return &MoveError{
				Type: PermissionDenied,
				Path: src,
				Err:  err,
			}
		}
		return &MoveError{
			Type: MoveFailed,
			Path: src,
			Err:  err,
		}
	}

	return nil
}
