// Package scanner handles source directory enumeration for sortd.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Entry is one direct child of a source directory, snapshotted at scan
// time. For symlinked entries IsDir reflects the link target.
type Entry struct {
	Name      string // base name
	FullPath  string // absolute path
	IsDir     bool
	IsSymlink bool
}

// Scan enumerates the direct children of directory without recursing.
// Entries come back sorted by name.
func Scan(directory string) ([]Entry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{
				Type: DirectoryNotFound,
				Path: directory,
				Err:  err,
			}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type: DirectoryNotFound,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	// os.ReadDir returns entries sorted by filename.
	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		fullPath := filepath.Join(directory, dirEntry.Name())
		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}

		isSymlink := dirEntry.Type()&os.ModeSymlink != 0
		isDir := dirEntry.IsDir()
		if isSymlink {
			// A symlink to a directory counts as a directory. A broken
			// one stays listed and is caught later as stale.
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			} else {
				isDir = false
			}
		}

		entries = append(entries, Entry{
			Name:      dirEntry.Name(),
			FullPath:  absPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
		})
	}

	return entries, nil
}

// Lookup snapshots a single path the way Scan snapshots directory
// children. Watch mode uses it for freshly created entries.
func Lookup(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	isSymlink := info.Mode()&os.ModeSymlink != 0
	isDir := info.IsDir()
	if isSymlink {
		if target, err := os.Stat(path); err == nil {
			isDir = target.IsDir()
		} else {
			isDir = false
		}
	}

	return Entry{
		Name:      filepath.Base(absPath),
		FullPath:  absPath,
		IsDir:     isDir,
		IsSymlink: isSymlink,
	}, nil
}
