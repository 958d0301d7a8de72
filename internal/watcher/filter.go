package watcher

import (
	"path/filepath"

	"sortd/internal/matcher"
)

// DefaultIgnorePatterns returns the temp and partial-download patterns
// the watcher never processes. Browsers rename these when the real
// file is complete, which raises a fresh create event.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.download",
		"*.crdownload",
		"*.partial",
		".~*",
	}
}

// FileFilter decides which created files the watcher skips outright.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a filter over the given patterns.
func NewFileFilter(patterns []string) *FileFilter {
	return &FileFilter{patterns: patterns}
}

// ShouldIgnore reports whether the file's base name matches any
// ignore pattern.
func (f *FileFilter) ShouldIgnore(path string) bool {
	name := filepath.Base(path)
	_, ok := matcher.MatchAny(f.patterns, name)
	return ok
}

// Patterns returns the active ignore patterns.
func (f *FileFilter) Patterns() []string {
	return f.patterns
}
