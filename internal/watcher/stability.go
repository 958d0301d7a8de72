package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

var (
	// ErrFileNotFound means the file disappeared before it settled.
	ErrFileNotFound = errors.New("file not found")
	// ErrFileUnstable means the file was still changing at the timeout.
	ErrFileUnstable = errors.New("file size did not stabilize")
)

const stabilityTimeout = 30 * time.Second

// StabilityChecker waits for a file's size to hold still, so that a
// download or copy in progress is not moved out from under the writer.
type StabilityChecker struct {
	threshold time.Duration // how long the size must stay unchanged
	timeout   time.Duration // give up after this long
	interval  time.Duration // poll cadence
}

// NewStabilityChecker creates a checker with the default timeout. The
// poll interval is derived from the threshold.
func NewStabilityChecker(threshold time.Duration) *StabilityChecker {
	return NewStabilityCheckerWithOptions(threshold, stabilityTimeout)
}

// NewStabilityCheckerWithOptions creates a checker with an explicit
// timeout.
func NewStabilityCheckerWithOptions(threshold, timeout time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   timeout,
		interval:  interval,
	}
}

// WaitForStable blocks until the file's size has held still for the
// threshold. It returns ErrFileNotFound if the file vanishes,
// ErrFileUnstable if the timeout passes first, or the context error
// if ctx is cancelled.
func (s *StabilityChecker) WaitForStable(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := fileSize(path)
	if err != nil {
		return ErrFileNotFound
	}
	stableSince := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			size, err := fileSize(path)
			if err != nil {
				return ErrFileNotFound
			}
			if size != lastSize {
				lastSize = size
				stableSince = time.Now()
				continue
			}
			if time.Since(stableSince) >= s.threshold {
				return nil
			}
		}
	}
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
