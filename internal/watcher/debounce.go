package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events per path. The callback fires
// once per path after the delay elapses with no further events.
type Debouncer struct {
	delay    time.Duration
	callback func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewDebouncer creates a debouncer that invokes callback after delay.
func NewDebouncer(delay time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: callback,
		pending:  make(map[string]*time.Timer),
	}
}

// Add schedules path for processing. A path already pending has its
// timer reset.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.pending[path]; ok {
		timer.Stop()
	}

	d.pending[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, path)
		d.mu.Unlock()

		// Callback runs outside the lock so it may call back in.
		d.callback(path)
	})
}

// Cancel drops a pending path. It reports whether one was pending.
func (d *Debouncer) Cancel(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	timer, ok := d.pending[path]
	if !ok {
		return false
	}
	timer.Stop()
	delete(d.pending, path)
	return true
}

// CancelAll drops every pending path.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, timer := range d.pending {
		timer.Stop()
		delete(d.pending, path)
	}
}

// PendingCount returns the number of paths waiting on their timer.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// IsPending reports whether path has an outstanding timer.
func (d *Debouncer) IsPending(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[path]
	return ok
}
