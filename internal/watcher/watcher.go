// Package watcher provides filesystem monitoring for sorting new files
// as they appear.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watcher settings.
type Config struct {
	Debounce        time.Duration // quiet period before a new file is processed
	StableThreshold time.Duration // how long the file size must hold still
	IgnorePatterns  []string      // temp-file patterns skipped outright
}

// DefaultConfig returns the settings watch mode runs with.
func DefaultConfig() *Config {
	return &Config{
		Debounce:        2 * time.Second,
		StableThreshold: time.Second,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// Summary contains stats from one watch session.
type Summary struct {
	FilesMoved   int
	FilesSkipped int
	Duration     time.Duration
}

// FileHandler processes one settled file and reports whether it was
// moved.
type FileHandler func(path string) (moved bool, err error)

// Watcher monitors directories and feeds newly created files to its
// handler once they settle: a create event is debounced, then the file
// must hold a stable size, then the handler runs.
type Watcher struct {
	config    *Config
	handler   FileHandler
	fsWatcher *fsnotify.Watcher
	filter    *FileFilter
	debouncer *Debouncer
	stability *StabilityChecker

	// OnError, when set, receives transient watch errors.
	OnError func(error)

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	wg        sync.WaitGroup
	handlers  sync.WaitGroup
	startTime time.Time

	mu           sync.Mutex
	stopping     bool
	filesMoved   int
	filesSkipped int
}

// New creates a Watcher. A nil config gets defaults. The handler is
// called once per created file after it settles.
func New(config *Config, handler FileHandler) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	w := &Watcher{
		config:    config,
		handler:   handler,
		filter:    NewFileFilter(config.IgnorePatterns),
		stability: NewStabilityChecker(config.StableThreshold),
	}
	w.debouncer = NewDebouncer(config.Debounce, w.processSettled)
	return w
}

// Start begins watching the given directories. The watcher runs until
// Stop is called.
func (w *Watcher) Start(dirs []string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			w.fsWatcher.Close()
			return err
		}
		if err := w.fsWatcher.Add(absDir); err != nil {
			w.fsWatcher.Close()
			return err
		}
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.done = make(chan struct{})
	w.startTime = time.Now()
	w.mu.Lock()
	w.stopping = false
	w.mu.Unlock()

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts the watcher down, waits for in-flight handlers, and
// returns the session summary.
func (w *Watcher) Stop() *Summary {
	w.mu.Lock()
	w.stopping = true
	w.mu.Unlock()

	// Cancel pending debounce timers and abort stability waits, then
	// stop the event loop.
	w.debouncer.CancelAll()
	if w.cancel != nil {
		w.cancel()
	}
	close(w.done)
	w.wg.Wait()
	w.handlers.Wait()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return &Summary{
		FilesMoved:   w.filesMoved,
		FilesSkipped: w.filesSkipped,
		Duration:     time.Since(w.startTime),
	}
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fsWatcher != nil
	}
}

// processEvents pumps fsnotify events into the debouncer.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Only creations matter, modifications of files already
			// in a source directory are the batch pass's business.
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.handleCreate(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}

// handleCreate filters temp files and schedules everything else.
func (w *Watcher) handleCreate(path string) {
	if w.filter.ShouldIgnore(path) {
		w.recordSkip()
		return
	}
	w.debouncer.Add(path)
}

// processSettled runs after the debounce quiet period. The file must
// still exist and hold a stable size before the handler sees it.
func (w *Watcher) processSettled(path string) {
	w.mu.Lock()
	if w.stopping {
		w.mu.Unlock()
		return
	}
	w.handlers.Add(1)
	w.mu.Unlock()
	defer w.handlers.Done()

	if err := w.stability.WaitForStable(w.ctx, path); err != nil {
		// Vanished mid-wait, still growing at the timeout, or shutdown.
		w.recordSkip()
		return
	}

	if w.handler == nil {
		w.recordSkip()
		return
	}

	moved, err := w.handler(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil || !moved {
		w.filesSkipped++
		return
	}
	w.filesMoved++
}

func (w *Watcher) recordSkip() {
	w.mu.Lock()
	w.filesSkipped++
	w.mu.Unlock()
}
