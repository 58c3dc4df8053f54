// Package watch re-runs generation when the watched input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDelay = 200 * time.Millisecond

// Event describes a settled change of a watched file.
type Event struct {
	Path      string
	Operation string
	Timestamp time.Time
}

// Watcher watches individual files. Editors often replace a file instead of
// writing it in place, so the parent directory is watched and events are
// filtered by file path.
type Watcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.Logger
	debouncer *debouncer

	mu    sync.RWMutex
	files map[string]bool
	dirs  map[string]bool
}

func New(logger *zap.Logger, delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	return &Watcher{
		watcher:   fw,
		logger:    logger,
		debouncer: newDebouncer(delay),
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
	}, nil
}

// Add starts watching path. Adding the same file twice is a no-op.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}

	w.files[abs] = true
	w.logger.Debug("watching file", zap.String("path", abs))
	return nil
}

// Run delivers debounced events to fn until ctx is done, then releases the
// underlying watcher.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	defer w.close()

	w.mu.RLock()
	w.logger.Info("file watcher started", zap.Int("files", len(w.files)))
	w.mu.RUnlock()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event, fn)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event, fn func(Event)) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.RLock()
	watched := w.files[filepath.Clean(event.Name)]
	w.mu.RUnlock()
	if !watched {
		return
	}

	ev := Event{
		Path:      event.Name,
		Operation: operation(event.Op),
		Timestamp: time.Now(),
	}
	w.logger.Debug("file event detected",
		zap.String("path", ev.Path),
		zap.String("operation", ev.Operation),
	)

	w.debouncer.debounce(ev.Path, func() { fn(ev) })
}

func (w *Watcher) close() {
	w.debouncer.stop()
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing file watcher", zap.Error(err))
	}
	w.logger.Info("file watcher stopped")
}

func operation(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return "unknown"
	}
}

// debouncer collapses bursts of events per key into one call fired after
// the key has been quiet for delay. stop waits for calls already running.
type debouncer struct {
	delay    time.Duration
	mu       sync.Mutex
	timers   map[string]*time.Timer
	stopped  bool
	inflight sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) debounce(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}

	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.inflight.Add(1)
		d.mu.Unlock()

		defer d.inflight.Done()
		fn()
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.inflight.Wait()
}
