package fileset

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the burst of writes an editor performs on
// save into a single invalidation per file.
const defaultDebounce = 150 * time.Millisecond

// Watcher monitors the parent directories of a set of open files and
// reports, debounced, which watched file changed. Cache invalidation
// itself (clearing OpenFile.Layout, re-parsing) is left to the caller;
// Watcher only tells it when.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	watched   map[string]bool // absolute file path -> watched
	debounce  time.Duration

	changed chan string
	errors  chan error
	done    chan struct{}

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewWatcher creates a Watcher over the given file paths using the
// default debounce window.
func NewWatcher(paths []string) (*Watcher, error) {
	return NewWatcherWithDebounce(paths, defaultDebounce)
}

// NewWatcherWithDebounce creates a Watcher over the given file paths with
// a custom debounce window.
func NewWatcherWithDebounce(paths []string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		watched:   make(map[string]bool, len(paths)),
		debounce:  debounce,
		changed:   make(chan string, 8),
		errors:    make(chan error, 1),
		done:      make(chan struct{}),
		timers:    make(map[string]*time.Timer),
	}

	dirsAdded := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}

		w.watched[abs] = true

		dir := filepath.Dir(abs)
		if dirsAdded[dir] {
			continue
		}

		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()

			return nil, err
		}

		dirsAdded[dir] = true
	}

	go w.loop()

	return w, nil
}

// Changed returns a channel receiving the absolute path of a watched file
// each time it settles after a write/create event.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Errors returns a channel receiving errors from the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)

	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.watched[abs] {
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[abs]; ok {
		resetTimer(timer, w.debounce)

		return
	}

	w.timers[abs] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, abs)
		w.mu.Unlock()

		w.sendChanged(abs)
	})
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}

func (w *Watcher) sendChanged(path string) {
	select {
	case w.changed <- path:
	default:
		// Channel full, event coalesced.
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, error dropped.
	}
}
