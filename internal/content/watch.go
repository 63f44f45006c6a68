package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tessro/stepwise/internal/core"
)

// ErrWatchStarted is returned when Start is called twice.
var ErrWatchStarted = errors.New("content watcher already started")

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload sets the callback that receives each reloaded corpus. The
// error is whatever Load reported; the corpus may still be usable.
func WithOnReload(fn func(*core.Corpus, error)) WatchOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// WithOnError sets the callback invoked on watcher errors.
func WithOnError(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reloads a content file or directory when it changes on disk.
type Watcher struct {
	src      string
	dir      string
	isDir    bool
	debounce time.Duration
	onReload func(*core.Corpus, error)
	onError  func(error)

	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	ctx       context.Context
	cancel    context.CancelFunc
	started   bool
	mu        sync.Mutex
}

// NewWatcher creates a watcher for a content file or directory.
func NewWatcher(src string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		src:      abs,
		isDir:    info.IsDir(),
		debounce: DefaultDebounceDuration,
		onReload: func(*core.Corpus, error) {},
		onError:  func(error) {},
	}
	w.dir = abs
	if !w.isDir {
		w.dir = filepath.Dir(abs)
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounce)
	return w, nil
}

// Start begins watching. The watcher stops when ctx is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrWatchStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory even for a single file so atomic renames by
	// editors are seen.
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return err
	}

	w.fsw = fsw
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.started = true
	go w.loop(fsw.Events, fsw.Errors)
	return nil
}

// Stop stops watching and drops any pending reload.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	w.cancel()
	w.fsw.Close()
	w.fsw = nil
	w.debouncer.Cancel()
	w.started = false
}

// Path returns the watched file or directory.
func (w *Watcher) Path() string {
	return w.src
}

func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.debouncer.Trigger(w.reload)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	if w.isDir {
		return IsTopicFile(name)
	}
	return filepath.Base(name) == filepath.Base(w.src)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	started := w.started
	ctx := w.ctx
	w.mu.Unlock()
	if !started {
		return
	}

	corpus, err := Load(ctx, w.src)
	if corpus == nil {
		w.onError(err)
		return
	}
	w.onReload(corpus, err)
}
