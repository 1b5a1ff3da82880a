package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// WatchConfig configures a Watcher.
type WatchConfig struct {
	// Pattern selects the catalogue files, e.g. "catalog/**/*.yaml".
	Pattern string
	// OnChange runs for every created or modified file matching Pattern.
	// Calls are serialised on the watcher goroutine.
	OnChange func(ctx context.Context, path string) error
	// OnError receives OnChange failures and fsnotify errors. Optional.
	OnError  func(error)
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watcher re-runs OnChange whenever a catalogue file matching the pattern changes.
type Watcher struct {
	cfg  WatchConfig
	base string

	watcher *fsnotify.Watcher
	ready   chan string
	done    chan struct{}

	mu      sync.Mutex
	timers  map[string]*time.Timer
	active  bool
	changes int
	lastErr error
}

// NewWatcher validates the pattern and prepares a watcher. Nothing is watched
// until Start.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	if cfg.OnChange == nil {
		return nil, errors.New("watch: OnChange is required")
	}
	pattern := filepath.ToSlash(filepath.Clean(cfg.Pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("watch: invalid pattern %q", cfg.Pattern)
	}
	cfg.Pattern = pattern
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	base, _ := doublestar.SplitPattern(pattern)
	return &Watcher{
		cfg:    cfg,
		base:   filepath.FromSlash(base),
		ready:  make(chan string, 16),
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching the pattern's base directory and its subdirectories.
// The watcher stops when ctx is cancelled; Done is closed afterwards.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(watcher, w.base); err != nil {
		_ = watcher.Close()
		return err
	}
	w.watcher = watcher
	w.setActive(true)
	w.cfg.Logger.Debug("watching catalogues", "base", w.base, "pattern", w.cfg.Pattern)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.fail(fmt.Errorf("watcher panic: %w", err))
	}))
	return nil
}

// Done is closed once the event loop has exited.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) run(ctx context.Context) error {
	defer close(w.done)
	defer w.setActive(false)
	defer w.watcher.Close()
	defer w.stopTimers()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case path := <-w.ready:
			w.cfg.Logger.Debug("catalogue changed", "path", path)
			if err := w.cfg.OnChange(ctx, path); err != nil {
				w.fail(fmt.Errorf("%s: %w", path, err))
				continue
			}
			w.mu.Lock()
			w.changes++
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addRecursive(w.watcher, event.Name); err != nil {
				w.fail(err)
			}
			return
		}
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.matches(event.Name) {
		return
	}
	w.schedule(ctx, filepath.Clean(event.Name))
}

func (w *Watcher) matches(path string) bool {
	ok, err := doublestar.PathMatch(filepath.FromSlash(w.cfg.Pattern), filepath.Clean(path))
	return err == nil && ok
}

// schedule delivers path to the loop once it has been quiet for the debounce window.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Reset(w.cfg.Debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.cfg.Debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		select {
		case w.ready <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

func (w *Watcher) fail(err error) {
	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
	w.cfg.Logger.Error("watch error", "error", err)
	if w.cfg.OnError != nil {
		w.cfg.OnError(err)
	}
}

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// WatcherState exposes the watcher state for observability.
type WatcherState struct {
	Pattern   string `json:"pattern"`
	Base      string `json:"base"`
	Active    bool   `json:"active"`
	Changes   int    `json:"changes_handled"`
	Pending   int    `json:"pending"`
	LastError string `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := WatcherState{
		Pattern: w.cfg.Pattern,
		Base:    w.base,
		Active:  w.active,
		Changes: w.changes,
		Pending: len(w.timers),
	}
	if w.lastErr != nil {
		st.LastError = w.lastErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "catalogue_watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
