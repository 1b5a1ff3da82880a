package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/brewcalc/pkg/adapters/fs"
)

// CatalogChanged is emitted when a catalogue file matching the watched pattern
// is created or saved.
type CatalogChanged struct {
	Path string
}

func (e CatalogChanged) String() string { return "catalog changed: " + e.Path }

// SourceConfig configures a catalogue Source.
type SourceConfig struct {
	Pattern  string
	Debounce time.Duration
	Logger   *slog.Logger
}

type catalogSource struct {
	watcher *fs.Watcher
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits a CatalogChanged for every
// catalogue change. The event channel is closed once the watcher stops.
func NewSource(cfg SourceConfig) (lifecycle.Source, error) {
	s := &catalogSource{out: make(chan lifecycle.Event)}
	w, err := fs.NewWatcher(fs.WatchConfig{
		Pattern:  cfg.Pattern,
		Debounce: cfg.Debounce,
		Logger:   cfg.Logger,
		OnChange: s.emit,
	})
	if err != nil {
		return nil, err
	}
	s.watcher = w
	return s, nil
}

func (s *catalogSource) Events() <-chan lifecycle.Event {
	return s.out
}

// emit runs on the watcher goroutine, so a slow consumer delays later events
// instead of dropping them.
func (s *catalogSource) emit(ctx context.Context, path string) error {
	select {
	case s.out <- CatalogChanged{Path: path}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *catalogSource) Start(ctx context.Context) error {
	if err := s.watcher.Start(ctx); err != nil {
		close(s.out)
		return err
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-s.watcher.Done()
		close(s.out)
		return nil
	})
	return nil
}
