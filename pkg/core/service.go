package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"
)

// Encoder writes a RecordSet in one output format.
// Implementations write straight to w and return the first error they hit;
// output produced before a failure is not a valid document.
type Encoder interface {
	Format() Format
	Write(w io.Writer, set RecordSet) error
}

// FileWriter replaces the content of a file in one step.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// Config holds the collaborators of a Service.
type Config struct {
	Encoders []Encoder
	Files    FileWriter
	Logger   *slog.Logger
	// Generator is the version stamped by the encoders, reported in State.
	Generator string
}

// Service exports record sets through the registered encoders.
type Service struct {
	mu        sync.RWMutex
	encoders  map[Format]Encoder
	files     FileWriter
	logger    *slog.Logger
	generator string
	written   int
	lastErr   error
}

// NewService creates a new Service. A later encoder for the same format wins.
func NewService(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		encoders:  make(map[Format]Encoder, len(cfg.Encoders)),
		files:     cfg.Files,
		logger:    logger,
		generator: cfg.Generator,
	}
	for _, e := range cfg.Encoders {
		s.encoders[e.Format()] = e
	}
	return s
}

// Formats lists the registered formats, sorted.
func (s *Service) Formats() []Format {
	out := make([]Format, 0, len(s.encoders))
	for f := range s.encoders {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func (s *Service) encoder(f Format) (Encoder, error) {
	e, ok := s.encoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return e, nil
}

// Write encodes set to an already open sink. The sink is not closed.
func (s *Service) Write(ctx context.Context, f Format, w io.Writer, set RecordSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc, err := s.encoder(f)
	if err != nil {
		return err
	}
	kind, _ := KindOf(set)
	s.logger.Debug("writing record set", "format", f, "kind", kind, "records", lenOf(set))

	err = enc.Write(w, set)
	s.record(err)
	if err != nil {
		s.logger.Error("write failed", "format", f, "error", err)
	}
	return err
}

// WriteFile creates or truncates path and encodes set into it.
// The file is closed on every path. If encoding fails the partial file is left
// in place; use WriteFileAtomic to keep the previous content instead.
func (s *Service) WriteFile(ctx context.Context, f Format, path string, set RecordSet) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.encoder(f); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := s.Write(ctx, f, file, set); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Info("document written", "path", path, "format", f)
	return nil
}

// WriteFileAtomic encodes set in memory and hands the bytes to the FileWriter,
// so a failed export never leaves a truncated file behind.
func (s *Service) WriteFileAtomic(ctx context.Context, f Format, path string, set RecordSet) error {
	if s.files == nil {
		return errors.New("service has no file writer configured")
	}
	var buf bytes.Buffer
	if err := s.Write(ctx, f, &buf, set); err != nil {
		return err
	}
	if err := s.files.WriteFile(ctx, path, buf.Bytes()); err != nil {
		s.record(err)
		return err
	}
	s.logger.Info("document written", "path", path, "format", f, "atomic", true)
	return nil
}

func (s *Service) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return
	}
	s.written++
}

func lenOf(set RecordSet) int {
	if set == nil {
		return 0
	}
	return set.Len()
}
