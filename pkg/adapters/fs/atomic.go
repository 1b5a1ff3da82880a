package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/aretw0/introspection"

	"github.com/aretw0/brewcalc/pkg/core"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "brewcalc-tmp-"

	// DefaultPerm is the mode given to exported documents.
	DefaultPerm os.FileMode = 0o644
)

// AtomicWriter implements core.FileWriter by writing to a temp file in the
// target directory and renaming it over the target.
type AtomicWriter struct {
	Perm os.FileMode

	files atomic.Int64
}

// NewAtomicWriter creates a writer producing files with DefaultPerm.
func NewAtomicWriter() *AtomicWriter {
	return &AtomicWriter{Perm: DefaultPerm}
}

// WriteFile replaces path with data. The directory must exist.
func (a *AtomicWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	perm := a.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := writeFileAtomic(path, data, perm); err != nil {
		return err
	}
	a.files.Add(1)
	return nil
}

// writeFileAtomic writes data to a file atomically by writing to a temp file
// and then renaming it to the target filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // no-op once renamed

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}

// AtomicWriterState exposes the writer counters for observability.
type AtomicWriterState struct {
	Perm         string `json:"perm"`
	FilesWritten int64  `json:"files_written"`
}

// State implements introspection.Introspectable.
func (a *AtomicWriter) State() any {
	return AtomicWriterState{
		Perm:         a.Perm.String(),
		FilesWritten: a.files.Load(),
	}
}

// ComponentType implements introspection.Component.
func (a *AtomicWriter) ComponentType() string {
	return "atomic_file_writer"
}

var (
	_ core.FileWriter              = (*AtomicWriter)(nil)
	_ introspection.Introspectable = (*AtomicWriter)(nil)
	_ introspection.Component      = (*AtomicWriter)(nil)
)
