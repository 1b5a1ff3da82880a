package brewcalc

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/brewcalc/internal/platform"
	"github.com/aretw0/brewcalc/internal/version"
	"github.com/aretw0/brewcalc/pkg/core"
)

// Version is the release version, also stamped into every BeerXML document.
var Version = version.String()

// --- Types ---

// RecordSet is a public alias for core.RecordSet.
type RecordSet = core.RecordSet

// Service is a public alias for the export service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring brewcalc.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithGenerator overrides the version written in the BeerXML generated-by comment.
func WithGenerator(v string) Option {
	return platform.WithGenerator(v)
}

// WithEncoder registers an extra encoder, replacing a built-in one for the same format.
func WithEncoder(e core.Encoder) Option {
	return platform.WithEncoder(e)
}

// WithFileWriter replaces the writer used for atomic file exports.
func WithFileWriter(w core.FileWriter) Option {
	return platform.WithFileWriter(w)
}

// WithYAMLIndent sets the indentation of the YAML output.
func WithYAMLIndent(n int) Option {
	return platform.WithYAMLIndent(n)
}

// WithFilePerm sets the mode of files written atomically.
func WithFilePerm(perm os.FileMode) Option {
	return platform.WithFilePerm(perm)
}

// --- Factory ---

// New creates a new export service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// --- Operations ---

// WriteXML writes set as a BeerXML document to an already open sink.
func WriteXML(w io.Writer, set RecordSet) error {
	return write(func(svc *core.Service) error {
		return svc.Write(context.Background(), core.FormatXML, w, set)
	})
}

// WriteXMLFile creates or truncates path and writes set to it as BeerXML.
func WriteXMLFile(path string, set RecordSet) error {
	return write(func(svc *core.Service) error {
		return svc.WriteFile(context.Background(), core.FormatXML, path, set)
	})
}

// WriteYAML writes a fermentable collection as YAML. Other sets write nothing.
func WriteYAML(w io.Writer, set RecordSet) error {
	return write(func(svc *core.Service) error {
		return svc.Write(context.Background(), core.FormatYAML, w, set)
	})
}

// WriteYAMLFile creates or truncates path and writes set to it as YAML.
func WriteYAMLFile(path string, set RecordSet) error {
	return write(func(svc *core.Service) error {
		return svc.WriteFile(context.Background(), core.FormatYAML, path, set)
	})
}

func write(fn func(*core.Service) error) error {
	svc, err := platform.New()
	if err != nil {
		return err
	}
	return fn(svc)
}
