package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/brewcalc/pkg/core"
)

// options holds the internal configuration for the export service.
type options struct {
	logger     *slog.Logger
	generator  string
	encoders   []core.Encoder
	files      core.FileWriter
	yamlIndent int
	filePerm   os.FileMode
}

// Option defines a functional option for configuring brewcalc.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		yamlIndent: 2,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGenerator overrides the version written in the BeerXML generated-by comment.
// Defaults to the module version.
func WithGenerator(v string) Option {
	return func(o *options) {
		o.generator = v
	}
}

// WithEncoder registers an extra encoder. An encoder for a format that is
// already registered replaces the built-in one.
func WithEncoder(e core.Encoder) Option {
	return func(o *options) {
		o.encoders = append(o.encoders, e)
	}
}

// WithFileWriter replaces the file writer used by atomic exports
// (e.g. a mock in tests).
func WithFileWriter(w core.FileWriter) Option {
	return func(o *options) {
		o.files = w
	}
}

// WithYAMLIndent sets the indentation of the YAML output. Defaults to 2.
func WithYAMLIndent(n int) Option {
	return func(o *options) {
		o.yamlIndent = n
	}
}

// WithFilePerm sets the mode of files written atomically. Defaults to 0644.
func WithFilePerm(perm os.FileMode) Option {
	return func(o *options) {
		o.filePerm = perm
	}
}
