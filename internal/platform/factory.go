package platform

import (
	"fmt"

	"github.com/aretw0/brewcalc/internal/version"
	"github.com/aretw0/brewcalc/pkg/adapters/beerxml"
	"github.com/aretw0/brewcalc/pkg/adapters/beeryaml"
	"github.com/aretw0/brewcalc/pkg/adapters/fs"
	"github.com/aretw0/brewcalc/pkg/core"
)

// New wires the built-in encoders and the atomic file writer into a service.
//
//	svc, err := brewcalc.New(brewcalc.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.yamlIndent < 0 {
		return nil, fmt.Errorf("invalid yaml indent: %d", o.yamlIndent)
	}

	generator := o.generator
	if generator == "" {
		generator = version.String()
	}
	yamlWriter := beeryaml.NewWriter()
	yamlWriter.Indent = o.yamlIndent

	encoders := []core.Encoder{beerxml.NewWriter(beerxml.WithGenerator(generator)), yamlWriter}
	encoders = append(encoders, o.encoders...)

	files := o.files
	if files == nil {
		aw := fs.NewAtomicWriter()
		if o.filePerm != 0 {
			aw.Perm = o.filePerm
		}
		files = aw
	}

	return core.NewService(core.Config{
		Encoders:  encoders,
		Files:     files,
		Logger:    o.logger,
		Generator: generator,
	}), nil
}
