package beerxml

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/brewcalc/pkg/core"
)

// WriterState exposes the writer configuration for observability.
type WriterState struct {
	Generator string      `json:"generator"`
	Supported []core.Kind `json:"supported_kinds"`
}

// State implements introspection.Introspectable.
func (w *Writer) State() any {
	var kinds []core.Kind
	for _, k := range core.Kinds() {
		if Supports(k) {
			kinds = append(kinds, k)
		}
	}
	return WriterState{Generator: w.generator, Supported: kinds}
}

// ComponentType implements introspection.Component.
func (w *Writer) ComponentType() string {
	return "beerxml_writer"
}

var _ introspection.Introspectable = (*Writer)(nil)
var _ introspection.Component = (*Writer)(nil)
