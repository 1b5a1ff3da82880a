package beerxml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/brewcalc/internal/version"
	"github.com/aretw0/brewcalc/pkg/core"
)

const declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Writer encodes record sets as BeerXML documents. It holds no state between
// calls and may be shared.
type Writer struct {
	generator string
}

// Option configures a Writer.
type Option func(*Writer)

// WithGenerator overrides the version stamped in the generated-by comment.
// Runs of '-' are collapsed, since "--" may not appear inside an XML comment.
func WithGenerator(v string) Option {
	return func(w *Writer) {
		w.generator = v
	}
}

// NewWriter creates a BeerXML writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{generator: version.String()}
	for _, opt := range opts {
		opt(w)
	}
	w.generator = commentSafe(w.generator)
	return w
}

func commentSafe(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// Format implements core.Encoder.
func (w *Writer) Format() core.Format { return core.FormatXML }

// Write emits the declaration, the generated-by comment and, unless set is
// Empty, one container element holding every record of set.
//
// Unsupported kinds are rejected before anything is written.
func (w *Writer) Write(out io.Writer, set core.RecordSet) error {
	body, err := dispatch(set)
	if err != nil {
		return err
	}

	s := newSink(out)
	s.raw(declaration)
	s.raw(fmt.Sprintf("<!-- written by brewcalc %s: http://brewcalc.org/ -->\n", w.generator))
	if body != nil {
		body(s, 0)
	}
	return s.err
}

// dispatch picks the container writer for the active variant of set.
// A nil body means there is nothing to write after the header.
func dispatch(set core.RecordSet) (func(s *sink, depth int), error) {
	switch set := set.(type) {
	case core.Empty:
		return nil, nil
	case *core.Collection[core.Fermentable]:
		return containerOf(set, writeFermentable), nil
	case *core.Collection[core.Hop]:
		return containerOf(set, writeHop), nil
	case *core.Collection[core.Yeast]:
		return containerOf(set, writeYeast), nil
	case *core.Collection[core.Misc]:
		return containerOf(set, writeMisc), nil
	case *core.Collection[core.Water]:
		return containerOf(set, writeWater), nil
	case *core.Collection[core.Recipe]:
		return nil, unsupported(core.KindRecipe)
	case *core.Collection[core.Style]:
		return nil, unsupported(core.KindStyle)
	case *core.Collection[core.Mash]:
		return nil, unsupported(core.KindMash)
	case *core.Collection[core.Equipment]:
		return nil, unsupported(core.KindEquipment)
	case nil:
		return nil, errors.New("beerxml: nil record set")
	default:
		return nil, fmt.Errorf("beerxml: unknown record set %T", set)
	}
}

func containerOf[T core.Record](c *core.Collection[T], element func(*sink, int, T)) func(*sink, int) {
	return func(s *sink, depth int) {
		collection(s, depth, c.Kind().ContainerTag(), c, element)
	}
}

func unsupported(k core.Kind) error {
	return &core.UnsupportedKindError{Kind: k, Format: core.FormatXML}
}

// Supports reports whether k has a BeerXML writer.
func Supports(k core.Kind) bool {
	switch k {
	case core.KindFermentable, core.KindHop, core.KindYeast, core.KindMisc, core.KindWater:
		return true
	default:
		return false
	}
}

var _ core.Encoder = (*Writer)(nil)
