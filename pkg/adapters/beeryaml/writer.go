// Package beeryaml writes fermentable collections as YAML.
//
// Only fermentables have a YAML form; every other record set, Empty included,
// produces no output.
package beeryaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/brewcalc/pkg/core"
)

// Writer encodes fermentables as a YAML mapping of name to fields.
type Writer struct {
	// Indent is the number of spaces per nesting level. Zero means 2.
	Indent int
}

// NewWriter creates a YAML writer with two-space indentation.
func NewWriter() *Writer {
	return &Writer{Indent: 2}
}

// Format implements core.Encoder.
func (w *Writer) Format() core.Format { return core.FormatYAML }

// Write encodes set to out. Records keep their collection order.
func (w *Writer) Write(out io.Writer, set core.RecordSet) error {
	c, ok := set.(*core.Collection[core.Fermentable])
	if !ok {
		return nil
	}

	root, err := fermentableNode(c)
	if err != nil {
		return err
	}

	indent := w.Indent
	if indent == 0 {
		indent = 2
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(indent)
	if err := encoder.Encode(root); err != nil {
		return err
	}
	return encoder.Close()
}

func fermentableNode(c *core.Collection[core.Fermentable]) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for f := range c.All() {
		var value yaml.Node
		if err := value.Encode(f); err != nil {
			return nil, fmt.Errorf("failed to encode fermentable %q: %w", f.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		root.Content = append(root.Content, key, &value)
	}
	return root, nil
}

var _ core.Encoder = (*Writer)(nil)
