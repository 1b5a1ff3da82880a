package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/brewcalc/pkg/core"
)

// Catalog is one loaded catalogue file.
type Catalog struct {
	Path string
	Set  core.RecordSet
}

// ParseCatalog reads a catalogue document:
//
//	hops:
//	  Cascade:
//	    alpha: 5.5
//	    amount: 0.05
//	    use: Boil
//	    time: 60
//
// The single top-level key names the record kind; records keep the order of
// the mapping. An empty document is core.Empty. A missing version defaults to
// core.FormatVersion.
func ParseCatalog(r io.Reader) (core.RecordSet, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Empty{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return core.Empty{}, nil
		}
		root = root.Content[0]
	}
	if isNull(root) {
		return core.Empty{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: catalogue must be a mapping", root.Line)
	}
	if len(root.Content) != 2 {
		return nil, fmt.Errorf("line %d: catalogue must hold exactly one record kind, found %d", root.Line, len(root.Content)/2)
	}

	keyNode, value := root.Content[0], root.Content[1]
	kind, ok := core.KindForCatalogKey(keyNode.Value)
	if !ok {
		return nil, fmt.Errorf("line %d: unknown record kind %q", keyNode.Line, keyNode.Value)
	}
	if !isNull(value) && value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must map names to records", value.Line, keyNode.Value)
	}
	return decodeKind(kind, value)
}

// LoadCatalog parses the catalogue file at path.
func LoadCatalog(path string) (core.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// LoadCatalogs loads every file matching a doublestar pattern such as
// "catalog/**/*.yaml", in lexical order.
func LoadCatalogs(pattern string) ([]Catalog, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	slices.Sort(matches)

	out := make([]Catalog, 0, len(matches))
	for _, path := range matches {
		set, err := LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		out = append(out, Catalog{Path: filepath.Clean(path), Set: set})
	}
	return out, nil
}

func decodeKind(kind core.Kind, n *yaml.Node) (core.RecordSet, error) {
	switch kind {
	case core.KindFermentable:
		return decodeRecords(n, func(r *core.Fermentable, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindHop:
		return decodeRecords(n, func(r *core.Hop, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindYeast:
		return decodeRecords(n, func(r *core.Yeast, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindMisc:
		return decodeRecords(n, func(r *core.Misc, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindWater:
		return decodeRecords(n, func(r *core.Water, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindRecipe:
		return decodeRecords(n, func(r *core.Recipe, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindStyle:
		return decodeRecords(n, func(r *core.Style, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindMash:
		return decodeRecords(n, func(r *core.Mash, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	case core.KindEquipment:
		return decodeRecords(n, func(r *core.Equipment, name string) { r.Name, r.Version = name, versionOr(r.Version) })
	default:
		return nil, fmt.Errorf("unknown record kind %s", kind)
	}
}

func decodeRecords[T core.Record](n *yaml.Node, identify func(r *T, name string)) (*core.Collection[T], error) {
	c := core.NewCollection[T]()
	if isNull(n) {
		return c, nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, value := n.Content[i], n.Content[i+1]
		name := keyNode.Value
		if _, dup := c.Get(name); dup {
			return nil, fmt.Errorf("line %d: duplicate record %q", keyNode.Line, name)
		}

		var r T
		if !isNull(value) {
			if err := value.Decode(&r); err != nil {
				return nil, fmt.Errorf("line %d: %s %q: %w", value.Line, c.Kind(), name, err)
			}
		}
		identify(&r, name)
		c.Put(r)
	}
	return c, nil
}

func versionOr(v int64) int64 {
	if v == 0 {
		return core.FormatVersion
	}
	return v
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") || n.Kind == 0
}
