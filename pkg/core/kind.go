package core

import "fmt"

// Kind identifies which kind of record a RecordSet holds.
type Kind int

const (
	KindFermentable Kind = iota
	KindHop
	KindYeast
	KindMisc
	KindWater
	KindRecipe
	KindStyle
	KindMash
	KindEquipment
)

type kindInfo struct {
	name      string // lower-case singular, for messages
	tag       string // record element
	container string // container element
	key       string // catalogue key
}

var kinds = [...]kindInfo{
	KindFermentable: {"fermentable", "FERMENTABLE", "FERMENTABLES", "fermentables"},
	KindHop:         {"hop", "HOP", "HOPS", "hops"},
	KindYeast:       {"yeast", "YEAST", "YEASTS", "yeasts"},
	KindMisc:        {"misc", "MISC", "MISCS", "miscs"},
	KindWater:       {"water", "WATER", "WATERS", "waters"},
	KindRecipe:      {"recipe", "RECIPE", "RECIPES", "recipes"},
	KindStyle:       {"style", "STYLE", "STYLES", "styles"},
	KindMash:        {"mash", "MASH", "MASHS", "mashs"},
	KindEquipment:   {"equipment", "EQUIPMENT", "EQUIPMENTS", "equipments"},
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kinds) }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// MarshalText renders the kind by name, so state dumps stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(kinds[k].name), nil
}

// Tag is the element name of a single record of this kind.
func (k Kind) Tag() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].tag
}

// ContainerTag is the element name wrapping every record of this kind.
func (k Kind) ContainerTag() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].container
}

// CatalogKey is the top-level key naming this kind in a catalogue file.
func (k Kind) CatalogKey() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].key
}

// KindForCatalogKey resolves a catalogue key such as "hops".
func KindForCatalogKey(key string) (Kind, bool) {
	for i, info := range kinds {
		if info.key == key {
			return Kind(i), true
		}
	}
	return 0, false
}

// Kinds returns every record kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

// Format names an output encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts the format names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "xml", "beerxml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
