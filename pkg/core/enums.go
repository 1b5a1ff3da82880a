package core

// FermentableType is the type of a fermentable.
type FermentableType int

const (
	// FermentableGrain is grain.
	FermentableGrain FermentableType = iota
	// FermentableSugar is sugar.
	FermentableSugar
	// FermentableExtract is liquid extract.
	FermentableExtract
	// FermentableDryExtract is dry extract.
	FermentableDryExtract
	// FermentableAdjunct is adjunct.
	FermentableAdjunct
)

var fermentableTypes = newCodec[FermentableType]("FermentableType", "Grain", "Sugar", "Extract", "Dry Extract", "Adjunct")

func (t FermentableType) String() string { return fermentableTypes.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t FermentableType) MarshalText() ([]byte, error) { return fermentableTypes.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FermentableType) UnmarshalText(text []byte) error {
	return fermentableTypes.unmarshal(t, text)
}

// ParseFermentableType returns the FermentableType whose canonical token is s.
func ParseFermentableType(s string) (FermentableType, error) { return fermentableTypes.parse(s) }

// FermentableTypeValues returns every FermentableType in declaration order.
func FermentableTypeValues() []FermentableType { return fermentableTypes.values() }

// HopUse describes when a hop is added.
type HopUse int

const (
	// HopUseBoil is boil addition.
	HopUseBoil HopUse = iota
	// HopUseDryHop is dry hopping.
	HopUseDryHop
	// HopUseMash is mash hopping.
	HopUseMash
	// HopUseFirstWort is first wort hopping.
	HopUseFirstWort
	// HopUseAroma is aroma (whirlpool) addition.
	HopUseAroma
)

var hopUses = newCodec[HopUse]("HopUse", "Boil", "Dry Hop", "Mash", "First Wort", "Aroma")

func (t HopUse) String() string { return hopUses.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t HopUse) MarshalText() ([]byte, error) { return hopUses.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *HopUse) UnmarshalText(text []byte) error { return hopUses.unmarshal(t, text) }

// ParseHopUse returns the HopUse whose canonical token is s.
func ParseHopUse(s string) (HopUse, error) { return hopUses.parse(s) }

// HopUseValues returns every HopUse in declaration order.
func HopUseValues() []HopUse { return hopUses.values() }

// HopType classifies what a hop is used for.
type HopType int

const (
	// HopTypeBittering is bittering hop.
	HopTypeBittering HopType = iota
	// HopTypeAroma is aroma hop.
	HopTypeAroma
	// HopTypeBoth is dual purpose hop.
	HopTypeBoth
)

var hopTypes = newCodec[HopType]("HopType", "Bittering", "Aroma", "Both")

func (t HopType) String() string { return hopTypes.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t HopType) MarshalText() ([]byte, error) { return hopTypes.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *HopType) UnmarshalText(text []byte) error { return hopTypes.unmarshal(t, text) }

// ParseHopType returns the HopType whose canonical token is s.
func ParseHopType(s string) (HopType, error) { return hopTypes.parse(s) }

// HopTypeValues returns every HopType in declaration order.
func HopTypeValues() []HopType { return hopTypes.values() }

// HopForm describes the physical form of a hop.
type HopForm int

const (
	// HopPellet is pellets.
	HopPellet HopForm = iota
	// HopPlug is plugs.
	HopPlug
	// HopLeaf is whole leaf.
	HopLeaf
)

var hopForms = newCodec[HopForm]("HopForm", "Pellet", "Plug", "Leaf")

func (t HopForm) String() string { return hopForms.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t HopForm) MarshalText() ([]byte, error) { return hopForms.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *HopForm) UnmarshalText(text []byte) error { return hopForms.unmarshal(t, text) }

// ParseHopForm returns the HopForm whose canonical token is s.
func ParseHopForm(s string) (HopForm, error) { return hopForms.parse(s) }

// HopFormValues returns every HopForm in declaration order.
func HopFormValues() []HopForm { return hopForms.values() }

// YeastType is the type of a yeast.
type YeastType int

const (
	// YeastAle is ale (top-fermenting) yeast.
	YeastAle YeastType = iota
	// YeastLager is lager (bottom-fermenting) yeast.
	YeastLager
	// YeastWheat is wheat yeast.
	YeastWheat
	// YeastWine is wine yeast.
	YeastWine
	// YeastChampagne is champagne yeast.
	YeastChampagne
)

var yeastTypes = newCodec[YeastType]("YeastType", "Ale", "Lager", "Wheat", "Wine", "Champagne")

func (t YeastType) String() string { return yeastTypes.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t YeastType) MarshalText() ([]byte, error) { return yeastTypes.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *YeastType) UnmarshalText(text []byte) error { return yeastTypes.unmarshal(t, text) }

// ParseYeastType returns the YeastType whose canonical token is s.
func ParseYeastType(s string) (YeastType, error) { return yeastTypes.parse(s) }

// YeastTypeValues returns every YeastType in declaration order.
func YeastTypeValues() []YeastType { return yeastTypes.values() }

// YeastForm describes the form a yeast is supplied in.
type YeastForm int

const (
	// YeastLiquid is liquid yeast.
	YeastLiquid YeastForm = iota
	// YeastDry is dry yeast.
	YeastDry
	// YeastSlant is yeast on a slant.
	YeastSlant
	// YeastCulture is a yeast culture.
	YeastCulture
)

// "Slate" is accepted on input for catalogues written by older tools.
var yeastForms = newCodec[YeastForm]("YeastForm", "Liquid", "Dry", "Slant", "Culture").alias("Slate", YeastSlant)

func (t YeastForm) String() string { return yeastForms.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t YeastForm) MarshalText() ([]byte, error) { return yeastForms.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *YeastForm) UnmarshalText(text []byte) error { return yeastForms.unmarshal(t, text) }

// ParseYeastForm returns the YeastForm whose canonical token is s.
func ParseYeastForm(s string) (YeastForm, error) { return yeastForms.parse(s) }

// YeastFormValues returns every YeastForm in declaration order.
func YeastFormValues() []YeastForm { return yeastForms.values() }

// YeastFlocculation describes how well a yeast flocculates.
type YeastFlocculation int

const (
	FlocculationLow YeastFlocculation = iota
	FlocculationMedium
	FlocculationHigh
	FlocculationVeryHigh
)

var yeastFlocculations = newCodec[YeastFlocculation]("YeastFlocculation", "Low", "Medium", "High", "Very High")

func (t YeastFlocculation) String() string { return yeastFlocculations.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t YeastFlocculation) MarshalText() ([]byte, error) { return yeastFlocculations.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *YeastFlocculation) UnmarshalText(text []byte) error {
	return yeastFlocculations.unmarshal(t, text)
}

// ParseYeastFlocculation returns the YeastFlocculation whose canonical token is s.
func ParseYeastFlocculation(s string) (YeastFlocculation, error) { return yeastFlocculations.parse(s) }

// YeastFlocculationValues returns every YeastFlocculation in declaration order.
func YeastFlocculationValues() []YeastFlocculation { return yeastFlocculations.values() }

// MiscType is the type of a miscellaneous ingredient.
type MiscType int

const (
	MiscSpice MiscType = iota
	MiscFining
	MiscWaterAgent
	MiscHerb
	MiscFlavor
	MiscOther
)

var miscTypes = newCodec[MiscType]("MiscType", "Spice", "Fining", "Water Agent", "Herb", "Flavor", "Other")

func (t MiscType) String() string { return miscTypes.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t MiscType) MarshalText() ([]byte, error) { return miscTypes.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MiscType) UnmarshalText(text []byte) error { return miscTypes.unmarshal(t, text) }

// ParseMiscType returns the MiscType whose canonical token is s.
func ParseMiscType(s string) (MiscType, error) { return miscTypes.parse(s) }

// MiscTypeValues returns every MiscType in declaration order.
func MiscTypeValues() []MiscType { return miscTypes.values() }

// MiscUse describes when a miscellaneous ingredient is added.
type MiscUse int

const (
	MiscUseBoil MiscUse = iota
	MiscUseMash
	MiscUsePrimary
	MiscUseSecondary
	MiscUseBottling
)

var miscUses = newCodec[MiscUse]("MiscUse", "Boil", "Mash", "Primary", "Secondary", "Bottling")

func (t MiscUse) String() string { return miscUses.format(t) }

// MarshalText implements encoding.TextMarshaler.
func (t MiscUse) MarshalText() ([]byte, error) { return miscUses.marshal(t) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MiscUse) UnmarshalText(text []byte) error { return miscUses.unmarshal(t, text) }

// ParseMiscUse returns the MiscUse whose canonical token is s.
func ParseMiscUse(s string) (MiscUse, error) { return miscUses.parse(s) }

// MiscUseValues returns every MiscUse in declaration order.
func MiscUseValues() []MiscUse { return miscUses.values() }
