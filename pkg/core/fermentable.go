package core

// Fermentable is a grain, sugar, extract or adjunct.
//
// Several optional fields only apply to some types (see Inapplicable). They are
// kept and written whenever they are set, whatever the type.
type Fermentable struct {
	// Name is the collection key and is not part of the field body.
	Name    string          `yaml:"-"`
	Version int64           `yaml:"version"`
	Type    FermentableType `yaml:"type"`
	// Amount in kg.
	Amount float64 `yaml:"amount"`
	// Yield is the percent dry yield (fine grain) for grains, or the raw yield
	// by weight for extracts, adjuncts and sugars.
	Yield float64 `yaml:"yield"`
	// Color in Lovibond units (SRM for liquid extracts).
	Color        float64 `yaml:"color"`
	AddAfterBoil bool    `yaml:"add_after_boil"`

	Origin   *string `yaml:"origin,omitempty"`
	Supplier *string `yaml:"supplier,omitempty"`
	Notes    *string `yaml:"notes,omitempty"`
	// Grain and Adjunct only.
	CoarseFineDiff *float64 `yaml:"coarse_fine_diff,omitempty"`
	Moisture       *float64 `yaml:"moisture,omitempty"`
	DiastaticPower *float64 `yaml:"diastatic_power,omitempty"`
	Protein        *float64 `yaml:"protein,omitempty"`

	MaxInBatch *float64 `yaml:"max_in_batch,omitempty"`
	// RecommendMash is a recipe formulation hint, not whether the grain is mashed.
	RecommendMash bool `yaml:"recommend_mash"`
	// Extract only: IBUs per pound of extract in a gallon, sixty minute boil.
	IBUGalPerLb *float64 `yaml:"ibu_gal_per_lb,omitempty"`

	DisplayAmount *string  `yaml:"display_amount,omitempty"`
	Inventory     *string  `yaml:"inventory,omitempty"`
	Potential     *float64 `yaml:"potential,omitempty"`
	DisplayColor  *string  `yaml:"display_color,omitempty"`
}

func (f Fermentable) Key() string { return f.Name }
func (Fermentable) Kind() Kind    { return KindFermentable }
func (Fermentable) record()       {}

// Inapplicable lists the tags of set fields that BeerXML ignores for this
// fermentable's type. Writers do not consult it.
func (f Fermentable) Inapplicable() []string {
	var out []string
	grainLike := f.Type == FermentableGrain || f.Type == FermentableAdjunct
	if !grainLike {
		if f.CoarseFineDiff != nil {
			out = append(out, "COARSE_FINE_DIFF")
		}
		if f.Moisture != nil {
			out = append(out, "MOISTURE")
		}
		if f.DiastaticPower != nil {
			out = append(out, "DIASTATIC_POWER")
		}
		if f.Protein != nil {
			out = append(out, "PROTEIN")
		}
		if f.RecommendMash {
			out = append(out, "RECOMMEND_MASH")
		}
	}
	if f.Type != FermentableExtract && f.IBUGalPerLb != nil {
		out = append(out, "IBU_GAL_PER_LB")
	}
	return out
}
