package core

// The record types below are carried by the model and the catalogue loader,
// but no writer encodes them yet.

// Recipe is a brewing recipe.
type Recipe struct {
	Name    string `yaml:"-"`
	Version int64  `yaml:"version"`
	// Extract, Partial Mash or All Grain.
	Type   string `yaml:"type"`
	Brewer string `yaml:"brewer"`
	// Batch and boil sizes in liters, boil time in minutes.
	BatchSize  float64  `yaml:"batch_size"`
	BoilSize   float64  `yaml:"boil_size"`
	BoilTime   float64  `yaml:"boil_time"`
	Efficiency *float64 `yaml:"efficiency,omitempty"`
	Style      *string  `yaml:"style,omitempty"`
	Notes      *string  `yaml:"notes,omitempty"`
}

func (r Recipe) Key() string { return r.Name }
func (Recipe) Kind() Kind    { return KindRecipe }
func (Recipe) record()       {}

// Style is a beer style guideline.
type Style struct {
	Name           string  `yaml:"-"`
	Version        int64   `yaml:"version"`
	Category       string  `yaml:"category"`
	CategoryNumber string  `yaml:"category_number"`
	StyleLetter    string  `yaml:"style_letter"`
	StyleGuide     string  `yaml:"style_guide"`
	Type           string  `yaml:"type"`
	OGMin          float64 `yaml:"og_min"`
	OGMax          float64 `yaml:"og_max"`
	FGMin          float64 `yaml:"fg_min"`
	FGMax          float64 `yaml:"fg_max"`
	IBUMin         float64 `yaml:"ibu_min"`
	IBUMax         float64 `yaml:"ibu_max"`
	ColorMin       float64 `yaml:"color_min"`
	ColorMax       float64 `yaml:"color_max"`
	Notes          *string `yaml:"notes,omitempty"`
}

func (s Style) Key() string { return s.Name }
func (Style) Kind() Kind    { return KindStyle }
func (Style) record()       {}

// Mash is a mash profile.
type Mash struct {
	Name    string `yaml:"-"`
	Version int64  `yaml:"version"`
	// Grain temperature in degrees Celsius.
	GrainTemp  float64  `yaml:"grain_temp"`
	SpargeTemp *float64 `yaml:"sparge_temp,omitempty"`
	PH         *float64 `yaml:"ph,omitempty"`
	Notes      *string  `yaml:"notes,omitempty"`
}

func (m Mash) Key() string { return m.Name }
func (Mash) Kind() Kind    { return KindMash }
func (Mash) record()       {}

// Equipment is a brewing equipment profile.
type Equipment struct {
	Name    string `yaml:"-"`
	Version int64  `yaml:"version"`
	// Volumes in liters.
	BoilSize  float64  `yaml:"boil_size"`
	BatchSize float64  `yaml:"batch_size"`
	TunVolume *float64 `yaml:"tun_volume,omitempty"`
	BoilTime  *float64 `yaml:"boil_time,omitempty"`
	Notes     *string  `yaml:"notes,omitempty"`
}

func (e Equipment) Key() string { return e.Name }
func (Equipment) Kind() Kind    { return KindEquipment }
func (Equipment) record()       {}
