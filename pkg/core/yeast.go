package core

// Yeast is a yeast strain.
type Yeast struct {
	Name    string    `yaml:"-"`
	Version int64     `yaml:"version"`
	Type    YeastType `yaml:"type"`
	Form    YeastForm `yaml:"form"`
	// Amount in liters, or kg when AmountIsWeight is set.
	Amount         float64 `yaml:"amount"`
	AmountIsWeight bool    `yaml:"amount_is_weight"`

	Laboratory *string `yaml:"laboratory,omitempty"`
	ProductID  *string `yaml:"product_id,omitempty"`
	// Recommended fermentation range in degrees Celsius.
	MinTemperature *float64           `yaml:"min_temperature,omitempty"`
	MaxTemperature *float64           `yaml:"max_temperature,omitempty"`
	Flocculation   *YeastFlocculation `yaml:"flocculation,omitempty"`
	Attenuation    *float64           `yaml:"attenuation,omitempty"`
	Notes          *string            `yaml:"notes,omitempty"`
	BestFor        *string            `yaml:"best_for,omitempty"`
	// Zero for a culture straight from the manufacturer.
	TimesCultured  *int64 `yaml:"times_cultured,omitempty"`
	MaxReuse       *int64 `yaml:"max_reuse,omitempty"`
	AddToSecondary bool   `yaml:"add_to_secondary"`

	DisplayAmount  *string `yaml:"display_amount,omitempty"`
	DisplayMinTemp *string `yaml:"display_min_temp,omitempty"`
	DisplayMaxTemp *string `yaml:"display_max_temp,omitempty"`
	Inventory      *string `yaml:"inventory,omitempty"`
	CultureDate    *string `yaml:"culture_date,omitempty"`
}

func (y Yeast) Key() string { return y.Name }
func (Yeast) Kind() Kind    { return KindYeast }
func (Yeast) record()       {}
