package core

// Misc is a miscellaneous ingredient: spices, finings, water agents and the like.
type Misc struct {
	Name    string   `yaml:"-"`
	Version int64    `yaml:"version"`
	Type    MiscType `yaml:"type"`
	Use     MiscUse  `yaml:"use"`
	// Time in minutes.
	Time           float64 `yaml:"time"`
	Amount         float64 `yaml:"amount"`
	AmountIsWeight bool    `yaml:"amount_is_weight"`

	UseFor        *string `yaml:"use_for,omitempty"`
	Notes         *string `yaml:"notes,omitempty"`
	DisplayTime   *string `yaml:"display_time,omitempty"`
	DisplayAmount *string `yaml:"display_amount,omitempty"`
	Inventory     *string `yaml:"inventory,omitempty"`
}

func (m Misc) Key() string { return m.Name }
func (Misc) Kind() Kind    { return KindMisc }
func (Misc) record()       {}
