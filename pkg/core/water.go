package core

// Water is a water profile. Mineral values are in ppm.
type Water struct {
	Name    string `yaml:"-"`
	Version int64  `yaml:"version"`
	// Amount in liters.
	Amount      float64  `yaml:"amount"`
	Calcium     float64  `yaml:"calcium"`
	Bicarbonate float64  `yaml:"bicarbonate"`
	Sulfate     float64  `yaml:"sulfate"`
	Chloride    float64  `yaml:"chloride"`
	Sodium      float64  `yaml:"sodium"`
	Magnesium   float64  `yaml:"magnesium"`
	PH          *float64 `yaml:"ph,omitempty"`
	Notes       *string  `yaml:"notes,omitempty"`
}

func (w Water) Key() string { return w.Name }
func (Water) Kind() Kind    { return KindWater }
func (Water) record()       {}
