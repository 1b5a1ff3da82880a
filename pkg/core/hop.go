package core

// Hop is a hop addition or inventory entry.
type Hop struct {
	Name    string `yaml:"-"`
	Version int64  `yaml:"version"`
	// Alpha acid percent.
	Alpha float64 `yaml:"alpha"`
	// Amount in kg.
	Amount float64 `yaml:"amount"`
	Use    HopUse  `yaml:"use"`
	// Time in minutes; its meaning depends on Use.
	Time  float64 `yaml:"time"`
	Notes *string `yaml:"notes,omitempty"`

	Type *HopType `yaml:"type,omitempty"`
	Form *HopForm `yaml:"form,omitempty"`
	Beta *float64 `yaml:"beta,omitempty"`
	// Hop stability index.
	HSI           *float64 `yaml:"hsi,omitempty"`
	Origin        *string  `yaml:"origin,omitempty"`
	Substitutes   *string  `yaml:"substitutes,omitempty"`
	Humulene      *float64 `yaml:"humulene,omitempty"`
	Caryophyllene *float64 `yaml:"caryophyllene,omitempty"`
	Cohumulone    *float64 `yaml:"cohumulone,omitempty"`
	Myrcene       *float64 `yaml:"myrcene,omitempty"`
}

func (h Hop) Key() string { return h.Name }
func (Hop) Kind() Kind    { return KindHop }
func (Hop) record()       {}
