package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/brewcalc/pkg/core"
)

func TestFermentable_Inapplicable(t *testing.T) {
	grain := core.Fermentable{
		Name:           "Pale Malt",
		Type:           core.FermentableGrain,
		Moisture:       core.Ptr(4.0),
		DiastaticPower: core.Ptr(120.0),
		RecommendMash:  true,
	}
	assert.Empty(t, grain.Inapplicable())

	sugar := core.Fermentable{
		Name:          "Candi Sugar",
		Type:          core.FermentableSugar,
		Moisture:      core.Ptr(0.5),
		RecommendMash: true,
		IBUGalPerLb:   core.Ptr(10.0),
	}
	assert.Equal(t, []string{"MOISTURE", "RECOMMEND_MASH", "IBU_GAL_PER_LB"}, sugar.Inapplicable())

	extract := core.Fermentable{Type: core.FermentableExtract, IBUGalPerLb: core.Ptr(10.0), Protein: core.Ptr(1.0)}
	assert.Equal(t, []string{"PROTEIN"}, extract.Inapplicable())
}

func TestPtr(t *testing.T) {
	p := core.Ptr("Belgium")
	q := core.Ptr("Belgium")
	assert.Equal(t, "Belgium", *p)
	assert.NotSame(t, p, q)
}
