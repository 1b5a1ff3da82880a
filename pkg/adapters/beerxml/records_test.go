package beerxml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/brewcalc/pkg/core"
)

func TestWriter_HopAllFields(t *testing.T) {
	set := core.NewCollection(core.Hop{
		Name:          "Goldings",
		Version:       1,
		Alpha:         5,
		Amount:        0.03,
		Use:           core.HopUseFirstWort,
		Time:          90,
		Notes:         core.Ptr("Earthy & floral"),
		Type:          core.Ptr(core.HopTypeBoth),
		Form:          core.Ptr(core.HopLeaf),
		Beta:          core.Ptr(2.5),
		HSI:           core.Ptr(35.0),
		Origin:        core.Ptr("UK"),
		Substitutes:   core.Ptr("Fuggles"),
		Humulene:      core.Ptr(42.5),
		Caryophyllene: core.Ptr(13.0),
		Cohumulone:    core.Ptr(27.0),
		Myrcene:       core.Ptr(25.5),
	})

	want := header + `<HOPS>
  <HOP>
    <NAME>Goldings</NAME>
    <VERSION>1</VERSION>
    <ALPHA>5</ALPHA>
    <AMOUNT>0.03</AMOUNT>
    <USE>First Wort</USE>
    <TIME>90</TIME>
    <NOTES>Earthy &amp; floral</NOTES>
    <TYPE>Both</TYPE>
    <FORM>Leaf</FORM>
    <BETA>2.5</BETA>
    <HSI>35</HSI>
    <ORIGIN>UK</ORIGIN>
    <SUBSTITUTES>Fuggles</SUBSTITUTES>
    <HUMULENE>42.5</HUMULENE>
    <CARYOPHYLLENE>13</CARYOPHYLLENE>
    <COHUMULONE>27</COHUMULONE>
    <MYRCENE>25.5</MYRCENE>
  </HOP>
</HOPS>
`
	assert.Equal(t, want, write(t, set))
}

func TestWriter_YeastAllFields(t *testing.T) {
	set := core.NewCollection(core.Yeast{
		Name:           "London ESB",
		Version:        1,
		Type:           core.YeastAle,
		Form:           core.YeastLiquid,
		Amount:         0.125,
		AmountIsWeight: true,
		Laboratory:     core.Ptr("Wyeast"),
		ProductID:      core.Ptr("1968"),
		MinTemperature: core.Ptr(18.0),
		MaxTemperature: core.Ptr(22.2),
		Flocculation:   core.Ptr(core.FlocculationVeryHigh),
		Attenuation:    core.Ptr(69.0),
		Notes:          core.Ptr("Leaves <some> residual sweetness"),
		BestFor:        core.Ptr("ESB, Bitter"),
		TimesCultured:  core.Ptr(int64(0)),
		MaxReuse:       core.Ptr(int64(4)),
		AddToSecondary: true,
		DisplayAmount:  core.Ptr("125 ml"),
		DisplayMinTemp: core.Ptr("64.4 F"),
		DisplayMaxTemp: core.Ptr("72 F"),
		Inventory:      core.Ptr("2 pkg"),
		CultureDate:    core.Ptr("2024-03-01"),
	})

	want := header + `<YEASTS>
  <YEAST>
    <NAME>London ESB</NAME>
    <VERSION>1</VERSION>
    <TYPE>Ale</TYPE>
    <FORM>Liquid</FORM>
    <AMOUNT>0.125</AMOUNT>
    <AMOUNT_IS_WEIGHT>true</AMOUNT_IS_WEIGHT>
    <LABORATORY>Wyeast</LABORATORY>
    <PRODUCT_ID>1968</PRODUCT_ID>
    <MIN_TEMPERATURE>18</MIN_TEMPERATURE>
    <MAX_TEMPERATURE>22.2</MAX_TEMPERATURE>
    <FLOCCULATION>Very High</FLOCCULATION>
    <ATTENUATION>69</ATTENUATION>
    <NOTES>Leaves &lt;some&gt; residual sweetness</NOTES>
    <BEST_FOR>ESB, Bitter</BEST_FOR>
    <TIMES_CULTURED>0</TIMES_CULTURED>
    <MAX_REUSE>4</MAX_REUSE>
    <ADD_TO_SECONDARY>true</ADD_TO_SECONDARY>
    <DISPLAY_AMOUNT>125 ml</DISPLAY_AMOUNT>
    <DISP_MIN_TEMP>64.4 F</DISP_MIN_TEMP>
    <DISP_MAX_TEMP>72 F</DISP_MAX_TEMP>
    <INVENTORY>2 pkg</INVENTORY>
    <CULTURE_DATE>2024-03-01</CULTURE_DATE>
  </YEAST>
</YEASTS>
`
	assert.Equal(t, want, write(t, set))
}

func TestWriter_MiscAllFields(t *testing.T) {
	set := core.NewCollection(core.Misc{
		Name:           "Gypsum",
		Version:        1,
		Type:           core.MiscWaterAgent,
		Use:            core.MiscUseMash,
		Time:           60,
		Amount:         0.004,
		AmountIsWeight: true,
		UseFor:         core.Ptr("Hop crispness"),
		Notes:          core.Ptr("Calcium sulfate"),
		DisplayTime:    core.Ptr("60 min"),
		DisplayAmount:  core.Ptr("4 g"),
		Inventory:      core.Ptr("500 g"),
	})

	want := header + `<MISCS>
  <MISC>
    <NAME>Gypsum</NAME>
    <VERSION>1</VERSION>
    <TYPE>Water Agent</TYPE>
    <USE>Mash</USE>
    <TIME>60</TIME>
    <AMOUNT>0.004</AMOUNT>
    <AMOUNT_IS_WEIGHT>true</AMOUNT_IS_WEIGHT>
    <USE_FOR>Hop crispness</USE_FOR>
    <NOTES>Calcium sulfate</NOTES>
    <DISPLAY_TIME>60 min</DISPLAY_TIME>
    <DISPLAY_AMOUNT>4 g</DISPLAY_AMOUNT>
    <INVENTORY>500 g</INVENTORY>
  </MISC>
</MISCS>
`
	assert.Equal(t, want, write(t, set))
}

func TestWriter_WaterAllFields(t *testing.T) {
	set := core.NewCollection(core.Water{
		Name: "Pilsen", Version: 1, Amount: 25.5,
		Calcium: 7, Bicarbonate: 15, Sulfate: 5, Chloride: 5, Sodium: 2, Magnesium: 2,
		PH:    core.Ptr(6.5),
		Notes: core.Ptr("Very soft"),
	})

	want := header + `<WATERS>
  <WATER>
    <NAME>Pilsen</NAME>
    <VERSION>1</VERSION>
    <AMOUNT>25.5</AMOUNT>
    <CALCIUM>7</CALCIUM>
    <BICARBONATE>15</BICARBONATE>
    <SULFATE>5</SULFATE>
    <CHLORIDE>5</CHLORIDE>
    <SODIUM>2</SODIUM>
    <MAGNESIUM>2</MAGNESIUM>
    <PH>6.5</PH>
    <NOTES>Very soft</NOTES>
  </WATER>
</WATERS>
`
	assert.Equal(t, want, write(t, set))
}

func TestWriter_RequiredFieldsOnly(t *testing.T) {
	tests := []struct {
		name string
		set  core.RecordSet
		want string
	}{
		{
			name: "Fermentable",
			set:  core.NewCollection(core.Fermentable{Name: "Rice Hulls", Version: 1, Type: core.FermentableAdjunct}),
			want: `<FERMENTABLES>
  <FERMENTABLE>
    <NAME>Rice Hulls</NAME>
    <VERSION>1</VERSION>
    <TYPE>Adjunct</TYPE>
    <AMOUNT>0</AMOUNT>
    <YIELD>0</YIELD>
    <COLOR>0</COLOR>
  </FERMENTABLE>
</FERMENTABLES>
`,
		},
		{
			name: "Hop",
			set:  core.NewCollection(core.Hop{Name: "Magnum", Version: 1, Alpha: 14, Use: core.HopUseMash}),
			want: `<HOPS>
  <HOP>
    <NAME>Magnum</NAME>
    <VERSION>1</VERSION>
    <ALPHA>14</ALPHA>
    <AMOUNT>0</AMOUNT>
    <USE>Mash</USE>
    <TIME>0</TIME>
  </HOP>
</HOPS>
`,
		},
		{
			name: "Yeast",
			set:  core.NewCollection(core.Yeast{Name: "W-34/70", Version: 1, Type: core.YeastLager, Form: core.YeastCulture}),
			want: `<YEASTS>
  <YEAST>
    <NAME>W-34/70</NAME>
    <VERSION>1</VERSION>
    <TYPE>Lager</TYPE>
    <FORM>Culture</FORM>
    <AMOUNT>0</AMOUNT>
  </YEAST>
</YEASTS>
`,
		},
		{
			name: "Misc",
			set:  core.NewCollection(core.Misc{Name: "Coriander", Version: 1, Type: core.MiscSpice, Use: core.MiscUseSecondary}),
			want: `<MISCS>
  <MISC>
    <NAME>Coriander</NAME>
    <VERSION>1</VERSION>
    <TYPE>Spice</TYPE>
    <USE>Secondary</USE>
    <TIME>0</TIME>
    <AMOUNT>0</AMOUNT>
  </MISC>
</MISCS>
`,
		},
		{
			name: "Water",
			set:  core.NewCollection(core.Water{Name: "Distilled", Version: 1}),
			want: `<WATERS>
  <WATER>
    <NAME>Distilled</NAME>
    <VERSION>1</VERSION>
    <AMOUNT>0</AMOUNT>
    <CALCIUM>0</CALCIUM>
    <BICARBONATE>0</BICARBONATE>
    <SULFATE>0</SULFATE>
    <CHLORIDE>0</CHLORIDE>
    <SODIUM>0</SODIUM>
    <MAGNESIUM>0</MAGNESIUM>
  </WATER>
</WATERS>
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, header+tc.want, write(t, tc.set))
		})
	}
}

func TestWriter_Flags(t *testing.T) {
	tests := []struct {
		tag string
		on  core.RecordSet
		off core.RecordSet
	}{
		{
			tag: "ADD_AFTER_BOIL",
			on:  core.NewCollection(core.Fermentable{Name: "F", AddAfterBoil: true}),
			off: core.NewCollection(core.Fermentable{Name: "F"}),
		},
		{
			tag: "RECOMMEND_MASH",
			on:  core.NewCollection(core.Fermentable{Name: "F", RecommendMash: true}),
			off: core.NewCollection(core.Fermentable{Name: "F"}),
		},
		{
			tag: "AMOUNT_IS_WEIGHT",
			on:  core.NewCollection(core.Yeast{Name: "Y", AmountIsWeight: true}),
			off: core.NewCollection(core.Yeast{Name: "Y"}),
		},
		{
			tag: "ADD_TO_SECONDARY",
			on:  core.NewCollection(core.Yeast{Name: "Y", AddToSecondary: true}),
			off: core.NewCollection(core.Yeast{Name: "Y"}),
		},
		{
			tag: "AMOUNT_IS_WEIGHT",
			on:  core.NewCollection(core.Misc{Name: "M", AmountIsWeight: true}),
			off: core.NewCollection(core.Misc{Name: "M"}),
		},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			line := "    <" + tc.tag + ">true</" + tc.tag + ">\n"
			assert.Equal(t, 1, strings.Count(write(t, tc.on), line))
			assert.NotContains(t, write(t, tc.off), tc.tag)
		})
	}
}
