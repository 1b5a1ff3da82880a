package beerxml

import (
	"github.com/aretw0/brewcalc/pkg/core"
)

func writeFermentable(s *sink, depth int, f core.Fermentable) {
	s.block(depth, core.KindFermentable.Tag(), func(d int) {
		s.tag(d, "NAME", text(f.Name))
		s.tag(d, "VERSION", integer(f.Version))
		s.tag(d, "TYPE", f.Type.String())
		s.tag(d, "AMOUNT", number(f.Amount))
		s.tag(d, "YIELD", number(f.Yield))
		s.tag(d, "COLOR", number(f.Color))
		s.flag(d, "ADD_AFTER_BOIL", f.AddAfterBoil)
		opt(s, d, "ORIGIN", f.Origin, text)
		opt(s, d, "SUPPLIER", f.Supplier, text)
		opt(s, d, "NOTES", f.Notes, text)
		opt(s, d, "COARSE_FINE_DIFF", f.CoarseFineDiff, number)
		opt(s, d, "MOISTURE", f.Moisture, number)
		opt(s, d, "DIASTATIC_POWER", f.DiastaticPower, number)
		opt(s, d, "PROTEIN", f.Protein, number)
		opt(s, d, "MAX_IN_BATCH", f.MaxInBatch, number)
		s.flag(d, "RECOMMEND_MASH", f.RecommendMash)
		opt(s, d, "IBU_GAL_PER_LB", f.IBUGalPerLb, number)
		opt(s, d, "DISPLAY_AMOUNT", f.DisplayAmount, text)
		opt(s, d, "INVENTORY", f.Inventory, text)
		opt(s, d, "POTENTIAL", f.Potential, number)
		opt(s, d, "DISPLAY_COLOR", f.DisplayColor, text)
	})
}

func writeHop(s *sink, depth int, h core.Hop) {
	s.block(depth, core.KindHop.Tag(), func(d int) {
		s.tag(d, "NAME", text(h.Name))
		s.tag(d, "VERSION", integer(h.Version))
		s.tag(d, "ALPHA", number(h.Alpha))
		s.tag(d, "AMOUNT", number(h.Amount))
		s.tag(d, "USE", h.Use.String())
		s.tag(d, "TIME", number(h.Time))
		opt(s, d, "NOTES", h.Notes, text)
		opt(s, d, "TYPE", h.Type, core.HopType.String)
		opt(s, d, "FORM", h.Form, core.HopForm.String)
		opt(s, d, "BETA", h.Beta, number)
		opt(s, d, "HSI", h.HSI, number)
		opt(s, d, "ORIGIN", h.Origin, text)
		opt(s, d, "SUBSTITUTES", h.Substitutes, text)
		opt(s, d, "HUMULENE", h.Humulene, number)
		opt(s, d, "CARYOPHYLLENE", h.Caryophyllene, number)
		opt(s, d, "COHUMULONE", h.Cohumulone, number)
		opt(s, d, "MYRCENE", h.Myrcene, number)
	})
}

func writeYeast(s *sink, depth int, y core.Yeast) {
	s.block(depth, core.KindYeast.Tag(), func(d int) {
		s.tag(d, "NAME", text(y.Name))
		s.tag(d, "VERSION", integer(y.Version))
		s.tag(d, "TYPE", y.Type.String())
		s.tag(d, "FORM", y.Form.String())
		s.tag(d, "AMOUNT", number(y.Amount))
		s.flag(d, "AMOUNT_IS_WEIGHT", y.AmountIsWeight)
		opt(s, d, "LABORATORY", y.Laboratory, text)
		opt(s, d, "PRODUCT_ID", y.ProductID, text)
		opt(s, d, "MIN_TEMPERATURE", y.MinTemperature, number)
		opt(s, d, "MAX_TEMPERATURE", y.MaxTemperature, number)
		opt(s, d, "FLOCCULATION", y.Flocculation, core.YeastFlocculation.String)
		opt(s, d, "ATTENUATION", y.Attenuation, number)
		opt(s, d, "NOTES", y.Notes, text)
		opt(s, d, "BEST_FOR", y.BestFor, text)
		opt(s, d, "TIMES_CULTURED", y.TimesCultured, integer)
		opt(s, d, "MAX_REUSE", y.MaxReuse, integer)
		s.flag(d, "ADD_TO_SECONDARY", y.AddToSecondary)
		opt(s, d, "DISPLAY_AMOUNT", y.DisplayAmount, text)
		opt(s, d, "DISP_MIN_TEMP", y.DisplayMinTemp, text)
		opt(s, d, "DISP_MAX_TEMP", y.DisplayMaxTemp, text)
		opt(s, d, "INVENTORY", y.Inventory, text)
		opt(s, d, "CULTURE_DATE", y.CultureDate, text)
	})
}

func writeMisc(s *sink, depth int, m core.Misc) {
	s.block(depth, core.KindMisc.Tag(), func(d int) {
		s.tag(d, "NAME", text(m.Name))
		s.tag(d, "VERSION", integer(m.Version))
		s.tag(d, "TYPE", m.Type.String())
		s.tag(d, "USE", m.Use.String())
		s.tag(d, "TIME", number(m.Time))
		s.tag(d, "AMOUNT", number(m.Amount))
		s.flag(d, "AMOUNT_IS_WEIGHT", m.AmountIsWeight)
		opt(s, d, "USE_FOR", m.UseFor, text)
		opt(s, d, "NOTES", m.Notes, text)
		opt(s, d, "DISPLAY_TIME", m.DisplayTime, text)
		opt(s, d, "DISPLAY_AMOUNT", m.DisplayAmount, text)
		opt(s, d, "INVENTORY", m.Inventory, text)
	})
}

func writeWater(s *sink, depth int, w core.Water) {
	s.block(depth, core.KindWater.Tag(), func(d int) {
		s.tag(d, "NAME", text(w.Name))
		s.tag(d, "VERSION", integer(w.Version))
		s.tag(d, "AMOUNT", number(w.Amount))
		s.tag(d, "CALCIUM", number(w.Calcium))
		s.tag(d, "BICARBONATE", number(w.Bicarbonate))
		s.tag(d, "SULFATE", number(w.Sulfate))
		s.tag(d, "CHLORIDE", number(w.Chloride))
		s.tag(d, "SODIUM", number(w.Sodium))
		s.tag(d, "MAGNESIUM", number(w.Magnesium))
		opt(s, d, "PH", w.PH, number)
		opt(s, d, "NOTES", w.Notes, text)
	})
}
