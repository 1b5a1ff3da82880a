// Package brewcalc is the Composition Root for the brewcalc exporter.
//
// It wires the record model (pkg/core) to the output adapters: BeerXML
// (pkg/adapters/beerxml), YAML (pkg/adapters/beeryaml) and atomic file output
// (pkg/adapters/fs).
//
// Usage:
//
//	hops := core.NewCollection(core.Hop{
//		Name: "Cascade", Version: 1, Alpha: 5.5, Amount: 0.05, Time: 60,
//	})
//
//	// One-shot helpers
//	err := brewcalc.WriteXMLFile("hops.xml", hops)
//
//	// Or a configured service
//	svc, err := brewcalc.New(brewcalc.WithLogger(logger))
//	err = svc.WriteFile(ctx, core.FormatXML, "hops.xml", hops)
package brewcalc
