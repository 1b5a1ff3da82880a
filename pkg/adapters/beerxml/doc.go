// Package beerxml writes record sets in the BeerXML 1.0 dialect.
//
// Output is one element per line, indented two spaces per nesting level:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<!-- written by brewcalc 0.3.0: http://brewcalc.org/ -->
//	<FERMENTABLES>
//	  <FERMENTABLE>
//	    <NAME>Pale Malt</NAME>
//	    ...
//	  </FERMENTABLE>
//	</FERMENTABLES>
//
// Fields are written in the fixed order BeerXML readers expect. Flags appear
// only when true (there is no "false" token on the wire) and optional fields
// only when set. Recipes, styles, mash and equipment profiles have no writer
// and fail with core.ErrNotImplemented before anything is written.
package beerxml
