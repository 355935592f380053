// Package ucum parses, canonicalizes, and converts Unified Code for Units
// of Measure (UCUM) expressions, and supports arithmetic over quantities
// carrying those units (§1-§9).
//
// The pipeline mirrors the grammar: Lex produces a token stream, Parse
// builds an Expr tree from it, and Canonicalize resolves that tree against
// the embedded prefix/atom catalogue into a CanonicalValue — a dimension
// vector plus a magnitude factor, with a marker for special (non-ratio)
// and arbitrary units. Convert and the Quantity arithmetic methods all
// operate on CanonicalValue underneath.
package ucum

// ParseAndCanonicalize is the common-path convenience wrapper: lex, parse,
// and canonicalize unit in one call. If the expression is malformed it
// returns the parse diagnostics, and if it is unresolvable the
// canonicalization diagnostics, joined into a single error.
func ParseAndCanonicalize(unit string) (CanonicalValue, error) {
	return resolveUnitString(unit)
}
