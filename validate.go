package ucum

// Validate parses and canonicalizes unit, returning every diagnostic found
// rather than stopping at the first (§4.3 "Ordering", §6). A nil result
// means unit is a well-formed, resolvable UCUM expression.
func Validate(unit string) []*Diagnostic {
	expr, diags, _ := Parse(unit)
	_, more := Canonicalize(expr)
	return append(diags, more...)
}

// IsValid is a boolean convenience wrapper around Validate.
func IsValid(unit string) bool {
	return len(Validate(unit)) == 0
}
