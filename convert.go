package ucum

import (
	"fmt"
	"math"
)

// IsConvertible reports whether values expressed in from can be converted
// into to: same dimension, and, for arbitrary units, the same atom code
// (§4.6, §9).
func IsConvertible(from, to CanonicalValue) bool {
	if !EqualDimension(from.Dimension, to.Dimension) {
		return false
	}
	if from.Arbitrary || to.Arbitrary {
		return from.Arbitrary && to.Arbitrary && from.ArbitraryCode == to.ArbitraryCode
	}
	return true
}

// Convert transforms value, expressed in from, into the equivalent value
// expressed in to (§4.6). Special (non-ratio) units are resolved through
// their reference unit's coherent scale; arbitrary units only convert
// between instances sharing the same atom code.
func Convert(value float64, from, to CanonicalValue) (float64, error) {
	if !EqualDimension(from.Dimension, to.Dimension) {
		return 0, newDiagnostic(ErrIncompatibleDimension, Span{},
			"cannot convert between %s and %s", from.Dimension, to.Dimension)
	}

	if from.Arbitrary || to.Arbitrary {
		if !from.Arbitrary || !to.Arbitrary || from.ArbitraryCode != to.ArbitraryCode {
			return 0, newDiagnostic(ErrArbitraryMismatch, Span{},
				"arbitrary units %q and %q are not interchangeable", from.ArbitraryCode, to.ArbitraryCode)
		}
		return value, nil
	}

	var ref float64
	if from.Special != "" {
		fn, ok := specialFunctions[from.Special]
		if !ok {
			return 0, fmt.Errorf("no special function registered for %q", from.Special)
		}
		ref = from.Factor * fn.Forward(value)
	} else {
		ref = value * from.Factor
	}

	var result float64
	if to.Special != "" {
		fn, ok := specialFunctions[to.Special]
		if !ok {
			return 0, fmt.Errorf("no special function registered for %q", to.Special)
		}
		result = fn.Inverse(ref / to.Factor)
	} else {
		result = ref / to.Factor
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, newDiagnostic(ErrNumericOverflow, Span{}, "conversion result is not representable as a finite value")
	}

	return result, nil
}

// ConvertUnits is the string-level convenience form of Convert: it parses
// and canonicalizes from and to, then converts value between them.
func ConvertUnits(value float64, from, to string) (float64, error) {
	fromCanon, err := resolveUnitString(from)
	if err != nil {
		return 0, err
	}
	toCanon, err := resolveUnitString(to)
	if err != nil {
		return 0, err
	}
	return Convert(value, fromCanon, toCanon)
}

// IsConvertibleUnits is the string-level convenience form of IsConvertible.
func IsConvertibleUnits(from, to string) (bool, error) {
	fromCanon, err := resolveUnitString(from)
	if err != nil {
		return false, err
	}
	toCanon, err := resolveUnitString(to)
	if err != nil {
		return false, err
	}
	return IsConvertible(fromCanon, toCanon), nil
}

func resolveUnitString(s string) (CanonicalValue, error) {
	expr, diags, _ := Parse(s)
	if err := firstError(diags); err != nil {
		return CanonicalValue{}, err
	}
	canon, diags2 := Canonicalize(expr)
	if err := firstError(diags2); err != nil {
		return CanonicalValue{}, err
	}
	return canon, nil
}
