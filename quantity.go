package ucum

import "math"

// Quantity pairs a numeric value with the unit it was expressed in,
// carrying the unit's resolved CanonicalValue so arithmetic (§4.7) never
// has to re-lex and re-canonicalize its operands' units.
type Quantity struct {
	Value float64
	Unit  string

	canon CanonicalValue
}

// NewQuantity parses unit and returns the Quantity value*unit.
func NewQuantity(value float64, unit string) (Quantity, error) {
	canon, err := resolveUnitString(unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: unit, canon: canon}, nil
}

// Dimension returns the quantity's resolved dimension vector.
func (q Quantity) Dimension() Dimension { return q.canon.Dimension }

// Add returns q+o, converting o into q's unit first. Neither operand may
// be expressed in a special (non-ratio) unit: §4.7 requires addition to
// happen on a ratio scale, since special units such as Cel have no
// meaningful sum.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.canon.Special != "" || o.canon.Special != "" {
		return Quantity{}, newDiagnostic(ErrSpecialInComposition, Span{},
			"cannot add quantities in special units %q and %q", q.Unit, o.Unit)
	}
	converted, err := Convert(o.Value, o.canon, q.canon)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value + converted, Unit: q.Unit, canon: q.canon}, nil
}

// Subtract returns q-o, converting o into q's unit first.
func (q Quantity) Subtract(o Quantity) (Quantity, error) {
	if q.canon.Special != "" || o.canon.Special != "" {
		return Quantity{}, newDiagnostic(ErrSpecialInComposition, Span{},
			"cannot subtract quantities in special units %q and %q", q.Unit, o.Unit)
	}
	converted, err := Convert(o.Value, o.canon, q.canon)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value - converted, Unit: q.Unit, canon: q.canon}, nil
}

// Multiply returns q*o, composing the two unit strings syntactically
// (wrapping each side in parentheses, whether or not it contains a
// composition) rather than attempting to simplify the result.
func (q Quantity) Multiply(o Quantity) (Quantity, error) {
	if q.canon.Special != "" || o.canon.Special != "" {
		return Quantity{}, newDiagnostic(ErrSpecialInComposition, Span{},
			"cannot multiply quantities in special units %q and %q", q.Unit, o.Unit)
	}
	return Quantity{
		Value: q.Value * o.Value,
		Unit:  composeUnit(q.Unit, o.Unit, "."),
		canon: combine(TokDot, q.canon, o.canon),
	}, nil
}

// Divide returns q/o.
func (q Quantity) Divide(o Quantity) (Quantity, error) {
	if q.canon.Special != "" || o.canon.Special != "" {
		return Quantity{}, newDiagnostic(ErrSpecialInComposition, Span{},
			"cannot divide quantities in special units %q and %q", q.Unit, o.Unit)
	}
	if o.Value == 0 {
		return Quantity{}, newDiagnostic(ErrNumericOverflow, Span{}, "division by a zero-valued quantity")
	}
	return Quantity{
		Value: q.Value / o.Value,
		Unit:  composeUnit(q.Unit, o.Unit, "/"),
		canon: combine(TokSlash, q.canon, o.canon),
	}, nil
}

// Pow raises q to an integer power, per §4.7.
func (q Quantity) Pow(n int) (Quantity, error) {
	if q.canon.Special != "" {
		return Quantity{}, newDiagnostic(ErrSpecialExponent, Span{},
			"cannot raise special unit %q to a power", q.Unit)
	}
	result := Quantity{
		Value: math.Pow(q.Value, float64(n)),
		Unit:  composeUnitPow(q.Unit, n),
		canon: CanonicalValue{
			Factor:    math.Pow(q.canon.Factor, float64(n)),
			Dimension: ScaleDimension(q.canon.Dimension, n),
		},
	}
	if math.IsInf(result.Value, 0) || math.IsNaN(result.Value) {
		return Quantity{}, newDiagnostic(ErrNumericOverflow, Span{}, "power result is not representable as a finite value")
	}
	return result, nil
}

// composeUnit renders the syntactic unit of a product or quotient per
// §4.7: each operand is unconditionally parenthesized, e.g.
// quantity(5,"m")·quantity(2,"s") → "(m).(s)".
func composeUnit(left, right, op string) string {
	return "(" + left + ")" + op + "(" + right + ")"
}

// composeUnitPow renders the syntactic unit of a power per §4.7: "(u)^k".
func composeUnitPow(unit string, n int) string {
	return "(" + unit + ")^" + itoa(n)
}

func itoa(n int) string {
	if n >= 0 {
		return posItoa(n)
	}
	return "-" + posItoa(-n)
}

func posItoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
