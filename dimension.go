package ucum

import (
	"fmt"
	"sort"
	"strings"
)

// Axis identifies one of the seven UCUM base dimensions.
type Axis int

const (
	// AxisLength is the length axis (meter).
	AxisLength Axis = iota
	// AxisMass is the mass axis (gram).
	AxisMass
	// AxisTime is the time axis (second).
	AxisTime
	// AxisAngle is the plane-angle axis (radian).
	AxisAngle
	// AxisTemperature is the thermodynamic-temperature axis (Kelvin).
	AxisTemperature
	// AxisCharge is the electric-charge axis (Coulomb).
	AxisCharge
	// AxisLuminous is the luminous-intensity axis (candela).
	AxisLuminous
)

var axisSymbols = [...]string{"L", "M", "T", "A", "Θ", "Q", "F"}

func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisSymbols) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisSymbols[a]
}

// Dimension is a sparse exponent vector over the seven base axes. The zero
// value is the dimensionless vector. No stored entry may carry a zero
// exponent; every constructor and operation below normalizes that away.
type Dimension map[Axis]int

// normalize returns a copy of d with all zero-valued entries dropped. Nil
// maps are always returned as an empty, non-nil map so callers can index it
// freely.
func (d Dimension) normalize() Dimension {
	out := make(Dimension, len(d))
	for axis, exp := range d {
		if exp != 0 {
			out[axis] = exp
		}
	}
	return out
}

// Axis1 builds a dimension with a single axis set to 1, the shape every UCUM
// base atom declares.
func Axis1(axis Axis) Dimension {
	return Dimension{axis: 1}
}

// AddDimension computes the element-wise sum of a and b (used when two
// units are multiplied together).
func AddDimension(a, b Dimension) Dimension {
	out := make(Dimension, len(a)+len(b))
	for axis, exp := range a {
		out[axis] = exp
	}
	for axis, exp := range b {
		out[axis] += exp
	}
	return out.normalize()
}

// SubDimension computes the element-wise difference a-b (used when one unit
// is divided by another).
func SubDimension(a, b Dimension) Dimension {
	out := make(Dimension, len(a)+len(b))
	for axis, exp := range a {
		out[axis] = exp
	}
	for axis, exp := range b {
		out[axis] -= exp
	}
	return out.normalize()
}

// ScaleDimension multiplies every exponent of d by k (used when a unit is
// raised to an integer power).
func ScaleDimension(d Dimension, k int) Dimension {
	if k == 0 {
		return Dimension{}
	}
	out := make(Dimension, len(d))
	for axis, exp := range d {
		out[axis] = exp * k
	}
	return out.normalize()
}

// EqualDimension reports whether a and b carry the same set of non-zero
// exponents.
func EqualDimension(a, b Dimension) bool {
	an, bn := a.normalize(), b.normalize()
	if len(an) != len(bn) {
		return false
	}
	for axis, exp := range an {
		if bn[axis] != exp {
			return false
		}
	}
	return true
}

// IsDimensionless reports whether d has no non-zero entries.
func IsDimensionless(d Dimension) bool {
	for _, exp := range d {
		if exp != 0 {
			return false
		}
	}
	return true
}

// String renders a dimension as e.g. "L.M/T2", ordered by axis for
// deterministic output (maps iterate in random order in Go).
func (d Dimension) String() string {
	type entry struct {
		axis Axis
		exp  int
	}
	entries := make([]entry, 0, len(d))
	for axis, exp := range d {
		if exp != 0 {
			entries = append(entries, entry{axis, exp})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].axis < entries[j].axis })

	var num, den []string
	for _, e := range entries {
		sym := e.axis.String()
		switch {
		case e.exp == 1:
			num = append(num, sym)
		case e.exp > 1:
			num = append(num, fmt.Sprintf("%s%d", sym, e.exp))
		case e.exp == -1:
			den = append(den, sym)
		default:
			den = append(den, fmt.Sprintf("%s%d", sym, -e.exp))
		}
	}

	if len(num) == 0 && len(den) == 0 {
		return "1"
	}
	numStr := "1"
	if len(num) > 0 {
		numStr = strings.Join(num, ".")
	}
	if len(den) == 0 {
		return numStr
	}
	return fmt.Sprintf("%s/%s", numStr, strings.Join(den, "."))
}
