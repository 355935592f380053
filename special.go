package ucum

import "math"

// specialFunction is a non-ratio conversion pair between a special unit's
// own numeric scale and its reference unit's coherent value (§4.1).
// Forward maps a value expressed in the special unit to the reference
// unit's scale; Inverse is its mathematical inverse.
type specialFunction struct {
	Forward func(x float64) float64
	Inverse func(x float64) float64
}

// specialFunctions is the closed set of non-ratio conversion functions
// named by catalogue atoms (§3, §4.1). "ld" (binary logarithm) is
// implemented but, per the catalogue, not currently bound to any atom.
var specialFunctions = map[string]specialFunction{
	"Cel": {
		Forward: func(x float64) float64 { return x + 273.15 },
		Inverse: func(k float64) float64 { return k - 273.15 },
	},
	"degF": {
		Forward: func(x float64) float64 { return (x + 459.67) * 5 / 9 },
		Inverse: func(k float64) float64 { return k*9/5 - 459.67 },
	},
	"degRe": {
		Forward: func(x float64) float64 { return x*5/4 + 273.15 },
		Inverse: func(k float64) float64 { return (k - 273.15) * 4 / 5 },
	},
	"pH": {
		Forward: func(x float64) float64 { return math.Pow(10, -x) },
		Inverse: func(c float64) float64 { return -math.Log10(c) },
	},
	"ln": {
		Forward: math.Exp,
		Inverse: math.Log,
	},
	"lg": {
		Forward: func(x float64) float64 { return math.Pow(10, x) },
		Inverse: math.Log10,
	},
	"ld": {
		Forward: func(x float64) float64 { return math.Pow(2, x) },
		Inverse: math.Log2,
	},
	"lgTimes2": {
		Forward: func(x float64) float64 { return math.Pow(10, x/2) },
		Inverse: func(r float64) float64 { return 2 * math.Log10(r) },
	},
	"100tan": {
		Forward: func(x float64) float64 { return math.Atan(x / 100) },
		Inverse: func(rad float64) float64 { return 100 * math.Tan(rad) },
	},
	"sqrt": {
		Forward: func(x float64) float64 { return x * x },
		Inverse: math.Sqrt,
	},
	"hpX": {
		Forward: func(x float64) float64 { return math.Pow(10, -x) },
		Inverse: func(c float64) float64 { return -math.Log10(c) },
	},
	"hpC": {
		Forward: func(x float64) float64 { return math.Pow(100, -x) },
		Inverse: func(c float64) float64 { return -math.Log(c) / math.Log(100) },
	},
	"hpM": {
		Forward: func(x float64) float64 { return math.Pow(1000, -x) },
		Inverse: func(c float64) float64 { return -math.Log(c) / math.Log(1000) },
	},
	"hpQ": {
		Forward: func(x float64) float64 { return math.Pow(50000, -x) },
		Inverse: func(c float64) float64 { return -math.Log(c) / math.Log(50000) },
	},
}
