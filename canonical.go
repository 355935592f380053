package ucum

import (
	"math"
	"strings"

	"github.com/atomic-ehr/ucum/internal/catalogue"
)

// CanonicalValue is a fully resolved unit expression (§4.4/§4.5): a
// magnitude factor relative to the coherent base units, its dimension
// vector, and — for special (non-ratio) or arbitrary units — the marker
// that sets them apart from ordinary linear units.
type CanonicalValue struct {
	Factor        float64
	Dimension     Dimension
	Special       string // non-empty names the special function in force
	SpecialSpan   Span
	Arbitrary     bool
	ArbitraryCode string
}

func axisFromCode(code string) (Axis, bool) {
	switch code {
	case "L":
		return AxisLength, true
	case "M":
		return AxisMass, true
	case "T":
		return AxisTime, true
	case "A":
		return AxisAngle, true
	case "Theta":
		return AxisTemperature, true
	case "Q":
		return AxisCharge, true
	case "F":
		return AxisLuminous, true
	}
	return 0, false
}

const maxCanonicalDepth = 32

type canonicalizer struct {
	diags []*Diagnostic
	depth int
}

// Canonicalize resolves a parsed Expr into a CanonicalValue, looking up
// prefixes and atoms in the catalogue and recursively expanding reference
// units (§4.5).
func Canonicalize(expr Expr) (CanonicalValue, []*Diagnostic) {
	c := &canonicalizer{}
	v := c.eval(expr)
	return v, c.diags
}

func (c *canonicalizer) errorf(kind ErrorKind, span Span, format string, args ...any) {
	c.diags = append(c.diags, newDiagnostic(kind, span, format, args...))
}

func (c *canonicalizer) eval(expr Expr) CanonicalValue {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxCanonicalDepth {
		c.errorf(ErrUnknownUnit, Span{}, "unit expression nests more than %d levels deep", maxCanonicalDepth)
		return CanonicalValue{Factor: 1}
	}

	switch n := expr.(type) {
	case *NumberExpr:
		return CanonicalValue{Factor: float64(n.Value)}
	case *AnnotationExpr:
		return CanonicalValue{Factor: 1}
	case *AtomExpr:
		return c.evalAtom(n)
	case *GroupExpr:
		return c.evalGroup(n)
	case *BinaryExpr:
		return c.evalBinary(n)
	default:
		c.errorf(ErrSyntax, Span{}, "unsupported expression node")
		return CanonicalValue{Factor: 1}
	}
}

func (c *canonicalizer) evalGroup(n *GroupExpr) CanonicalValue {
	inner := c.eval(n.Inner)
	if inner.Special != "" && n.Exponent != 1 {
		c.errorf(ErrSpecialExponent, n.Span, "special unit %q cannot carry an exponent", inner.Special)
		return inner
	}
	if n.Exponent != 1 {
		inner.Factor = math.Pow(inner.Factor, float64(n.Exponent))
		inner.Dimension = ScaleDimension(inner.Dimension, n.Exponent)
	}
	return inner
}

func (c *canonicalizer) evalBinary(n *BinaryExpr) CanonicalValue {
	left := c.eval(n.Left)
	right := c.eval(n.Right)

	if left.Special != "" || right.Special != "" {
		span := left.SpecialSpan
		name := left.Special
		if name == "" {
			span = right.SpecialSpan
			name = right.Special
		}
		c.errorf(ErrSpecialInComposition, span, "special unit %q cannot be combined with another unit", name)
		return CanonicalValue{Factor: 1}
	}

	result := combine(n.Op, left, right)
	if left.Arbitrary || right.Arbitrary {
		result.Arbitrary = true
		result.ArbitraryCode = left.ArbitraryCode
		if result.ArbitraryCode == "" {
			result.ArbitraryCode = right.ArbitraryCode
		}
	}
	return result
}

func combine(op TokenKind, left, right CanonicalValue) CanonicalValue {
	if op == TokSlash {
		return CanonicalValue{
			Factor:    left.Factor / right.Factor,
			Dimension: SubDimension(left.Dimension, right.Dimension),
		}
	}
	return CanonicalValue{
		Factor:    left.Factor * right.Factor,
		Dimension: AddDimension(left.Dimension, right.Dimension),
	}
}

func (c *canonicalizer) evalAtom(n *AtomExpr) CanonicalValue {
	atom, prefixFactor, status := resolveSymbol(n.Symbol)
	switch status {
	case resolutionUnknownUnit:
		c.errorf(ErrUnknownUnit, n.Span, "unknown unit atom %q", n.Symbol)
		return CanonicalValue{Factor: 1}
	case resolutionPrefixNotAllowed:
		c.errorf(ErrPrefixNotAllowed, n.Span, "a prefix cannot be applied to non-metric unit %q", atom.Code)
		return CanonicalValue{Factor: 1}
	}

	if atom.Kind == catalogue.KindSpecial && n.Exponent != 1 {
		c.errorf(ErrSpecialExponent, n.Span, "special unit %q cannot carry an exponent", atom.Code)
	}

	var value CanonicalValue
	switch atom.Kind {
	case catalogue.KindBase:
		axis, _ := axisFromCode(atom.BaseAxis)
		value = CanonicalValue{Factor: prefixFactor, Dimension: Axis1(axis)}
	case catalogue.KindRatio:
		if atom.RefUnit == "" {
			value = CanonicalValue{Factor: prefixFactor * atom.Factor}
		} else {
			ref := canonicalizeUnitString(atom.RefUnit, c)
			value = CanonicalValue{Factor: prefixFactor * atom.Factor * ref.Factor, Dimension: ref.Dimension}
		}
	case catalogue.KindSpecial:
		value = CanonicalValue{Special: atom.Function, SpecialSpan: n.Span, Factor: atom.Factor}
		if atom.RefUnit != "" {
			ref := canonicalizeUnitString(atom.RefUnit, c)
			value.Dimension = ref.Dimension
			value.Factor = atom.Factor * ref.Factor
		}
	default:
		c.errorf(ErrUnknownUnit, n.Span, "atom %q has no resolvable kind", atom.Code)
		return CanonicalValue{Factor: 1}
	}

	if atom.IsArbitrary {
		value.Arbitrary = true
		value.ArbitraryCode = atom.Code
	}

	if n.Exponent != 1 && value.Special == "" {
		value.Factor = math.Pow(value.Factor, float64(n.Exponent))
		value.Dimension = ScaleDimension(value.Dimension, n.Exponent)
	}

	return value
}

// symbolResolution classifies the outcome of resolveSymbol, distinguishing
// "no such atom under any split" from "the split is valid but the atom
// doesn't accept a prefix" (§4.5, §4.8) so callers can raise the right
// diagnostic kind instead of collapsing both into unknown_unit.
type symbolResolution int

const (
	resolvedSymbol symbolResolution = iota
	resolutionUnknownUnit
	resolutionPrefixNotAllowed
)

// resolveSymbol splits an atom token's raw text into an optional prefix and
// a catalogued atom, per §3's disambiguation rule: the whole symbol is
// tried as an atom code first, so reserved codes such as "cd" (candela)
// are never torn into a prefix ("c") plus remainder ("d", the day atom).
// Only on failure is the symbol tried as the two-character prefix "da"
// plus an atom, then as a one-character prefix plus an atom. A prefix
// applied to an atom that isn't metric-eligible is reported as
// resolutionPrefixNotAllowed rather than silently falling through to
// resolutionUnknownUnit.
func resolveSymbol(symbol string) (catalogue.Atom, float64, symbolResolution) {
	if atom, ok := catalogue.LookupAtom(symbol); ok {
		return atom, 1, resolvedSymbol
	}

	for _, p := range catalogue.TwoCharPrefixCodes() {
		if !strings.HasPrefix(symbol, p) {
			continue
		}
		rest := symbol[len(p):]
		atom, ok := catalogue.LookupAtom(rest)
		if !ok {
			continue
		}
		if !atom.IsMetric {
			return atom, 0, resolutionPrefixNotAllowed
		}
		if prefix, ok := catalogue.LookupPrefix(p); ok {
			return atom, prefix.Factor, resolvedSymbol
		}
	}

	if len(symbol) > 1 {
		head := symbol[:1]
		if prefix, ok := catalogue.LookupPrefix(head); ok {
			rest := symbol[1:]
			if atom, ok := catalogue.LookupAtom(rest); ok {
				if !atom.IsMetric {
					return atom, 0, resolutionPrefixNotAllowed
				}
				return atom, prefix.Factor, resolvedSymbol
			}
		}
	}

	return catalogue.Atom{}, 0, resolutionUnknownUnit
}

// canonicalizeUnitString parses and resolves a catalogue reference-unit
// string such as "kg.m.s-2", folding any diagnostics into the parent
// canonicalizer so a malformed catalogue entry surfaces as an ordinary
// diagnostic instead of a panic.
func canonicalizeUnitString(s string, parent *canonicalizer) CanonicalValue {
	expr, diags, _ := Parse(s)
	parent.diags = append(parent.diags, diags...)
	child := &canonicalizer{depth: parent.depth}
	v := child.eval(expr)
	parent.diags = append(parent.diags, child.diags...)
	return v
}
