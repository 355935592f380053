package ucum

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func canonicalizeString(t *testing.T, unit string) CanonicalValue {
	t.Helper()
	expr, diags, _ := Parse(unit)
	require.Empty(t, diags, "Parse(%q)", unit)
	canon, diags2 := Canonicalize(expr)
	require.Empty(t, diags2, "Canonicalize(%q)", unit)
	return canon
}

func TestCanonicalizeBaseAtom(t *testing.T) {
	canon := canonicalizeString(t, "m")
	if diff := cmp.Diff(Dimension{AxisLength: 1}, canon.Dimension); diff != "" {
		t.Errorf("Canonicalize(m) dimension mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalizePrefixedAtom(t *testing.T) {
	canon := canonicalizeString(t, "km")
	require.InDelta(t, 1000.0, canon.Factor, 1e-9)
	if diff := cmp.Diff(Dimension{AxisLength: 1}, canon.Dimension); diff != "" {
		t.Errorf("Canonicalize(km) dimension mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalizeCandelaIsNotCentiDay(t *testing.T) {
	canon := canonicalizeString(t, "cd")
	if diff := cmp.Diff(Dimension{AxisLuminous: 1}, canon.Dimension); diff != "" {
		t.Errorf("Canonicalize(cd) dimension mismatch (-want +got):\n%s", diff)
	}
	require.InDelta(t, 1.0, canon.Factor, 1e-9)
}

func TestCanonicalizeCompoundForce(t *testing.T) {
	canon := canonicalizeString(t, "kg.m/s2")
	want := Dimension{AxisMass: 1, AxisLength: 1, AxisTime: -2}
	if diff := cmp.Diff(want, canon.Dimension); diff != "" {
		t.Errorf("Canonicalize(kg.m/s2) dimension mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalizeNewtonMatchesItsDefinition(t *testing.T) {
	newton := canonicalizeString(t, "N")
	force := canonicalizeString(t, "kg.m/s2")
	require.True(t, EqualDimension(newton.Dimension, force.Dimension))
	require.InDelta(t, force.Factor, newton.Factor, 1e-9)
}

func TestCanonicalizeMillimetersOfMercury(t *testing.T) {
	canon := canonicalizeString(t, "mm[Hg]")
	pressure := Dimension{AxisMass: 1, AxisLength: -1, AxisTime: -2}
	if diff := cmp.Diff(pressure, canon.Dimension); diff != "" {
		t.Errorf("Canonicalize(mm[Hg]) dimension mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalizeSpecialUnitCannotCompose(t *testing.T) {
	expr, diags, _ := Parse("Cel/s")
	require.Empty(t, diags)
	_, diags2 := Canonicalize(expr)
	require.NotEmpty(t, diags2)
	require.Equal(t, ErrSpecialInComposition, diags2[0].Kind)
}

func TestCanonicalizeSpecialUnitCannotCarryExponent(t *testing.T) {
	expr, diags, _ := Parse("Cel2")
	require.Empty(t, diags)
	_, diags2 := Canonicalize(expr)
	require.NotEmpty(t, diags2)
	require.Equal(t, ErrSpecialExponent, diags2[0].Kind)
}

func TestCanonicalizeMoleCancelsInRatio(t *testing.T) {
	mmol := canonicalizeString(t, "mmol/L")
	mol := canonicalizeString(t, "mol/L")
	ratio := mmol.Factor / mol.Factor
	require.False(t, math.IsNaN(ratio))
	require.InDelta(t, 0.001, ratio, 1e-12)
}

func TestCanonicalizeUnknownAtomErrors(t *testing.T) {
	expr, diags, _ := Parse("frobnicate")
	require.Empty(t, diags)
	_, diags2 := Canonicalize(expr)
	require.NotEmpty(t, diags2)
	require.Equal(t, ErrUnknownUnit, diags2[0].Kind)
}

func TestCanonicalizePrefixOnNonMetricAtomErrors(t *testing.T) {
	expr, diags, _ := Parse("mdeg")
	require.Empty(t, diags)
	_, diags2 := Canonicalize(expr)
	require.NotEmpty(t, diags2)
	require.Equal(t, ErrPrefixNotAllowed, diags2[0].Kind)
}
