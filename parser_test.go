package ucum

import "testing"

func assertNoDiagnostics(t *testing.T, diags []*Diagnostic, name string) {
	t.Helper()
	if len(diags) != 0 {
		t.Fatalf("%s: unexpected diagnostics: %v", name, diags)
	}
}

func TestParseSingleAtom(t *testing.T) {
	expr, diags, _ := Parse("kg")
	assertNoDiagnostics(t, diags, "Parse(kg)")
	if expr.String() != "kg" {
		t.Errorf("Parse(kg).String() = %q, want %q", expr.String(), "kg")
	}
}

func TestParseProductAndQuotient(t *testing.T) {
	expr, diags, _ := Parse("kg.m/s2")
	assertNoDiagnostics(t, diags, "Parse(kg.m/s2)")
	if expr.String() != "kg.m/s2" {
		t.Errorf("Parse(kg.m/s2).String() = %q, want %q", expr.String(), "kg.m/s2")
	}
}

func TestParseLeadingSlashImpliesUnity(t *testing.T) {
	expr, diags, _ := Parse("/min")
	assertNoDiagnostics(t, diags, "Parse(/min)")
	if expr.String() != "1/min" {
		t.Errorf("Parse(/min).String() = %q, want %q", expr.String(), "1/min")
	}
}

func TestParseGroupWithExponent(t *testing.T) {
	expr, diags, _ := Parse("(kg.m)2")
	assertNoDiagnostics(t, diags, "Parse((kg.m)2)")
	if expr.String() != "(kg.m)2" {
		t.Errorf("Parse((kg.m)2).String() = %q, want %q", expr.String(), "(kg.m)2")
	}
}

func TestParseNegativeExponent(t *testing.T) {
	expr, diags, _ := Parse("s-2")
	assertNoDiagnostics(t, diags, "Parse(s-2)")
	atom, ok := expr.(*AtomExpr)
	if !ok {
		t.Fatalf("Parse(s-2) = %T, want *AtomExpr", expr)
	}
	if atom.Exponent != -2 {
		t.Errorf("Parse(s-2) exponent = %d, want -2", atom.Exponent)
	}
}

func TestParseAnnotation(t *testing.T) {
	expr, diags, _ := Parse("mg{total}")
	assertNoDiagnostics(t, diags, "Parse(mg{total})")
	atom, ok := expr.(*AtomExpr)
	if !ok {
		t.Fatalf("Parse(mg{total}) = %T, want *AtomExpr", expr)
	}
	if atom.Annotation != "total" {
		t.Errorf("Parse(mg{total}) annotation = %q, want %q", atom.Annotation, "total")
	}
}

func TestParsePowerOfTenAtom(t *testing.T) {
	expr, diags, _ := Parse("10*6/uL")
	assertNoDiagnostics(t, diags, "Parse(10*6/uL)")
	bin, ok := expr.(*BinaryExpr)
	if !ok {
		t.Fatalf("Parse(10*6/uL) = %T, want *BinaryExpr", expr)
	}
	atom, ok := bin.Left.(*AtomExpr)
	if !ok || atom.Symbol != "10*" || atom.Exponent != 6 {
		t.Errorf("Parse(10*6/uL) left = %+v, want atom 10* with exponent 6", bin.Left)
	}
}

func TestParseUnmatchedParenDiagnoses(t *testing.T) {
	_, diags, _ := Parse("(kg.m")
	if len(diags) == 0 {
		t.Fatalf("Parse((kg.m): expected a diagnostic for the missing ')'")
	}
	if diags[0].Kind != ErrUnexpectedToken {
		t.Errorf("Parse((kg.m) diagnostic kind = %s, want %s", diags[0].Kind, ErrUnexpectedToken)
	}
}

func TestParseDeeplyNestedGroupsDiagnoses(t *testing.T) {
	input := ""
	for i := 0; i < maxParseDepth+2; i++ {
		input += "("
	}
	input += "m"
	for i := 0; i < maxParseDepth+2; i++ {
		input += ")"
	}
	_, diags, _ := Parse(input)
	if len(diags) == 0 {
		t.Fatalf("Parse of deeply nested groups: expected a depth diagnostic")
	}
}
