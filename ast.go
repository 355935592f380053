package ucum

import (
	"strconv"
	"strings"
)

// Expr is a node of the parsed unit-term tree (§4.3). Unlike the resolved
// Unit value, an Expr is pure syntax: prefix/atom disambiguation and
// dimensional resolution happen later, in Canonicalize (§4.5), so this
// package can stay free of any catalogue import.
type Expr interface {
	// String renders the expression back to UCUM syntax, used for
	// diagnostics and for the round-trip display layer.
	String() string
}

// AtomExpr is a leaf: an atom symbol exactly as it was lexed (e.g. "kg",
// "mm[Hg]", "10*"), carrying an optional integer exponent and an optional
// annotation. Whether the leading characters of Symbol are a prefix is
// decided during canonicalization, not here.
type AtomExpr struct {
	Symbol     string
	Exponent   int // 1 when no explicit exponent was written
	Annotation string
	Span       Span
}

func (n *AtomExpr) String() string {
	var b strings.Builder
	b.WriteString(n.Symbol)
	if n.Exponent != 1 {
		b.WriteString(strconv.Itoa(n.Exponent))
	}
	if n.Annotation != "" {
		b.WriteByte('{')
		b.WriteString(n.Annotation)
		b.WriteByte('}')
	}
	return b.String()
}

// NumberExpr is a bare integer factor, such as the leading "1" in "1/min"
// or the sole factor in a purely numeric expression.
type NumberExpr struct {
	Value int
	Span  Span
}

func (n *NumberExpr) String() string {
	return strconv.Itoa(n.Value)
}

// BinaryExpr is a product ('.') or quotient ('/') of two sub-expressions,
// left-associative per §4.3.
type BinaryExpr struct {
	Op    TokenKind // TokDot or TokSlash
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) String() string {
	op := "."
	if n.Op == TokSlash {
		op = "/"
	}
	return n.Left.String() + op + n.Right.String()
}

// GroupExpr is a parenthesized sub-expression, with an optional exponent
// and/or annotation applying to the whole group.
type GroupExpr struct {
	Inner      Expr
	Exponent   int
	Annotation string
	Span       Span
}

func (n *GroupExpr) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.Inner.String())
	b.WriteByte(')')
	if n.Exponent != 1 {
		b.WriteString(strconv.Itoa(n.Exponent))
	}
	if n.Annotation != "" {
		b.WriteByte('{')
		b.WriteString(n.Annotation)
		b.WriteByte('}')
	}
	return b.String()
}

// AnnotationExpr is a bare annotation with no accompanying unit, such as
// the "{RBC}" in a unit string that is annotation-only (treated as the
// dimensionless unit 1 per §4.1).
type AnnotationExpr struct {
	Annotation string
	Span       Span
}

func (n *AnnotationExpr) String() string {
	return "{" + n.Annotation + "}"
}
