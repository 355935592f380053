package ucum

import (
	"strconv"
	"strings"

	"github.com/atomic-ehr/ucum/internal/catalogue"
)

// DisplayOptions configures round-trip rendering of a parsed unit
// expression (§C), adapted from the teacher's FormatOptions: most
// renderings only need the default, but callers printing for humans
// instead of re-parsing want print symbols substituted in.
type DisplayOptions struct {
	// UseUnicode substitutes each atom/prefix's PrintSymbol (e.g. "µ" for
	// "u", "Ω" for "Ohm", "°" for "deg") instead of its bare code.
	UseUnicode bool
}

// DefaultDisplayOptions returns the canonical-syntax rendering: exactly
// the atom codes as written, suitable for round-tripping through Parse.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{UseUnicode: false}
}

// Display parses unit and renders it back to a string per opts. With the
// default options this round-trips (modulo whitespace, which the grammar
// does not allow anyway); with UseUnicode it instead renders a
// human-facing form using each atom's print symbol.
func Display(unit string, opts DisplayOptions) (string, error) {
	expr, diags, _ := Parse(unit)
	if err := firstError(diags); err != nil {
		return "", err
	}
	if !opts.UseUnicode {
		return expr.String(), nil
	}
	return renderUnicode(expr), nil
}

func renderUnicode(expr Expr) string {
	switch n := expr.(type) {
	case *NumberExpr:
		return strconv.Itoa(n.Value)
	case *AnnotationExpr:
		return "{" + n.Annotation + "}"
	case *AtomExpr:
		return renderAtomUnicode(n)
	case *GroupExpr:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(renderUnicode(n.Inner))
		b.WriteByte(')')
		if n.Exponent != 1 {
			b.WriteString(superscript(n.Exponent))
		}
		if n.Annotation != "" {
			b.WriteByte('{')
			b.WriteString(n.Annotation)
			b.WriteByte('}')
		}
		return b.String()
	case *BinaryExpr:
		op := "·"
		if n.Op == TokSlash {
			op = "/"
		}
		return renderUnicode(n.Left) + op + renderUnicode(n.Right)
	default:
		return expr.String()
	}
}

func renderAtomUnicode(n *AtomExpr) string {
	symbol := n.Symbol
	if atom, ok := catalogue.LookupAtom(symbol); ok {
		symbol = atom.PrintSymbol
	} else if atom, prefixFactor, status := resolveSymbol(symbol); status == resolvedSymbol {
		_ = prefixFactor
		for _, p := range catalogue.TwoCharPrefixCodes() {
			if strings.HasPrefix(n.Symbol, p) && strings.HasSuffix(n.Symbol, atom.Code) {
				if prefix, ok := catalogue.LookupPrefix(p); ok {
					symbol = prefix.PrintSymbol + atom.PrintSymbol
					break
				}
			}
		}
		if symbol == n.Symbol && len(n.Symbol) > 1 {
			if prefix, ok := catalogue.LookupPrefix(n.Symbol[:1]); ok {
				symbol = prefix.PrintSymbol + atom.PrintSymbol
			}
		}
	}

	var b strings.Builder
	b.WriteString(symbol)
	if n.Exponent != 1 {
		b.WriteString(superscript(n.Exponent))
	}
	if n.Annotation != "" {
		b.WriteByte('{')
		b.WriteString(n.Annotation)
		b.WriteByte('}')
	}
	return b.String()
}

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

func superscript(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for _, r := range s {
		if r == '-' {
			b.WriteRune('⁻')
			continue
		}
		if sup, ok := superscriptDigits[r]; ok {
			b.WriteRune(sup)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
