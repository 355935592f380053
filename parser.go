package ucum

import "strconv"

// parser is a hand-rolled recursive-descent parser over the token stream
// produced by Lex, following the grammar of §4.3:
//
//	term       := factor (('.' | '/') factor)*
//	factor     := '(' term ')' exponent? annotation?
//	            | ATOM exponent? annotation?
//	            | '10' ('*' | '^') DIGIT+ annotation?
//	            | DIGIT+
//	            | annotation
//	exponent   := '^'? ('+' | '-')? DIGIT+
//	annotation := '{' TEXT? '}'
//
// A bare integer factor takes neither an exponent nor an annotation.
//
// A leading '/' is permitted and denotes division of the implicit unity
// factor 1, e.g. "/min" parses as NumberExpr{1} / AtomExpr{"min"}.
type parser struct {
	tokens []Token
	pos    int
	diags  []*Diagnostic
	depth  int
}

// maxParseDepth guards against pathologically nested groups, e.g.
// "((((...))))", per the recursion-depth invariant carried into
// canonicalization (§C, recursion guard at 32).
const maxParseDepth = 32

// Parse lexes and parses a UCUM unit-term string into an Expr tree. Parse
// errors are collected rather than aborting at the first one where
// possible, so a caller can report every problem in one pass (§4.3
// "Ordering"); the returned Expr may be partial when diags is non-empty.
func Parse(input string) (Expr, []*Diagnostic, []Warning) {
	tokens, warnings := Lex(input)
	p := &parser{tokens: tokens}

	if len(tokens) == 1 { // EOF only: empty input denotes unity
		return &NumberExpr{Value: 1, Span: Span{0, 0}}, nil, warnings
	}

	expr := p.parseTerm()

	if p.peek().Kind != TokEOF {
		tok := p.peek()
		p.errorf(ErrUnexpectedToken, tok.Span, "unexpected %s after unit expression", tok)
	}

	return expr, p.diags, warnings
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(kind ErrorKind, span Span, format string, args ...any) {
	p.diags = append(p.diags, newDiagnostic(kind, span, format, args...))
}

func (p *parser) parseTerm() Expr {
	var left Expr
	if p.peek().Kind == TokSlash {
		left = &NumberExpr{Value: 1, Span: Span{p.peek().Span.Offset, 0}}
	} else {
		left = p.parseFactor()
	}

	for p.peek().Kind == TokDot || p.peek().Kind == TokSlash {
		op := p.advance().Kind
		right := p.parseFactor()
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left
}

func (p *parser) parseFactor() Expr {
	switch tok := p.peek(); tok.Kind {
	case TokLParen:
		return p.parseGroup()
	case TokLBrace:
		return p.parseBareAnnotation()
	case TokDigit:
		return p.parseAtomOrNumber()
	case TokAtom:
		return p.parseAtom()
	case TokEOF:
		p.errorf(ErrUnexpectedEOF, tok.Span, "expected a unit term but reached end of input")
		return &NumberExpr{Value: 1, Span: tok.Span}
	default:
		p.errorf(ErrUnexpectedToken, tok.Span, "unexpected %s where a unit term was expected", tok)
		p.advance()
		return &NumberExpr{Value: 1, Span: tok.Span}
	}
}

func (p *parser) parseGroup() Expr {
	open := p.advance() // consume '('
	p.depth++
	if p.depth > maxParseDepth {
		p.errorf(ErrSyntax, open.Span, "unit expression nests more than %d groups deep", maxParseDepth)
		p.depth--
		return &NumberExpr{Value: 1, Span: open.Span}
	}

	inner := p.parseTerm()
	p.depth--

	if p.peek().Kind == TokRParen {
		p.advance()
	} else {
		p.errorf(ErrUnexpectedToken, p.peek().Span, "expected ')' to close group opened at %d", open.Span.Offset)
	}

	exp := p.parseOptionalExponent()
	ann := p.parseOptionalAnnotation()

	return &GroupExpr{Inner: inner, Exponent: exp, Annotation: ann, Span: Span{open.Span.Offset, p.peek().Span.Offset - open.Span.Offset}}
}

func (p *parser) parseBareAnnotation() Expr {
	open := p.advance() // consume '{'
	text := ""
	if p.peek().Kind == TokAnnotationText {
		text = p.advance().Value
	}
	if p.peek().Kind == TokRBrace {
		p.advance()
	} else {
		p.errorf(ErrUnexpectedToken, p.peek().Span, "expected '}' to close annotation opened at %d", open.Span.Offset)
	}
	return &AnnotationExpr{Annotation: text, Span: open.Span}
}

// parseAtomOrNumber handles the power-of-ten atoms "10*" and "10^", whose
// codes begin with digits and so are indistinguishable from a bare number
// until the lexer's boundary between the digit run and the following
// '*'/'^' is examined.
func (p *parser) parseAtomOrNumber() Expr {
	digitTok := p.advance()

	if digitTok.Value == "10" {
		next := p.peek()
		if (next.Kind == TokStar || next.Kind == TokCaret) && p.peekAt(1).Kind == TokDigit {
			symbol := digitTok.Value + next.Value
			p.advance() // consume '*' or '^'
			expTok := p.advance()
			exp, err := strconv.Atoi(expTok.Value)
			if err != nil {
				p.errorf(ErrInvalidNumber, expTok.Span, "invalid exponent %q", expTok.Value)
				exp = 1
			}
			ann := p.parseOptionalAnnotation()
			return &AtomExpr{Symbol: symbol, Exponent: exp, Annotation: ann, Span: digitTok.Span}
		}
	}

	value, err := strconv.Atoi(digitTok.Value)
	if err != nil {
		p.errorf(ErrInvalidNumber, digitTok.Span, "invalid numeric factor %q", digitTok.Value)
		value = 1
	}
	return &NumberExpr{Value: value, Span: digitTok.Span}
}

func (p *parser) parseAtom() Expr {
	tok := p.advance()
	exp := p.parseOptionalExponent()
	ann := p.parseOptionalAnnotation()
	return &AtomExpr{Symbol: tok.Value, Exponent: exp, Annotation: ann, Span: tok.Span}
}

// parseOptionalExponent parses ('^'? ('+'|'-')? DIGIT+), defaulting to 1
// when no exponent is present (§4.3).
func (p *parser) parseOptionalExponent() int {
	hadCaret := false
	if p.peek().Kind == TokCaret {
		p.advance()
		hadCaret = true
	}

	sign := 1
	switch p.peek().Kind {
	case TokPlus:
		p.advance()
	case TokMinus:
		sign = -1
		p.advance()
	}

	if p.peek().Kind != TokDigit {
		if hadCaret {
			p.errorf(ErrSyntax, p.peek().Span, "expected an exponent digit after '^'")
		}
		return 1
	}

	tok := p.advance()
	value, err := strconv.Atoi(tok.Value)
	if err != nil {
		p.errorf(ErrInvalidNumber, tok.Span, "invalid exponent %q", tok.Value)
		return 1
	}
	return sign * value
}

func (p *parser) parseOptionalAnnotation() string {
	if p.peek().Kind != TokLBrace {
		return ""
	}
	open := p.advance()
	text := ""
	if p.peek().Kind == TokAnnotationText {
		text = p.advance().Value
	}
	if p.peek().Kind == TokRBrace {
		p.advance()
	} else {
		p.errorf(ErrUnexpectedToken, p.peek().Span, "expected '}' to close annotation opened at %d", open.Span.Offset)
	}
	return text
}
