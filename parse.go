package polyquad

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// maxExponent bounds parsed exponents. A term's storage is proportional to
// its exponent, so untrusted input must not pick the allocation size.
const maxExponent = 1 << 16

// Expression = Term { SignedTerm }
// Term       = [ sign ] [ num ] [ XPart ]   (num or XPart required)
// SignedTerm = sign [ num ] [ XPart ]
// XPart      = [ "*" ] "x" [ "^" integer ]

// ParseExpression parses an algebraic polynomial expression such as
// "5x^3-8+3x^2-x".
//
// A term is an optional decimal coefficient followed by an optional x
// part, written x, x^n, *x, or *x^n; at least one of the two must be
// present. The first term may be unsigned, every later term must carry an
// explicit + or -. An omitted coefficient means 1 (or -1 after a minus)
// and a bare x means exponent 1, so "5x^3" and "5*x^3" are the same term
// and "-x" is -1 times x. Exponents are unsigned integers without leading
// zeros, and the expression admits no whitespace.
//
// Terms are summed in order starting from the zero polynomial, so a
// repeated exponent accumulates and the result's degree is the highest
// exponent mentioned.
func ParseExpression(src string) (*Polynomial, error) {
	lx := lex(src)
	p := Zero()
	for first := true; ; first = false {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			if first {
				return nil, &EmptyExpressionError{Col: tok.pos}
			}
			return p, nil
		}
		lx.push(tok)
		t, err := parseterm(lx, first)
		if err != nil {
			return nil, err
		}
		p = p.Add(t)
	}
}

// parseterm parses one term into its single-term polynomial. Terms after
// the first must begin with an explicit sign. parseterm pushes back the
// first token that does not belong to the term.
func parseterm(lx *lexer, first bool) (*Polynomial, error) {
	tok, err := lx.next()
	if err != nil {
		return nil, err
	}
	neg := false
	if tok.kind == tokenSign {
		neg = tok.text == "-"
		tok, err = lx.next()
		if err != nil {
			return nil, err
		}
	} else if !first {
		return nil, &SyntaxError{Col: tok.pos, Want: `"+" or "-" starting a term`, Got: tok.text}
	}

	coeff := decimal.NewFromInt(1)
	havecoeff := false
	if tok.kind == tokenNum {
		coeff, err = decimal.NewFromString(tok.text)
		if err != nil {
			panic("polyquad: unparseable number token " + strconv.Quote(tok.text))
		}
		havecoeff = true
		tok, err = lx.next()
		if err != nil {
			return nil, err
		}
	}
	if neg {
		coeff = coeff.Neg()
	}

	star := false
	if tok.kind == tokenStar {
		if !havecoeff {
			return nil, &SyntaxError{Col: tok.pos, Want: `coefficient before "*"`, Got: tok.text}
		}
		star = true
		tok, err = lx.next()
		if err != nil {
			return nil, err
		}
	}
	if tok.kind != tokenX {
		if star {
			return nil, &SyntaxError{Col: tok.pos, Want: `"x"`, Got: tok.text}
		}
		if !havecoeff {
			return nil, &SyntaxError{Col: tok.pos, Want: `coefficient or "x"`, Got: tok.text}
		}
		// Constant term; the token belongs to the next term.
		lx.push(tok)
		return term(coeff, 0), nil
	}

	tok, err = lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenCaret {
		lx.push(tok)
		return term(coeff, 1), nil
	}
	tok, err = lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenNum {
		return nil, &SyntaxError{Col: tok.pos, Want: "integer exponent", Got: tok.text}
	}
	exp, err := strconv.Atoi(tok.text)
	if err != nil {
		return nil, &SyntaxError{Col: tok.pos, Want: "integer exponent", Got: tok.text}
	}
	if exp > maxExponent {
		return nil, &SyntaxError{Col: tok.pos, Want: "exponent no greater than " + strconv.Itoa(maxExponent), Got: tok.text}
	}
	return term(coeff, exp), nil
}
