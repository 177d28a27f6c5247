package polyquad

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Polynomial is a single-variable polynomial over exact decimal
// coefficients. The coefficient at index i multiplies x^i and the list is
// never empty; the zero polynomial holds a single zero coefficient.
// Polynomials are immutable, every operation returns a new value.
type Polynomial struct {
	coeffs []decimal.Decimal
}

// New creates a polynomial from coefficients in ascending exponent order,
// constant term first. The slice is copied, so the caller may keep
// mutating it. Returns ErrNoCoefficients when coeffs is empty.
func New(coeffs []decimal.Decimal) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	cs := make([]decimal.Decimal, len(coeffs))
	copy(cs, coeffs)
	return &Polynomial{coeffs: cs}, nil
}

// Zero creates the zero polynomial.
func Zero() *Polynomial {
	return &Polynomial{coeffs: []decimal.Decimal{decimal.Zero}}
}

// term creates the single-term polynomial coeff*x^exp. Lower coefficients
// are zero.
func term(coeff decimal.Decimal, exp int) *Polynomial {
	cs := make([]decimal.Decimal, exp+1)
	cs[exp] = coeff
	return &Polynomial{coeffs: cs}
}

// Degree returns the highest exponent with a coefficient slot. The slot
// itself may hold zero; Add never trims a cancelled leading coefficient.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns the coefficient of x^n. Returns a *CoefficientError
// when n is negative or exceeds the degree.
func (p *Polynomial) Coefficient(n int) (decimal.Decimal, error) {
	if n < 0 || n > p.Degree() {
		return decimal.Decimal{}, &CoefficientError{Degree: n}
	}
	return p.coeffs[n], nil
}

// Coefficients returns a copy of the coefficient list in ascending
// exponent order.
func (p *Polynomial) Coefficients() []decimal.Decimal {
	return append([]decimal.Decimal(nil), p.coeffs...)
}

// Add returns the sum of p and q. The result has as many coefficients as
// the longer operand; indices missing from the shorter one contribute
// zero. Neither operand is modified.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	cs := make([]decimal.Decimal, n)
	for i := range cs {
		c := decimal.Zero
		if i < len(p.coeffs) {
			c = c.Add(p.coeffs[i])
		}
		if i < len(q.coeffs) {
			c = c.Add(q.coeffs[i])
		}
		cs[i] = c
	}
	return &Polynomial{coeffs: cs}
}

// EvaluateAt substitutes x into p. Powers of x are built by repeated exact
// multiplication, so the value carries no rounding at all.
func (p *Polynomial) EvaluateAt(x decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	pow := decimal.NewFromInt(1)
	for _, c := range p.coeffs {
		sum = sum.Add(c.Mul(pow))
		pow = pow.Mul(x)
	}
	return sum
}

// Equal reports whether p and q hold the same coefficient value at every
// exponent. Coefficients compare by value, so 1 and 1.00 are the same, but
// lengths matter: a trailing explicit zero coefficient makes two otherwise
// identical polynomials unequal.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// String renders p with exponents descending. Positive coefficients after
// the first rendered term get a leading +, coefficients equal to 0 or 1
// render without their numeric value, and the exponent part renders as
// nothing, "x", or "x^n" for exponents 0, 1, and above. Zero coefficients
// therefore still leave their bare exponent marker behind, so the output
// round-trips through ParseExpression only when no coefficient at a
// non-leading position is exactly 0 or 1.
func (p *Polynomial) String() string {
	var b strings.Builder
	one := decimal.NewFromInt(1)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if i != len(p.coeffs)-1 && c.Sign() > 0 {
			b.WriteByte('+')
		}
		if !c.IsZero() && !c.Equal(one) {
			b.WriteString(c.String())
		}
		switch {
		case i == 0:
		case i == 1:
			b.WriteByte('x')
		default:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	return b.String()
}
