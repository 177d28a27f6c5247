package polyquad

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrNoCoefficients is the error from constructing a polynomial with no
// coefficients.
var ErrNoCoefficients = errors.New("polynomial needs at least one coefficient")

// SyntaxError is an error indicating a token that is valid on its own but
// structurally wrong where it appears. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Want describes what the parser expected.
	Want string
	// Got is the token that was found instead. It is the empty string when
	// the input ended.
	Got string
}

func (err *SyntaxError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "expected "+err.Want+" but input ended")
	}
	return errpos(err.Col, "expected "+err.Want+", found "+strconv.Quote(err.Got))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating empty input. It implements
// InputError.
type EmptyExpressionError struct {
	// Col is the position at which input ended.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// CoefficientError is an error from accessing a coefficient outside a
// polynomial's degree range.
type CoefficientError struct {
	// Degree is the requested exponent.
	Degree int
}

func (err *CoefficientError) Error() string {
	return "no coefficient of degree " + strconv.Itoa(err.Degree)
}

// BoundsError is an error indicating an integration interval whose lower
// bound does not lie strictly below its upper bound, or whose rounded step
// width degenerates to zero.
type BoundsError struct {
	// Lower and Upper are the offending bounds.
	Lower, Upper decimal.Decimal
}

func (err *BoundsError) Error() string {
	return "invalid bounds: lower " + err.Lower.String() + " must be less than upper " + err.Upper.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from text that does not match a grammar implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
