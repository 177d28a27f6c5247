// Package polyquad implements exact-decimal polynomials and their numeric
// integration.
//
// A polynomial is an immutable list of arbitrary-precision decimal
// coefficients indexed by exponent. Polynomials are built from two textual
// grammars, a CSV coefficient list like "1,0,3" and an algebraic form like
// "5x^3-8+3x^2-x", and integrated over an interval with fixed 1000-step
// rectangle and trapezoid rules. All arithmetic is exact base-10; the only
// rounding is the 6-digit half-up rounding of the quadrature step width and
// of each trapezoid halving.
package polyquad
