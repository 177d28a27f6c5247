package polyquad

import "github.com/shopspring/decimal"

// Quadrature parameters: the interval is always cut into 1000 equal
// steps, and the step width is rounded to 6 fractional digits, half up.
const (
	quadratureSteps = 1000
	stepScale       = 6
)

var (
	stepCount = decimal.NewFromInt(quadratureSteps)
	two       = decimal.NewFromInt(2)
)

// stepWidth computes the rounded step for an integration interval.
func stepWidth(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	if lower.Cmp(upper) >= 0 {
		return decimal.Decimal{}, &BoundsError{Lower: lower, Upper: upper}
	}
	dx := upper.Sub(lower).DivRound(stepCount, stepScale)
	if dx.Sign() <= 0 {
		// The interval is so narrow that the rounded step vanished;
		// stepping by it would never reach the upper bound.
		return decimal.Decimal{}, &BoundsError{Lower: lower, Upper: upper}
	}
	return dx, nil
}

// IntegrateRectangles approximates the definite integral of p from lower
// to upper with the left-endpoint rectangle rule over 1000 equal steps.
// The abscissa advances by repeated addition of the rounded step width and
// stops once it is no longer strictly below the upper bound; every product
// and sum stays in exact decimal arithmetic.
func (p *Polynomial) IntegrateRectangles(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	dx, err := stepWidth(lower, upper)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for i := lower; i.Cmp(upper) < 0; i = i.Add(dx) {
		sum = sum.Add(p.EvaluateAt(i).Mul(dx))
	}
	return sum, nil
}

// IntegrateTrapezoids approximates the definite integral of p from lower
// to upper with the trapezoid rule over 1000 equal steps, stepping exactly
// like IntegrateRectangles. Each step's halved area is rounded to 6
// fractional digits, half up; nothing else rounds.
func (p *Polynomial) IntegrateTrapezoids(lower, upper decimal.Decimal) (decimal.Decimal, error) {
	dx, err := stepWidth(lower, upper)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for i := lower; i.Cmp(upper) < 0; i = i.Add(dx) {
		area := p.EvaluateAt(i).Add(p.EvaluateAt(i.Add(dx))).Mul(dx)
		sum = sum.Add(area.DivRound(two, stepScale))
	}
	return sum, nil
}
