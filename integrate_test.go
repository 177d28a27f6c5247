package polyquad

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntegrate(t *testing.T) {
	cases := []struct {
		name         string
		coeffs       []string
		lower, upper string
		rect, trap   string
	}{
		// A constant integrates exactly regardless of the step count.
		{"constant", []string{"2"}, "0", "10", "20", "20"},
		{"constant-negative-interval", []string{"2"}, "-5", "5", "20", "20"},
		// f(x) = x from 0 to 1: the left-endpoint rule undershoots by
		// dx/2 worth of area and the trapezoid rule gains the half-up
		// rounding of each (k+1/2)*10^-6 term.
		{"linear", []string{"0", "1"}, "0", "1", "0.4995", "0.5005"},
		// f(x) = 3x^2+1 from 0 to 10; exact integral is 1010.
		{"quadratic", []string{"1", "0", "3"}, "0", "10", "1008.5005", "1010.001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustPoly(t, c.coeffs...)
			lower := decimal.RequireFromString(c.lower)
			upper := decimal.RequireFromString(c.upper)
			rect, err := p.IntegrateRectangles(lower, upper)
			if err != nil {
				t.Fatalf("rectangles: %v", err)
			}
			if !rect.Equal(decimal.RequireFromString(c.rect)) {
				t.Errorf("rectangles over [%s, %s] = %v, want %s", c.lower, c.upper, rect, c.rect)
			}
			trap, err := p.IntegrateTrapezoids(lower, upper)
			if err != nil {
				t.Fatalf("trapezoids: %v", err)
			}
			if !trap.Equal(decimal.RequireFromString(c.trap)) {
				t.Errorf("trapezoids over [%s, %s] = %v, want %s", c.lower, c.upper, trap, c.trap)
			}
		})
	}
}

func TestIntegrateBoundsErrors(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper string
	}{
		{"equal", "5", "5"},
		{"reversed", "6", "5"},
		// The step width of this interval rounds to zero at 6 digits.
		{"degenerate", "0", "0.000000001"},
	}
	p := mustPoly(t, "2")
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lower := decimal.RequireFromString(c.lower)
			upper := decimal.RequireFromString(c.upper)
			_, err := p.IntegrateRectangles(lower, upper)
			if reflect.TypeOf(err) != reflect.TypeOf(new(BoundsError)) {
				t.Errorf("rectangles over [%s, %s]: want *BoundsError, got %v", c.lower, c.upper, err)
			}
			_, err = p.IntegrateTrapezoids(lower, upper)
			if reflect.TypeOf(err) != reflect.TypeOf(new(BoundsError)) {
				t.Errorf("trapezoids over [%s, %s]: want *BoundsError, got %v", c.lower, c.upper, err)
			}
		})
	}
}

func TestIntegrateStepCount(t *testing.T) {
	// f(x) = 1 turns the rectangle rule into dx per step, so the sum
	// counts the iterations: exactly 1000 whenever dx divides the
	// interval, which it does by construction.
	p := mustPoly(t, "1")
	lower := decimal.NewFromInt(0)
	upper := decimal.NewFromInt(7)
	got, err := p.IntegrateRectangles(lower, upper)
	if err != nil {
		t.Fatalf("rectangles: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(7)) {
		t.Errorf("unit integral over [0, 7] = %v, want 7", got)
	}
}
