package polyquad_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkobierski/polyquad"
)

func ExampleParseExpression() {
	p, _ := polyquad.ParseExpression("5x^3-8+3x^2-x")
	fmt.Println(p.Degree())
	fmt.Println(p)
	// Output:
	// 3
	// 5x^3+3x^2-1x-8
}

func ExampleParseCSVLine() {
	p, _ := polyquad.ParseCSVLine("2,5,3")
	fmt.Println(p)
	fmt.Println(p.EvaluateAt(decimal.NewFromInt(2)))
	// Output:
	// 3x^2+5x+2
	// 24
}

func ExamplePolynomial_IntegrateRectangles() {
	p, _ := polyquad.ParseCSVLine("2")
	lower, upper, _ := polyquad.ParseBounds("0, 10")
	v, _ := p.IntegrateRectangles(lower, upper)
	fmt.Println(v)
	// Output:
	// 20
}
