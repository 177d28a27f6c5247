package polyquad

import "github.com/shopspring/decimal"

// ParseBounds parses an integration bounds line: two comma-separated
// numbers with the lower bound strictly less than the upper. Unlike
// coefficient lines, whitespace is also allowed at the ends of the line.
// A well-formed line with lower >= upper yields a *BoundsError.
func ParseBounds(line string) (lower, upper decimal.Decimal, err error) {
	var zero decimal.Decimal
	i := skipSpaces(line, 0)
	lower, i, err = scanCoefficient(line, i)
	if err != nil {
		return zero, zero, err
	}
	i = skipSpaces(line, i)
	if i == len(line) || line[i] != ',' {
		return zero, zero, &SyntaxError{Col: i + 1, Want: `","`, Got: tokenAt(line, i)}
	}
	i = skipSpaces(line, i+1)
	upper, i, err = scanCoefficient(line, i)
	if err != nil {
		return zero, zero, err
	}
	i = skipSpaces(line, i)
	if i != len(line) {
		return zero, zero, &SyntaxError{Col: i + 1, Want: "end of line", Got: tokenAt(line, i)}
	}
	if lower.Cmp(upper) >= 0 {
		return zero, zero, &BoundsError{Lower: lower, Upper: upper}
	}
	return lower, upper, nil
}
