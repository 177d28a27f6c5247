package polyquad

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ParseCSVLine parses a comma-separated list of exact decimal coefficients
// in ascending exponent order, constant term first, e.g. "1,0,3" for
// 3x^2+1. Each number may carry a sign and a fractional part; magnitudes
// must not have leading zeros. Whitespace is allowed around the commas
// only, and the line must contain at least one number.
func ParseCSVLine(line string) (*Polynomial, error) {
	var coeffs []decimal.Decimal
	i := 0
	for {
		c, end, err := scanCoefficient(line, i)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, c)
		i = end
		if i == len(line) {
			return &Polynomial{coeffs: coeffs}, nil
		}
		j := skipSpaces(line, i)
		if j == len(line) || line[j] != ',' {
			return nil, &SyntaxError{Col: j + 1, Want: `","`, Got: tokenAt(line, j)}
		}
		i = skipSpaces(line, j+1)
	}
}

// scanCoefficient scans one optionally signed number at line[i:] and
// converts it to an exact decimal, returning the index just past it.
func scanCoefficient(line string, i int) (decimal.Decimal, int, error) {
	start := i
	if i < len(line) && (line[i] == '+' || line[i] == '-') {
		i++
	}
	end, err := scanNumber(line, i)
	if err != nil {
		return decimal.Decimal{}, 0, err
	}
	c, err := decimal.NewFromString(line[start:end])
	if err != nil {
		panic("polyquad: unparseable number " + strconv.Quote(line[start:end]))
	}
	return c, end, nil
}
