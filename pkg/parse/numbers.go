// SPDX-License-Identifier: MPL-2.0

package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cmdtree/cmdtree/pkg/cursor"
)

var (
	integerPattern = regexp.MustCompile(`\A[+\-]?[0-9_]+`)
	decimalPattern = regexp.MustCompile(`\A[+\-]?[0-9_,.]+`)
)

// Integer reads a signed integer. Underscores may be used as digit separators.
func Integer() Parser[int] {
	return NamedFunc("Integer", readInteger)
}

// IntAtLeast reads an integer >= minimum.
func IntAtLeast(minimum int) Parser[int] {
	return IntBetween(minimum, math.MaxInt)
}

// IntAtMost reads an integer <= maximum.
func IntAtMost(maximum int) Parser[int] {
	return IntBetween(math.MinInt, maximum)
}

// IntBetween reads an integer within [minimum, maximum].
func IntBetween(minimum, maximum int) Parser[int] {
	var name string
	switch {
	case minimum == math.MinInt && maximum == math.MaxInt:
		name = "Integer"
	case minimum == math.MinInt:
		name = fmt.Sprintf("Integer smaller than %d", maximum)
	case maximum == math.MaxInt:
		name = fmt.Sprintf("Integer bigger than %d", minimum)
	default:
		name = fmt.Sprintf("Integer between %d and %d", minimum, maximum)
	}

	return NamedFunc(name, func(c *cursor.Cursor) (int, error) {
		v, err := readInteger(c)
		if err != nil {
			return 0, err
		}
		if v < minimum {
			if maximum == math.MaxInt {
				return 0, NewError(c, fmt.Sprintf("Integer too small (not >= %d)", minimum))
			}
			return 0, NewError(c, fmt.Sprintf("Integer too small (not between %d and %d)", minimum, maximum))
		}
		if v > maximum {
			if minimum == math.MinInt {
				return 0, NewError(c, fmt.Sprintf("Integer too large (not <= %d)", maximum))
			}
			return 0, NewError(c, fmt.Sprintf("Integer too large (not between %d and %d)", minimum, maximum))
		}
		return v, nil
	})
}

func readInteger(c *cursor.Cursor) (int, error) {
	read := c.ReadPattern(integerPattern)
	v, err := strconv.Atoi(strings.ReplaceAll(read, "_", ""))
	if err != nil {
		return 0, WrapError(c, "Invalid integer. Maybe too large/small?", err)
	}
	return v, nil
}

// Decimal reads a signed decimal number. Underscores may be used as digit separators.
func Decimal() Parser[float64] {
	return NamedFunc("Decimal value", readDecimal)
}

// DecimalAtLeast reads a decimal >= minimum.
func DecimalAtLeast(minimum float64) Parser[float64] {
	return DecimalBetween(minimum, math.Inf(1))
}

// DecimalAtMost reads a decimal <= maximum.
func DecimalAtMost(maximum float64) Parser[float64] {
	return DecimalBetween(math.Inf(-1), maximum)
}

// DecimalBetween reads a decimal within [minimum, maximum].
func DecimalBetween(minimum, maximum float64) Parser[float64] {
	var name string
	switch {
	case math.IsInf(minimum, -1) && math.IsInf(maximum, 1):
		name = "Decimal value"
	case math.IsInf(minimum, -1):
		name = "Decimal smaller than " + formatFloat(maximum)
	case math.IsInf(maximum, 1):
		name = "Decimal bigger than " + formatFloat(minimum)
	default:
		name = "Decimal between " + formatFloat(minimum) + " and " + formatFloat(maximum)
	}

	return NamedFunc(name, func(c *cursor.Cursor) (float64, error) {
		v, err := readDecimal(c)
		if err != nil {
			return 0, err
		}
		if v < minimum {
			if math.IsInf(maximum, 1) {
				return 0, NewError(c, "Decimal value too small (not >= "+formatFloat(minimum)+")")
			}
			return 0, NewError(c, "Decimal value too small (not between "+formatFloat(minimum)+" and "+formatFloat(maximum)+")")
		}
		if v > maximum {
			if math.IsInf(minimum, -1) {
				return 0, NewError(c, "Decimal value too large (not <= "+formatFloat(maximum)+")")
			}
			return 0, NewError(c, "Decimal value too large (not between "+formatFloat(minimum)+" and "+formatFloat(maximum)+")")
		}
		return v, nil
	})
}

func readDecimal(c *cursor.Cursor) (float64, error) {
	read := c.ReadPattern(decimalPattern)
	v, err := strconv.ParseFloat(strings.ReplaceAll(read, "_", ""), 64)
	if err != nil {
		return 0, WrapError(c, "Invalid decimal value. Maybe too large/small?", err)
	}
	return v, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
