package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LabelFormatter renders an axis value as label text.
type LabelFormatter func(float64) string

// Percent formats a fraction as a percentage, with fewer decimals for
// larger values.
func Percent(value float64) string {
	value *= 100
	if value == 0 {
		return "0%"
	}
	switch abs := math.Abs(value); {
	case abs >= 100:
		return formatFloat(value, 0) + "%"
	case abs >= 10:
		return formatFloat(value, 1) + "%"
	default:
		return formatFloat(value, 2) + "%"
	}
}

// Number formats a plain value with an SI suffix and a precision that
// shrinks as the magnitude grows.
func Number(value float64) string {
	if value == 0 {
		return "0"
	}
	switch abs := math.Abs(value); {
	case abs >= 1_000_000:
		return formatFloat(value/1_000_000, 1) + "M"
	case abs >= 1000:
		return formatFloat(value/1000, 1) + "k"
	case abs < 0.01:
		return formatFloat(value*1000, 1) + "m"
	case abs < 1:
		return formatFloat(value, 2)
	case abs < 10:
		return formatFloat(value, 1)
	default:
		return formatFloat(value, 0)
	}
}

// Fixed returns a formatter that always prints the given number of
// decimals.
func Fixed(decimals int) LabelFormatter {
	return func(value float64) string {
		return strconv.FormatFloat(value, 'f', decimals, 64)
	}
}

// FormatterByName resolves the formatter names accepted in style files:
// "percent", "number", and "fixed" (two decimals) or "fixedN".
func FormatterByName(name string) (LabelFormatter, error) {
	switch name {
	case "percent":
		return Percent, nil
	case "number":
		return Number, nil
	case "fixed":
		return Fixed(2), nil
	}
	if digits, ok := strings.CutPrefix(name, "fixed"); ok {
		n, err := strconv.Atoi(digits)
		if err == nil && n >= 0 && n <= 12 {
			return Fixed(n), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown label format %q", ErrConfig, name)
}

// formatFloat formats a float with at most the given number of decimals,
// dropping trailing zeros.
func formatFloat(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)

	// Only trim zeros after the decimal point, not before it.
	if decimals > 0 && strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}

	if formatted == "" || formatted == "-0" {
		formatted = "0"
	}

	return formatted
}
