package infoloss

import (
	"math"
	"strconv"
	"strings"
)

// FormatDouble renders v the way the anonymization engine prints doubles:
// plain decimal notation with at least one fractional digit for magnitudes in
// [1e-3, 1e7), scientific notation ("1.0E7") otherwise.
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

// FormatPercent renders a percentage with exactly three fractional digits.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 3, 64)
}
