// Package infoloss expresses absolute information loss values relative to the
// loss range of an anonymization result.
package infoloss

import "math"

// Normalize converts value into a percentage of upper, offset by lower:
//
//	(value - lower) / upper * 100
//
// It does not clamp. The result is undefined (not finite) when upper is 0;
// callers that cannot rule this out use Relative.
func Normalize(value, lower, upper float64) float64 {
	return (value - lower) / upper * 100
}

// Relative is Normalize with the zero-range case made explicit. It returns
// false when upper is 0 or the result is not a finite number.
func Relative(value, lower, upper float64) (float64, bool) {
	if upper == 0 {
		return 0, false
	}
	pct := Normalize(value, lower, upper)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}
