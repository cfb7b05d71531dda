package calculator

import (
	"math"
	"strconv"
)

// FormatNumber renders a value for display and history records.
//
// Integral values inside the int64 range print without a fractional part
// ("7", not "7.0"); everything else uses the shortest representation that
// round-trips back to the same float64. NaN and the infinities print as
// "NaN", "+Inf" and "-Inf".
func FormatNumber(v float64) string {
	if isIntegral(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isIntegral reports whether v survives a round trip through int64 unchanged.
// Out-of-range values are checked first since the conversion is
// implementation-defined for them.
func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return false
	}
	return v == float64(int64(v))
}
