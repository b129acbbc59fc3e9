package models

import (
	"math"
	"strconv"
	"strings"
)

// FormatFee renders a fee with the shortest digits that round-trip and at
// least one fractional digit ("5500.0"). Magnitudes outside [1e-3, 1e7) use
// scientific notation without a plus sign ("1.2E7").
func FormatFee(fee float64) string {
	switch {
	case math.IsNaN(fee):
		return "NaN"
	case math.IsInf(fee, 1):
		return "Infinity"
	case math.IsInf(fee, -1):
		return "-Infinity"
	case fee == 0:
		if math.Signbit(fee) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(fee)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(fee, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(fee, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}
