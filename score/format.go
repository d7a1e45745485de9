package score

import (
	"math"

	"github.com/shopspring/decimal"
)

// Format renders a score for display. Whole numbers print without a decimal
// point; anything else prints with two decimals, rounded half away from zero
// on the shortest decimal form of s (so 1.005 becomes "1.01").
func Format(s float64) string {
	switch {
	case math.IsNaN(s):
		return "NaN"
	case math.IsInf(s, 1):
		return "Infinity"
	case math.IsInf(s, -1):
		return "-Infinity"
	}

	d := decimal.NewFromFloat(s)
	if s == math.Trunc(s) {
		return d.String()
	}

	return d.StringFixed(2)
}
