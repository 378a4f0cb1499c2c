package timing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round3 rounds v to 3 decimal places. Every value emitted by the processing
// packages goes through here; doing the rounding in decimal space avoids the
// usual float drift around .xxx5 boundaries.
func Round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(3).Float64()
	return f
}

// roundPtr3 is Round3 lifted over nullable values.
func roundPtr3(v float64) *float64 {
	r := Round3(v)
	return &r
}
