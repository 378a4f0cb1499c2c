package timing

import "strconv"

// DistanceLabel converts a distance into its canonical string key: rounded to
// 3 decimals, minimal decimal representation, no trailing zeros or decimal
// point. This is the only key space for distance-indexed marks; every lookup
// and insertion must canonicalize first, otherwise floating point drift
// (62.50000001 vs 62.5) silently creates duplicate keys.
func DistanceLabel(d float64) string {
	return strconv.FormatFloat(Round3(d), 'f', -1, 64)
}
