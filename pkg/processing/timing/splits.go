package timing

import (
	"golang.org/x/exp/slices"

	"github.com/velosprint/sprintlog-go/pkg/model"
)

// LapMeters is the fixed velodrome lap length the split grid is derived from.
const LapMeters = 250.0

// tolerance when deciding whether a step multiple hits totalMeters exactly
const splitTolerance = 1e-6

// StepMeters returns the grid step for a split choice, 0 for an unknown one.
func StepMeters(choice model.SplitChoice) float64 {
	switch choice {
	case model.SplitQuarter:
		return LapMeters / 4
	case model.SplitHalf:
		return LapMeters / 2
	case model.SplitFull:
		return LapMeters
	default:
		return 0
	}
}

// BuildSplitDistances generates the ordered checkpoint distances for a track
// of totalMeters at the given granularity: step, 2*step, ... while <=
// totalMeters. When the track length is not a step multiple it is appended as
// a final checkpoint, so the full length is always represented. The result is
// deduplicated by canonical label and strictly increasing.
func BuildSplitDistances(totalMeters float64, choice model.SplitChoice) []float64 {
	step := StepMeters(choice)
	if totalMeters <= 0 || step <= 0 {
		return []float64{}
	}

	ret := make([]float64, 0, int(totalMeters/step)+1)
	for d := step; d <= totalMeters+splitTolerance; d += step {
		ret = append(ret, Round3(d))
	}
	if len(ret) == 0 || totalMeters-ret[len(ret)-1] > splitTolerance {
		ret = append(ret, Round3(totalMeters))
	}
	return sortedUniqueDistances(ret)
}

// sortedUniqueDistances sorts ascending and drops entries whose canonical
// label collides with an earlier one (first occurrence wins). Non-positive
// distances are excluded; they cannot bound a segment.
func sortedUniqueDistances(distances []float64) []float64 {
	sorted := make([]float64, 0, len(distances))
	for _, d := range distances {
		if d > 0 {
			sorted = append(sorted, d)
		}
	}
	slices.Sort(sorted)

	seen := make(map[string]struct{}, len(sorted))
	ret := sorted[:0]
	for _, d := range sorted {
		key := DistanceLabel(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ret = append(ret, d)
	}
	return ret
}
