package timing

import (
	"math"

	"github.com/velosprint/sprintlog-go/pkg/model"
)

// checkpoint pairs a distance with its (possibly unrecorded) mark.
type checkpoint struct {
	distance float64
	mark     *float64
}

// BuildMetrics derives per-segment kinematics from a session's marks over the
// given checkpoint distances. Without a start mark nothing can be anchored
// and the result is empty.
//
// A pair of consecutive checkpoints is skipped (no row emitted) when the
// bounding marks are missing or yield a non-positive time or distance delta.
// A skip does not reset the acceleration chain: the next emitted row computes
// its acceleration against the last row that was actually emitted, however
// many checkpoints back that was.
func BuildMetrics(distances []float64, marks model.Marks) []model.SegmentRow {
	start, ok := marks.Start()
	if !ok {
		return []model.SegmentRow{}
	}

	cps := make([]checkpoint, 0, len(distances)+1)
	cps = append(cps, checkpoint{distance: 0, mark: &start})
	for _, d := range sortedUniqueDistances(distances) {
		cp := checkpoint{distance: Round3(d)}
		if v, ok := marks.Value(DistanceLabel(d)); ok {
			cp.mark = &v
		}
		cps = append(cps, cp)
	}

	rows := make([]model.SegmentRow, 0, len(cps)-1)
	// velocity (m/s) of the last emitted row, NaN before the first emission
	prevVelocity := math.NaN()
	for i := 1; i < len(cps); i++ {
		cur, next := cps[i-1], cps[i]
		if cur.mark == nil || next.mark == nil {
			continue
		}
		deltaTime := *next.mark - *cur.mark
		deltaDistance := next.distance - cur.distance
		if deltaTime <= 0 || deltaDistance <= 0 ||
			math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
			continue
		}

		velocity := deltaDistance / deltaTime // m/s
		row := model.SegmentRow{
			From:          cur.distance,
			To:            next.distance,
			DeltaTime:     Round3(deltaTime),
			DeltaDistance: Round3(deltaDistance),
			VelocityKmh:   Round3(velocity * 3.6),
		}
		if !math.IsNaN(prevVelocity) {
			row.Acceleration = roundPtr3((velocity - prevVelocity) / deltaTime)
		}
		prevVelocity = velocity
		rows = append(rows, row)
	}
	return rows
}
