package compare

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/processing/timing"
)

// BuildChartRows aligns all sessions' distance series onto the sorted union
// of every distance any of them recorded. Sessions without a point at a
// given distance report nil there; the chart layer renders gaps, it never
// interpolates.
func BuildChartRows(sessions []*model.Session) []model.ChartRow {
	type sessionSeries struct {
		key    string
		points map[string]float64 // canonical label -> relative time
	}

	union := make([]float64, 0)
	series := make([]sessionSeries, 0, len(sessions))
	for _, sess := range sessions {
		entry := sessionSeries{key: sess.VideoKey, points: map[string]float64{}}
		for _, p := range timing.BuildDistanceSeries(sess) {
			entry.points[timing.DistanceLabel(p.Distance)] = p.Seconds
			union = append(union, timing.Round3(p.Distance))
		}
		series = append(series, entry)
	}
	slices.Sort(union)
	union = lo.UniqBy(union, timing.DistanceLabel)

	rows := make([]model.ChartRow, 0, len(union))
	for _, d := range union {
		row := model.ChartRow{
			Distance: d,
			Values:   make(map[string]*float64, len(series)),
		}
		label := timing.DistanceLabel(d)
		for _, s := range series {
			if v, ok := s.points[label]; ok {
				row.Values[s.key] = lo.ToPtr(v)
			} else {
				row.Values[s.key] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}
