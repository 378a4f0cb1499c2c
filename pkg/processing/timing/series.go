package timing

import "github.com/velosprint/sprintlog-go/pkg/model"

// BuildDistanceSeries projects a session onto (distance, relative time)
// points using the session's recorded distances in their stored order.
// Distances without a mark yield no point; nothing is interpolated.
func BuildDistanceSeries(sess *model.Session) []model.SeriesPoint {
	return seriesOver(sess.Distances, sess.Marks)
}

// BuildSplitSeries is like BuildDistanceSeries but over the regenerated split
// grid for the given granularity, so a session can be viewed at a granularity
// its stored distances were never built for. Grid points the session never
// marked simply produce no entry.
func BuildSplitSeries(sess *model.Session, choice model.SplitChoice) []model.SeriesPoint {
	return seriesOver(BuildSplitDistances(sess.DistanceTotal, choice), sess.Marks)
}

func seriesOver(distances []float64, marks model.Marks) []model.SeriesPoint {
	start, ok := marks.Start()
	if !ok {
		return []model.SeriesPoint{}
	}
	ret := make([]model.SeriesPoint, 0, len(distances))
	for _, d := range distances {
		if v, ok := marks.Value(DistanceLabel(d)); ok {
			ret = append(ret, model.SeriesPoint{
				Distance: Round3(d),
				Seconds:  Round3(v - start),
			})
		}
	}
	return ret
}
