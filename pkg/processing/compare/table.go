package compare

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/processing/timing"
)

// StartLabel is the display label for the distance-0 row.
const StartLabel = "Start"

// BuildTotalTimeRows builds one row per checkpoint distance over the union of
// all compared sessions' distances, valued with elapsed time since each
// session's own start mark. Sessions with different split configurations are
// reconciled onto the union; a session missing a checkpoint reports nil
// there. The fixed 15 m checkpoint row is included only when at least one
// session recorded a "15" mark.
func BuildTotalTimeRows(sessions []*model.Session) []model.TableRow {
	rows := make([]model.TableRow, 0)
	for _, d := range totalRowDistances(sessions) {
		row := model.TableRow{
			Distance: d,
			Label:    rowLabel(d),
			Values:   make(map[string]*float64, len(sessions)),
		}
		for _, sess := range sessions {
			row.Values[sess.VideoKey] = totalTimeValue(sess, d)
		}
		rows = append(rows, row)
	}
	return rows
}

func rowLabel(d float64) string {
	if d == 0 {
		return StartLabel
	}
	return timing.DistanceLabel(d)
}

// row key set: {0} ∪ every session distance ∪ {15} if any "15" mark exists
func totalRowDistances(sessions []*model.Session) []float64 {
	distances := []float64{0}
	for _, sess := range sessions {
		for _, d := range sess.Distances {
			if d > 0 {
				distances = append(distances, timing.Round3(d))
			}
		}
		if _, ok := sess.Marks.Value(model.MarkFixed15); ok {
			distances = append(distances, 15)
		}
	}
	slices.Sort(distances)
	return lo.UniqBy(distances, timing.DistanceLabel)
}

func totalTimeValue(sess *model.Session, d float64) *float64 {
	start, ok := sess.Marks.Start()
	if !ok {
		return nil
	}
	if d == 0 {
		// elapsed time from start to start, by definition
		return lo.ToPtr(0.0)
	}
	if v, ok := sess.Marks.Value(timing.DistanceLabel(d)); ok {
		r := timing.Round3(v - start)
		return &r
	}
	return nil
}

// BuildSplitTimeRows builds rows over a single shared split grid computed
// from the largest configured track distance among the compared sessions,
// valued with segment time: the elapsed time since the previous grid
// checkpoint (or since start for the first row). A session missing either
// bounding mark reports nil.
func BuildSplitTimeRows(
	sessions []*model.Session, choice model.SplitChoice,
) []model.TableRow {
	rows := make([]model.TableRow, 0)
	if len(sessions) == 0 {
		return rows
	}
	maxTotal := lo.Max(lo.Map(sessions,
		func(s *model.Session, _ int) float64 { return s.DistanceTotal }))
	grid := timing.BuildSplitDistances(maxTotal, choice)

	for i, d := range grid {
		row := model.TableRow{
			Distance: d,
			Label:    timing.DistanceLabel(d),
			Values:   make(map[string]*float64, len(sessions)),
		}
		for _, sess := range sessions {
			row.Values[sess.VideoKey] = splitTimeValue(sess, grid, i)
		}
		rows = append(rows, row)
	}
	return rows
}

func splitTimeValue(sess *model.Session, grid []float64, i int) *float64 {
	start, ok := sess.Marks.Start()
	if !ok {
		return nil
	}
	cur, ok := sess.Marks.Value(timing.DistanceLabel(grid[i]))
	if !ok {
		return nil
	}
	prev := start
	if i > 0 {
		prev, ok = sess.Marks.Value(timing.DistanceLabel(grid[i-1]))
		if !ok {
			return nil
		}
	}
	r := timing.Round3(cur - prev)
	return &r
}
