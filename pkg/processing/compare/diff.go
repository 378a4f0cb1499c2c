package compare

import (
	"github.com/velosprint/sprintlog-go/pkg/model"
	"github.com/velosprint/sprintlog-go/pkg/processing/timing"
)

// AnnotateDiffs returns the rows with per-cell signed deltas against the
// reference session's value. Positive means slower than the reference. The
// reference's own cell, cells without a value, and rows where the reference
// has no value all get nil. An empty referenceKey yields all-nil deltas.
func AnnotateDiffs(rows []model.TableRow, referenceKey string) []model.TableRow {
	ret := make([]model.TableRow, len(rows))
	for i, row := range rows {
		annotated := row
		annotated.Deltas = make(map[string]*float64, len(row.Values))
		refValue := row.Values[referenceKey]
		for key, value := range row.Values {
			if referenceKey == "" || key == referenceKey ||
				refValue == nil || value == nil {
				annotated.Deltas[key] = nil
				continue
			}
			annotated.Deltas[key] = roundPtr(*value - *refValue)
		}
		ret[i] = annotated
	}
	return ret
}

func roundPtr(v float64) *float64 {
	r := timing.Round3(v)
	return &r
}
