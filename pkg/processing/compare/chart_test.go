package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/velosprint/sprintlog-go/pkg/model"
)

func TestBuildChartRows(t *testing.T) {
	a := makeSession("A", 250, lo.ToPtr(5.0), map[string]float64{
		"62.5": 8, "125": 11.5,
	}, 62.5, 125)
	b := makeSession("B", 200, lo.ToPtr(1.0), map[string]float64{
		"100": 6,
	}, 100)

	got := BuildChartRows([]*model.Session{a, b})
	want := []model.ChartRow{
		{Distance: 62.5, Values: map[string]*float64{"A": lo.ToPtr(3.0), "B": nil}},
		{Distance: 100, Values: map[string]*float64{"A": nil, "B": lo.ToPtr(5.0)}},
		{Distance: 125, Values: map[string]*float64{"A": lo.ToPtr(6.5), "B": nil}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildChartRows mismatch: %s", diff)
	}
}

// a session without a start mark contributes no distances but still gets a
// nil column in every row
func TestBuildChartRowsNoStart(t *testing.T) {
	a := makeSession("A", 250, lo.ToPtr(5.0), map[string]float64{
		"62.5": 8,
	}, 62.5)
	n := makeSession("N", 250, nil, map[string]float64{
		"62.5": 9,
	}, 62.5)

	got := BuildChartRows([]*model.Session{a, n})
	want := []model.ChartRow{
		{Distance: 62.5, Values: map[string]*float64{"A": lo.ToPtr(3.0), "N": nil}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildChartRows mismatch: %s", diff)
	}
}

func TestBuildChartRowsEmpty(t *testing.T) {
	if got := BuildChartRows(nil); len(got) != 0 {
		t.Errorf("expected no rows, got %v", got)
	}
}
