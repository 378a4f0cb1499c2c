package timing

import (
	"strconv"
	"testing"
)

func TestDistanceLabel(t *testing.T) {
	tests := []struct {
		name string
		arg  float64
		want string
	}{
		{name: "fraction kept", arg: 62.5, want: "62.5"},
		{name: "integer without decimal point", arg: 250, want: "250"},
		{name: "rounded to 3 decimals", arg: 62.50001, want: "62.5"},
		{name: "float drift collapses", arg: 62.50000001, want: "62.5"},
		{name: "three decimals survive", arg: 0.125, want: "0.125"},
		{name: "half lap", arg: 187.5, want: "187.5"},
		{name: "fixed checkpoint distance", arg: 15, want: "15"},
		{name: "near-integer drift", arg: 125.0000004, want: "125"},
		{name: "trailing zeros stripped", arg: 62.5004, want: "62.5"},
		{name: "zero", arg: 0, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceLabel(tt.arg); got != tt.want {
				t.Errorf("DistanceLabel(%v) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

// canonicalizing twice must yield the same string as once
func TestDistanceLabelIdempotent(t *testing.T) {
	values := []float64{
		0, 15, 62.5, 62.50000001, 125, 187.5, 200, 250, 0.001, 0.0004,
		333.333, 333.3333333, 1e6, 41.666666666666664,
	}
	for _, v := range values {
		once := DistanceLabel(v)
		parsed, err := strconv.ParseFloat(once, 64)
		if err != nil {
			t.Fatalf("label %q of %v is not parseable: %v", once, v, err)
		}
		if twice := DistanceLabel(parsed); twice != once {
			t.Errorf("DistanceLabel not idempotent for %v: %q != %q", v, twice, once)
		}
	}
}
