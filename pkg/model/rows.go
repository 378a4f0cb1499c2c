package model

// SegmentRow holds the derived kinematics for one segment between two
// consecutive marked checkpoints. All values are rounded to 3 decimals at
// emission. Acceleration is nil for the first emitted row of a session.
type SegmentRow struct {
	From          float64  `json:"from"`
	To            float64  `json:"to"`
	DeltaTime     float64  `json:"deltaTimeSeconds"`
	DeltaDistance float64  `json:"deltaDistanceMeters"`
	VelocityKmh   float64  `json:"velocityKmh"`
	Acceleration  *float64 `json:"acceleration"`
}

// SeriesPoint is one (distance, relative time) sample of a session series,
// anchored at the session's start mark.
type SeriesPoint struct {
	Distance float64 `json:"distance"`
	Seconds  float64 `json:"seconds"`
}

// TableRow is a single logical checkpoint across N compared sessions.
// Values and Deltas are keyed by session VideoKey; nil means "no value".
type TableRow struct {
	Distance float64             `json:"distance"`
	Label    string              `json:"label"`
	Values   map[string]*float64 `json:"values"`
	Deltas   map[string]*float64 `json:"deltas,omitempty"`
}

// ChartRow is one distance of the union-of-distances chart alignment:
// per session the relative time at that distance, nil where the session has
// no mark (missing points are not interpolated).
type ChartRow struct {
	Distance float64             `json:"distance"`
	Values   map[string]*float64 `json:"values"`
}
