package model

// Reserved mark keys. All other keys in a Marks map are canonical distance
// labels (see timing.DistanceLabel). A distance of exactly 15 m resolves to
// the same key as the fixed 15 m checkpoint; both read the same mark.
const (
	MarkStart    = "Start time"
	MarkReaction = "Reaction time"
	MarkFixed15  = "15"
)

// SplitChoice selects the split grid density used to generate checkpoint
// distances.
type SplitChoice string

const (
	SplitQuarter SplitChoice = "quarter"
	SplitHalf    SplitChoice = "half"
	SplitFull    SplitChoice = "full"
)

// Marks maps a mark key to an absolute time value in seconds. A nil value or
// an absent key both mean "not yet recorded"; annotation UIs send explicit
// nulls for cleared marks, so the distinction must survive a JSON round trip.
type Marks map[string]*float64

// Value returns the mark for key and whether it is recorded.
func (m Marks) Value(key string) (float64, bool) {
	if v, ok := m[key]; ok && v != nil {
		return *v, true
	}
	return 0, false
}

// Start returns the anchor mark. Without it no relative or derived value can
// be computed for the session.
func (m Marks) Start() (float64, bool) {
	return m.Value(MarkStart)
}

// Session is one recorded, annotated sprint effort. The core never mutates a
// Session; it only derives ephemeral rows and series from it.
type Session struct {
	Video         string      `json:"video"`
	VideoKey      string      `json:"videoKey"`
	DistanceTotal float64     `json:"distanceTotalMeters"`
	SplitChoice   SplitChoice `json:"splitChoice"`
	Distances     []float64   `json:"distances"`
	Marks         Marks       `json:"marksAbsolute"`

	// descriptive payload, carried through unchanged
	Athlete    string  `json:"athlete,omitempty"`
	StartType  string  `json:"startType,omitempty"`
	CapturedAt string  `json:"capturedAt,omitempty"`
	Riders     string  `json:"riders,omitempty"`
	FPS        float64 `json:"fps,omitempty"`
}
