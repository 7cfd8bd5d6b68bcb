package goal

// Kind selects how a walking goal is expressed.
type Kind string

const (
	KindSteps    Kind = "steps"
	KindDistance Kind = "distance"
	KindTime     Kind = "time"
)

const (
	// StrideMeters is the empirical average stride length.
	StrideMeters = 0.8
	// WalkingSpeedMps is the average walking speed used for time goals
	// and duration estimates.
	WalkingSpeedMps = 1.4
)

// Goal is a user walking target: a step count, kilometers, or minutes.
type Goal struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// Valid reports whether the goal has a known kind and positive value.
func (g Goal) Valid() bool {
	if g.Value <= 0 {
		return false
	}
	switch g.Kind {
	case KindSteps, KindDistance, KindTime:
		return true
	}
	return false
}

// ResolveDistance collapses any goal kind into a single target path length
// in meters, which every route builder consumes uniformly.
func ResolveDistance(g Goal) float64 {
	switch g.Kind {
	case KindSteps:
		return g.Value * StrideMeters
	case KindDistance:
		return g.Value * 1000
	case KindTime:
		return g.Value * 60 * WalkingSpeedMps
	}
	return 0
}
