package metrics

import "time"

// MetricType names the health counters the device pushes up.
type MetricType string

const (
	MetricSteps        MetricType = "steps"
	MetricDistance     MetricType = "distance"
	MetricWalkingSpeed MetricType = "walking_speed"
)

// Known reports whether the metric type is one this service stores.
func (m MetricType) Known() bool {
	switch m {
	case MetricSteps, MetricDistance, MetricWalkingSpeed:
		return true
	}
	return false
}

// Sample is one device-reported reading.
type Sample struct {
	ID         int64      `json:"id"`
	UserID     string     `json:"user_id"`
	Type       MetricType `json:"type"`
	Value      float64    `json:"value"`
	RecordedAt time.Time  `json:"recorded_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// WindowStat is an aggregate over a time window. A window with no samples
// reports zero, matching the health store's "no data" answer.
type WindowStat struct {
	UserID      string     `json:"user_id"`
	Type        MetricType `json:"type"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Value       float64    `json:"value"`
	SampleCount int        `json:"sample_count"`
}
