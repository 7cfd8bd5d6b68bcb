package routestore

import (
	"time"

	"backend-walkloop/internal/route"
)

// SavedRoute is a generated route the user selected for walking, persisted
// with its full point list and an anchor coordinate for nearby search.
type SavedRoute struct {
	ID                   string             `json:"id"`
	UserID               string             `json:"user_id"`
	Name                 string             `json:"name"`
	Points               []route.RoutePoint `json:"points"`
	EstimatedDistanceM   float64            `json:"estimated_distance_m"`
	EstimatedSteps       int                `json:"estimated_steps"`
	EstimatedDurationSec float64            `json:"estimated_duration_sec"`
	Difficulty           route.Difficulty   `json:"difficulty"`
	Terrain              route.Terrain      `json:"terrain"`
	CreatedAt            time.Time          `json:"created_at"`
}
