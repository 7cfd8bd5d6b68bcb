package route

import "backend-walkloop/internal/shared/geo"

type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

type Terrain string

const (
	TerrainUrban Terrain = "urban"
	TerrainPark  Terrain = "park"
	TerrainMixed Terrain = "mixed"
)

// Steps-per-meter factors differ between idealized geometry and street-snapped
// paths; street routes meander more, so the factor is slightly higher.
const (
	geometricStepsPerMeter = 1.25
	streetStepsPerMeter    = 1.3
)

// RoutePoint is one coordinate on a route, optionally carrying a turn-by-turn
// instruction. Points belong to exactly one Route.
type RoutePoint struct {
	geo.Point
	Instruction string `json:"instruction,omitempty"`
}

// Route is a closed-loop walking route: at least two points, first and last
// sharing a coordinate. Routes are immutable once built.
type Route struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Points               []RoutePoint `json:"points"`
	EstimatedDistanceM   float64      `json:"estimated_distance_m"`
	EstimatedSteps       int          `json:"estimated_steps"`
	EstimatedDurationSec float64      `json:"estimated_duration_sec"`
	Difficulty           Difficulty   `json:"difficulty"`
	Terrain              Terrain      `json:"terrain"`
}
