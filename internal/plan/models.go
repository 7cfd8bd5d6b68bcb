package plan

import (
	"time"

	"backend-walkloop/internal/goal"
)

// Plan schedules a walk: a saved route paired with the goal the user wants
// to hit on it. Completion is never recorded here.
type Plan struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RouteID      string    `json:"route_id"`
	Goal         goal.Goal `json:"goal"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
