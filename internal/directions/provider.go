package directions

import (
	"context"

	"backend-walkloop/internal/shared/geo"
)

// Leg is one walking leg between two coordinates as reported by the
// street-network provider.
type Leg struct {
	Points      []geo.Point `json:"points"`
	DistanceM   float64     `json:"distance_m"`
	DurationSec float64     `json:"duration_sec"`
}

// Provider resolves point-to-point walking directions. A nil Leg with a nil
// error means the network has no walkable path between the points; callers
// skip the edge rather than abort.
type Provider interface {
	Walk(ctx context.Context, from, to geo.Point) (*Leg, error)
}

// WalkFunc adapts a function to the Provider interface.
type WalkFunc func(ctx context.Context, from, to geo.Point) (*Leg, error)

func (f WalkFunc) Walk(ctx context.Context, from, to geo.Point) (*Leg, error) {
	return f(ctx, from, to)
}
