package route

import (
	"context"
	"math"
	"sync"

	"backend-walkloop/internal/directions"
	"backend-walkloop/internal/shared/geo"

	"github.com/google/uuid"
)

// StreetBuilder anchors a handful of geometric waypoints around the start,
// then stitches them into a walkable loop with one directions lookup per
// edge. A failed edge is skipped; a variant whose every edge fails yields
// nil rather than an error.
type StreetBuilder struct {
	provider directions.Provider
}

func NewStreetBuilder(provider directions.Provider) *StreetBuilder {
	return &StreetBuilder{provider: provider}
}

// Build runs the four street variants concurrently, each internally
// sequential, and returns them in declaration order. Entries are nil when
// the variant could not produce a route.
func (b *StreetBuilder) Build(ctx context.Context, start geo.Point, targetM float64) []*Route {
	variants := []func(context.Context, geo.Point, float64) *Route{
		func(ctx context.Context, s geo.Point, t float64) *Route { return b.Loop(ctx, s, t, true) },
		func(ctx context.Context, s geo.Point, t float64) *Route { return b.Loop(ctx, s, t, false) },
		b.OutAndBack,
		b.Exploration,
	}

	results := make([]*Route, len(variants))
	var wg sync.WaitGroup
	for i, variant := range variants {
		wg.Add(1)
		go func(i int, variant func(context.Context, geo.Point, float64) *Route) {
			defer wg.Done()
			results[i] = variant(ctx, start, targetM)
		}(i, variant)
	}
	wg.Wait()
	return results
}

// Loop circles 6 waypoints around the start; the angle sign flips for the
// counterclockwise run.
func (b *StreetBuilder) Loop(ctx context.Context, start geo.Point, targetM float64, clockwise bool) *Route {
	const waypointCount = 6
	radius := targetM / (2 * math.Pi)

	waypoints := make([]geo.Point, waypointCount)
	for i := range waypoints {
		angle := 2 * math.Pi * float64(i) / waypointCount
		if !clockwise {
			angle = -angle
		}
		waypoints[i] = start.Offset(radius*math.Cos(angle), radius*math.Sin(angle))
	}

	name := "Neighborhood Loop"
	if !clockwise {
		name = "Counter Loop"
	}
	points, distanceM, durationSec := b.stitch(ctx, waypoints,
		"Start your walk", "Continue to next waypoint", "You're back at the start!")
	if points == nil {
		return nil
	}
	return b.finish(name, points, distanceM, durationSec, DifficultyEasy, TerrainUrban)
}

// OutAndBack walks out half the target distance and retraces the street path
// home. Four compass candidates exist; the first one stands in for letting
// the user pick.
func (b *StreetBuilder) OutAndBack(ctx context.Context, start geo.Point, targetM float64) *Route {
	half := targetM / 2
	candidates := []geo.Point{
		start.Offset(half, 0),
		start.Offset(0, half),
		start.Offset(-half, 0),
		start.Offset(0, -half),
	}
	destination := candidates[0]

	var points []RoutePoint
	var distanceM, durationSec float64

	if leg, err := b.provider.Walk(ctx, start, destination); err == nil && leg != nil {
		for j, pt := range leg.Points {
			rp := RoutePoint{Point: pt}
			if j == 0 {
				rp.Instruction = "Head out on your route"
			}
			if j == len(leg.Points)-1 {
				rp.Instruction = "Turnaround point reached"
			}
			points = append(points, rp)
		}
		distanceM += leg.DistanceM
		durationSec += leg.DurationSec
	}

	if leg, err := b.provider.Walk(ctx, destination, start); err == nil && leg != nil {
		returnPoints := leg.Points
		if len(points) > 0 && len(returnPoints) > 0 {
			// the turnaround point is already on the route
			returnPoints = returnPoints[1:]
		}
		for _, pt := range returnPoints {
			points = append(points, RoutePoint{Point: pt})
		}
		if len(points) > 0 {
			points[len(points)-1].Instruction = "You're back where you started!"
		}
		distanceM += leg.DistanceM
		durationSec += leg.DurationSec
	}

	if len(points) == 0 {
		return nil
	}
	return b.finish("Out & Back", points, distanceM, durationSec, DifficultyEasy, TerrainUrban)
}

// Exploration visits three diagonal waypoints around a tighter radius before
// returning to the start.
func (b *StreetBuilder) Exploration(ctx context.Context, start geo.Point, targetM float64) *Route {
	radius := targetM / (3 * math.Pi)
	diagonals := []float64{math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4}

	waypoints := make([]geo.Point, 0, len(diagonals)+1)
	waypoints = append(waypoints, start)
	for _, angle := range diagonals {
		waypoints = append(waypoints, start.Offset(radius*math.Cos(angle), radius*math.Sin(angle)))
	}

	points, distanceM, durationSec := b.stitch(ctx, waypoints,
		"Start exploring", "Exploring new area", "Back to start!")
	if points == nil {
		return nil
	}
	return b.finish("Discovery Route", points, distanceM, durationSec, DifficultyModerate, TerrainPark)
}

// stitch walks every consecutive waypoint pair, wrapping last back to first,
// concatenating the returned polylines. Failed edges are skipped.
func (b *StreetBuilder) stitch(ctx context.Context, waypoints []geo.Point, firstInstr, midInstr, lastInstr string) ([]RoutePoint, float64, float64) {
	var points []RoutePoint
	var distanceM, durationSec float64

	for i := range waypoints {
		from := waypoints[i]
		to := waypoints[(i+1)%len(waypoints)]

		leg, err := b.provider.Walk(ctx, from, to)
		if err != nil || leg == nil {
			continue
		}
		for j, pt := range leg.Points {
			rp := RoutePoint{Point: pt}
			if j == 0 {
				if len(points) == 0 {
					rp.Instruction = firstInstr
				} else {
					rp.Instruction = midInstr
				}
			}
			points = append(points, rp)
		}
		distanceM += leg.DistanceM
		durationSec += leg.DurationSec
	}

	if len(points) == 0 {
		return nil, 0, 0
	}
	points[len(points)-1].Instruction = lastInstr
	return points, distanceM, durationSec
}

func (b *StreetBuilder) finish(name string, points []RoutePoint, distanceM, durationSec float64, diff Difficulty, terrain Terrain) *Route {
	return &Route{
		ID:                   uuid.NewString(),
		Name:                 name,
		Points:               points,
		EstimatedDistanceM:   distanceM,
		EstimatedSteps:       int(distanceM * streetStepsPerMeter),
		EstimatedDurationSec: durationSec,
		Difficulty:           diff,
		Terrain:              terrain,
	}
}
