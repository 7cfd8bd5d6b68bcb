package route

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"backend-walkloop/internal/goal"
	"backend-walkloop/internal/shared/geo"

	"github.com/google/uuid"
)

// GeometricBuilder synthesizes idealized closed loops purely from a center
// point and a target length, with no external calls. All variants except the
// meander are deterministic.
type GeometricBuilder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGeometricBuilder returns a builder using the given random source for the
// meander variant. A nil source falls back to a time-seeded one.
func NewGeometricBuilder(rnd *rand.Rand) *GeometricBuilder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GeometricBuilder{rnd: rnd}
}

// Build returns the four geometric variants in fixed order.
func (b *GeometricBuilder) Build(center geo.Point, targetM float64) []Route {
	return []Route{
		b.Circle(center, targetM),
		b.Square(center, targetM),
		b.FigureEight(center, targetM),
		b.Meander(center, targetM),
	}
}

// Circle samples 20 equally spaced points on a circle whose circumference is
// the target distance, plus a repeated closing point.
func (b *GeometricBuilder) Circle(center geo.Point, targetM float64) Route {
	const samples = 20
	radius := targetM / (2 * math.Pi)

	points := make([]RoutePoint, 0, samples+1)
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / samples
		rp := RoutePoint{Point: center.Offset(radius*math.Cos(angle), radius*math.Sin(angle))}
		switch i {
		case 0:
			rp.Instruction = "Start walking clockwise"
		case samples / 4:
			rp.Instruction = "Continue straight"
		case samples / 2:
			rp.Instruction = "You're halfway!"
		case 3 * samples / 4:
			rp.Instruction = "Almost back to start"
		}
		points = append(points, rp)
	}
	points = append(points, RoutePoint{Point: points[0].Point})

	return b.finish("Perfect Circle", points, 2*math.Pi*radius, DifficultyEasy, TerrainUrban)
}

// Square walks four corners offset half a side from the center, emitting
// corners and the midpoints between them.
func (b *GeometricBuilder) Square(center geo.Point, targetM float64) Route {
	side := targetM / 4
	half := side / 2

	// clockwise from the southwest corner, heading north first
	corners := [4][2]float64{
		{-half, -half},
		{half, -half},
		{half, half},
		{-half, half},
	}
	instructions := [4]string{"Head north", "Turn right", "Turn right again", "Final turn"}

	points := make([]RoutePoint, 0, 9)
	for i := 0; i < 4; i++ {
		cur, next := corners[i], corners[(i+1)%4]
		points = append(points, RoutePoint{
			Point:       center.Offset(cur[0], cur[1]),
			Instruction: instructions[i],
		})
		points = append(points, RoutePoint{
			Point: center.Offset((cur[0]+next[0])/2, (cur[1]+next[1])/2),
		})
	}
	points = append(points, RoutePoint{Point: points[0].Point})

	return b.finish("City Block Loop", points, 4*side, DifficultyEasy, TerrainUrban)
}

// FigureEight samples two tangent loops east and west of the center, crossing
// at the center point itself.
func (b *GeometricBuilder) FigureEight(center geo.Point, targetM float64) Route {
	const samples = 16
	radius := targetM / (4 * math.Pi)

	west := center.Offset(0, -radius)
	east := center.Offset(0, radius)

	points := make([]RoutePoint, 0, samples+1)
	for i := 0; i < samples; i++ {
		var rp RoutePoint
		if i < samples/2 {
			angle := 2 * math.Pi * float64(i) / (samples / 2)
			rp.Point = west.Offset(radius*math.Sin(angle), radius*math.Cos(angle))
		} else {
			angle := 2*math.Pi*float64(i-samples/2)/(samples/2) + math.Pi
			rp.Point = east.Offset(radius*math.Sin(angle), radius*math.Cos(angle))
		}
		switch i {
		case 0:
			rp.Instruction = "Start first loop"
		case samples / 2:
			rp.Instruction = "Cross to second loop"
		}
		points = append(points, rp)
	}
	points = append(points, RoutePoint{Point: points[0].Point})

	return b.finish("Figure Eight", points, 4*math.Pi*radius, DifficultyModerate, TerrainMixed)
}

// Meander wanders through 12 randomized segments, then jumps back to the
// center. The advertised distance is the requested target, not the measured
// polyline length, so the figures overstate a path that the forced closing
// jump shortens. Kept as-is until product decides otherwise.
func (b *GeometricBuilder) Meander(center geo.Point, targetM float64) Route {
	const segments = 12
	baseRadius := targetM / (segments * math.Pi)

	b.mu.Lock()
	headings := make([]float64, segments)
	lengths := make([]float64, segments)
	heading := 0.0
	for i := 0; i < segments; i++ {
		heading += math.Pi/3 + (b.rnd.Float64()-0.5)*math.Pi/3
		headings[i] = heading
		lengths[i] = baseRadius * (0.8 + b.rnd.Float64()*0.4)
	}
	b.mu.Unlock()

	points := make([]RoutePoint, 0, segments+2)
	points = append(points, RoutePoint{Point: center})
	north, east := 0.0, 0.0
	for i := 0; i < segments; i++ {
		north += lengths[i] * math.Cos(headings[i])
		east += lengths[i] * math.Sin(headings[i])
		points = append(points, RoutePoint{Point: center.Offset(north, east)})
	}
	points = append(points, RoutePoint{Point: center})

	points[len(points)/3].Instruction = "Enjoy the scenery"
	points[2*len(points)/3].Instruction = "Heading back"

	return b.finish("Scenic Meander", points, targetM, DifficultyModerate, TerrainPark)
}

func (b *GeometricBuilder) finish(name string, points []RoutePoint, distanceM float64, diff Difficulty, terrain Terrain) Route {
	return Route{
		ID:                   uuid.NewString(),
		Name:                 name,
		Points:               points,
		EstimatedDistanceM:   distanceM,
		EstimatedSteps:       int(distanceM * geometricStepsPerMeter),
		EstimatedDurationSec: distanceM / goal.WalkingSpeedMps,
		Difficulty:           diff,
		Terrain:              terrain,
	}
}
