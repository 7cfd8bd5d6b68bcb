package route

import (
	"math"
	"math/rand"
	"testing"

	"backend-walkloop/internal/shared/geo"
)

var testCenter = geo.Point{Lat: 51.6280, Lng: -0.1055}

func TestCircleThreeKilometers(t *testing.T) {
	b := NewGeometricBuilder(rand.New(rand.NewSource(1)))
	r := b.Circle(testCenter, 3000)

	if r.Name != "Perfect Circle" {
		t.Fatalf("unexpected name %q", r.Name)
	}
	if len(r.Points) != 21 {
		t.Fatalf("expected 21 points, got %d", len(r.Points))
	}
	if r.Points[0].Point != r.Points[len(r.Points)-1].Point {
		t.Fatalf("circle must close on its first point")
	}
	if math.Abs(r.EstimatedDistanceM-3000) > 3000*1e-9 {
		t.Fatalf("distance mismatch: %v", r.EstimatedDistanceM)
	}
	if r.EstimatedSteps != 3750 {
		t.Fatalf("expected 3750 steps, got %d", r.EstimatedSteps)
	}
	if math.Abs(r.EstimatedDurationSec-3000/1.4) > 1e-9 {
		t.Fatalf("duration mismatch: %v", r.EstimatedDurationSec)
	}

	// every sampled point sits one radius (~477.46 m) from the center
	radius := 3000 / (2 * math.Pi)
	for i, p := range r.Points[:20] {
		d := geo.HaversineKm(testCenter.Lat, testCenter.Lng, p.Lat, p.Lng) * 1000
		if math.Abs(d-radius) > radius*0.01 {
			t.Fatalf("point %d is %v m from center, want ~%v", i, d, radius)
		}
	}

	for i, want := range map[int]string{
		0:  "Start walking clockwise",
		5:  "Continue straight",
		10: "You're halfway!",
		15: "Almost back to start",
	} {
		if r.Points[i].Instruction != want {
			t.Fatalf("point %d instruction %q, want %q", i, r.Points[i].Instruction, want)
		}
	}
	if r.Difficulty != DifficultyEasy || r.Terrain != TerrainUrban {
		t.Fatalf("unexpected tags: %v %v", r.Difficulty, r.Terrain)
	}
}

func TestSquareFromStepGoal(t *testing.T) {
	// 5000 steps resolve to 4000 m, so each side is 1000 m
	b := NewGeometricBuilder(rand.New(rand.NewSource(1)))
	r := b.Square(testCenter, 4000)

	if r.Name != "City Block Loop" {
		t.Fatalf("unexpected name %q", r.Name)
	}
	if len(r.Points) != 9 {
		t.Fatalf("expected 9 points, got %d", len(r.Points))
	}
	if r.Points[0].Point != r.Points[8].Point {
		t.Fatalf("square must close on its first point")
	}
	if r.EstimatedDistanceM != 4000 {
		t.Fatalf("distance mismatch: %v", r.EstimatedDistanceM)
	}
	if r.EstimatedSteps != 5000 {
		t.Fatalf("expected 5000 steps, got %d", r.EstimatedSteps)
	}

	// first corner is 500 m south and west of the center per the
	// equirectangular conversion
	wantCorner := testCenter.Offset(-500, -500)
	if r.Points[0].Point != wantCorner {
		t.Fatalf("corner mismatch: %+v want %+v", r.Points[0].Point, wantCorner)
	}
	if r.Points[0].Instruction != "Head north" {
		t.Fatalf("unexpected first instruction %q", r.Points[0].Instruction)
	}
	if r.Points[2].Instruction != "Turn right" || r.Points[6].Instruction != "Final turn" {
		t.Fatalf("corner instructions misplaced")
	}
	// midpoints between corners carry no instruction
	if r.Points[1].Instruction != "" || r.Points[3].Instruction != "" {
		t.Fatalf("midpoints should be silent")
	}
}

func TestFigureEight(t *testing.T) {
	b := NewGeometricBuilder(rand.New(rand.NewSource(1)))
	r := b.FigureEight(testCenter, 2000)

	if len(r.Points) != 17 {
		t.Fatalf("expected 17 points, got %d", len(r.Points))
	}
	if r.Points[0].Point != r.Points[16].Point {
		t.Fatalf("figure eight must close on its first point")
	}
	if math.Abs(r.EstimatedDistanceM-2000) > 2000*1e-9 {
		t.Fatalf("distance mismatch: %v", r.EstimatedDistanceM)
	}
	if r.Points[0].Instruction != "Start first loop" {
		t.Fatalf("unexpected first instruction")
	}
	if r.Points[8].Instruction != "Cross to second loop" {
		t.Fatalf("expected crossing instruction at the midpoint")
	}
	if r.Difficulty != DifficultyModerate || r.Terrain != TerrainMixed {
		t.Fatalf("unexpected tags")
	}
}

func TestMeanderDeterministicUnderSeed(t *testing.T) {
	a := NewGeometricBuilder(rand.New(rand.NewSource(42))).Meander(testCenter, 3000)
	b := NewGeometricBuilder(rand.New(rand.NewSource(42))).Meander(testCenter, 3000)

	if len(a.Points) != len(b.Points) {
		t.Fatalf("seeded runs differ in length")
	}
	for i := range a.Points {
		if a.Points[i].Point != b.Points[i].Point {
			t.Fatalf("seeded runs diverge at point %d", i)
		}
	}

	c := NewGeometricBuilder(rand.New(rand.NewSource(7))).Meander(testCenter, 3000)
	same := true
	for i := range a.Points {
		if a.Points[i].Point != c.Points[i].Point {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds should wander differently")
	}
}

func TestMeanderForcedClosure(t *testing.T) {
	r := NewGeometricBuilder(rand.New(rand.NewSource(42))).Meander(testCenter, 3000)

	if len(r.Points) != 14 {
		t.Fatalf("expected 14 points, got %d", len(r.Points))
	}
	if r.Points[0].Point != testCenter || r.Points[13].Point != testCenter {
		t.Fatalf("meander must start and end at the center")
	}
	// the advertised distance is the requested target, not the measured path
	if r.EstimatedDistanceM != 3000 {
		t.Fatalf("distance should be the raw target, got %v", r.EstimatedDistanceM)
	}
	if r.EstimatedSteps != 3750 {
		t.Fatalf("expected 3750 steps, got %d", r.EstimatedSteps)
	}
	found := 0
	for _, p := range r.Points {
		if p.Instruction == "Enjoy the scenery" || p.Instruction == "Heading back" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected both meander instructions, found %d", found)
	}
}

func TestDegenerateTargetStillWellFormed(t *testing.T) {
	b := NewGeometricBuilder(rand.New(rand.NewSource(1)))
	for _, r := range b.Build(testCenter, 0) {
		if len(r.Points) < 2 {
			t.Fatalf("%s: degenerate route must still have points", r.Name)
		}
		if r.Points[0].Point != r.Points[len(r.Points)-1].Point {
			t.Fatalf("%s: degenerate route must still close", r.Name)
		}
		if r.EstimatedSteps != 0 || r.EstimatedDistanceM != 0 {
			t.Fatalf("%s: degenerate route should estimate zero", r.Name)
		}
	}
}

func TestStepsAreFloored(t *testing.T) {
	b := NewGeometricBuilder(rand.New(rand.NewSource(1)))
	r := b.Circle(testCenter, 1001)
	// 1001 x 1.25 = 1251.25, floored
	if r.EstimatedSteps != 1251 {
		t.Fatalf("steps must floor distance x 1.25, got %d", r.EstimatedSteps)
	}
}
