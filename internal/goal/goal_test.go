package goal

import (
	"math"
	"testing"
)

func TestResolveDistanceScalings(t *testing.T) {
	cases := []struct {
		goal Goal
		want float64
	}{
		{Goal{KindSteps, 5000}, 4000},
		{Goal{KindDistance, 3.0}, 3000},
		{Goal{KindTime, 30}, 2520},
		{Goal{KindSteps, 1}, 0.8},
		{Goal{KindDistance, 1}, 1000},
		{Goal{KindTime, 1}, 84},
	}
	for _, tc := range cases {
		got := ResolveDistance(tc.goal)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("resolve %v: got %v want %v", tc.goal, got, tc.want)
		}
	}
}

func TestResolveDistanceMonotonic(t *testing.T) {
	for _, kind := range []Kind{KindSteps, KindDistance, KindTime} {
		prev := 0.0
		for v := 1.0; v <= 100; v += 7 {
			d := ResolveDistance(Goal{Kind: kind, Value: v})
			if d <= prev {
				t.Fatalf("%s: expected strictly increasing, %v after %v", kind, d, prev)
			}
			prev = d
		}
	}
}

func TestResolveDistanceUnknownKind(t *testing.T) {
	if d := ResolveDistance(Goal{Kind: "calories", Value: 10}); d != 0 {
		t.Fatalf("unknown kind should resolve to zero, got %v", d)
	}
}

func TestValid(t *testing.T) {
	if !(Goal{KindSteps, 1}).Valid() {
		t.Fatalf("expected valid goal")
	}
	if (Goal{KindSteps, 0}).Valid() {
		t.Fatalf("zero value should be invalid")
	}
	if (Goal{KindDistance, -3}).Valid() {
		t.Fatalf("negative value should be invalid")
	}
	if (Goal{"calories", 10}).Valid() {
		t.Fatalf("unknown kind should be invalid")
	}
}
