package glimmer

import (
	"math"
	"testing"
)

func TestSpawnAttributeBounds(t *testing.T) {
	s, err := New(256, 16.0/9.0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, pr := range s.Swarm.PosRad {
		if pr.Z < MinRadius || pr.Z > MaxRadius {
			t.Fatalf("particle %d radius = %v, want in [%v, %v]", i, pr.Z, MinRadius, MaxRadius)
		}
		if pr.X < 0 || pr.X > s.Aspect {
			t.Fatalf("particle %d spawn x = %v, want in [0, %v]", i, pr.X, s.Aspect)
		}
		if pr.Y < 0 || pr.Y > 1 {
			t.Fatalf("particle %d spawn y = %v, want in [0, 1]", i, pr.Y)
		}
	}
	for i, c := range s.Swarm.Color {
		if c.X < 0 || c.X >= 1 {
			t.Fatalf("particle %d hue = %v, want in [0, 1)", i, c.X)
		}
		if c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Fatalf("particle %d saturation/value = %v/%v, want in [0, 1]", i, c.Y, c.Z)
		}
	}
	for i, sh := range s.Swarm.Shape {
		if sh.X < 4 {
			t.Fatalf("particle %d point count = %v, want >= 4", i, sh.X)
		}
		if sh.X != float32(math.Trunc(float64(sh.X))) {
			t.Fatalf("particle %d point count = %v, want integer-valued", i, sh.X)
		}
	}
}

func TestSpawnDeterministicForFixedSeed(t *testing.T) {
	a, err := New(64, 1.5, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(64, 1.5, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Swarm.PosRad {
		if a.Swarm.PosRad[i] != b.Swarm.PosRad[i] {
			t.Fatalf("particle %d pos_rad differs across identically seeded runs: %v vs %v",
				i, a.Swarm.PosRad[i], b.Swarm.PosRad[i])
		}
		if a.Swarm.Color[i] != b.Swarm.Color[i] {
			t.Fatalf("particle %d color differs: %v vs %v", i, a.Swarm.Color[i], b.Swarm.Color[i])
		}
		if a.Swarm.HueVel[i] != b.Swarm.HueVel[i] {
			t.Fatalf("particle %d hue velocity differs: %v vs %v", i, a.Swarm.HueVel[i], b.Swarm.HueVel[i])
		}
		if a.Swarm.SpinVel[i] != b.Swarm.SpinVel[i] {
			t.Fatalf("particle %d spin velocities differ: %v vs %v", i, a.Swarm.SpinVel[i], b.Swarm.SpinVel[i])
		}
	}
	if a.Time != b.Time {
		t.Fatalf("starting time differs across identically seeded runs: %v vs %v", a.Time, b.Time)
	}
}

func TestSpawnScalesXByAspect(t *testing.T) {
	const aspect = 2.5
	s, err := New(256, aspect, 7)
	if err != nil {
		t.Fatal(err)
	}
	var wide bool
	for _, pr := range s.Swarm.PosRad {
		if pr.X > aspect {
			t.Fatalf("spawn x = %v beyond aspect-scaled bound %v", pr.X, aspect)
		}
		if pr.X > 1 {
			wide = true
		}
	}
	if !wide {
		t.Fatalf("no spawn x above 1 out of 256 draws at aspect %v", aspect)
	}
}
