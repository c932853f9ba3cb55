package glimmer

import "testing"

func TestWrapHue(t *testing.T) {
	cases := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{3.5, 0.5},
		{-0.25, 0.75},
		{-2.5, 0.5},
	}
	for _, c := range cases {
		got := wrapHue(c.in)
		if got < 0 || got >= 1 {
			t.Fatalf("wrapHue(%v) = %v, want in [0, 1)", c.in, got)
		}
		if diff := got - c.want; diff > 1e-5 || diff < -1e-5 {
			t.Fatalf("wrapHue(%v) = %v, want %v", c.in, got, c.want)
		}
		if again := wrapHue(got); again != got {
			t.Fatalf("wrapHue not idempotent: wrapHue(%v) = %v, rewrap = %v", c.in, got, again)
		}
	}
}

func TestHueDriftStaysInRange(t *testing.T) {
	s, err := New(64, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Huge steps force multi-turn overshoot in a single frame.
	for frame := 0; frame < 50; frame++ {
		s.driftHues(100)
		for i, c := range s.Swarm.Color {
			if c.X < 0 || c.X >= 1 {
				t.Fatalf("frame %d particle %d hue = %v, want in [0, 1)", frame, i, c.X)
			}
		}
	}
}

func TestShapeOscillatorIsPureInTime(t *testing.T) {
	s, err := New(64, 1, 9)
	if err != nil {
		t.Fatal(err)
	}
	s.Time = 1234.5
	s.oscillateShapes()
	first := make([]Vec4, len(s.Swarm.Shape))
	copy(first, s.Swarm.Shape)

	// Move elsewhere and come back: identical t must give identical bits.
	s.Time = 99
	s.oscillateShapes()
	s.Time = 1234.5
	s.oscillateShapes()
	for i := range first {
		if s.Swarm.Shape[i] != first[i] {
			t.Fatalf("particle %d shape at identical t differs: %v vs %v", i, s.Swarm.Shape[i], first[i])
		}
	}
}

func TestShapeOscillatorRanges(t *testing.T) {
	s, err := New(64, 1, 11)
	if err != nil {
		t.Fatal(err)
	}
	for frame := 0; frame < 200; frame++ {
		s.Time += 0.37
		s.oscillateShapes()
		for i, sh := range s.Swarm.Shape {
			if sh.Z < MinPlumpness || sh.Z > MaxPlumpness {
				t.Fatalf("particle %d plumpness = %v, want in [%v, %v]", i, sh.Z, MinPlumpness, MaxPlumpness)
			}
			if sh.W < MinWarp || sh.W > MaxWarp {
				t.Fatalf("particle %d warp = %v, want in [%v, %v]", i, sh.W, MinWarp, MaxWarp)
			}
		}
	}
}
