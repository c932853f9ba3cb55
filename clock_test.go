package glimmer

import "testing"

func TestClockNominalStep(t *testing.T) {
	c := NewClock(60)
	// One nominal frame at 60 Hz, regardless of the measured time.
	want := float32(StepPerMicro1Hz) * 60 * (1e6 / 60)
	if got := c.Step(99999, false); got != want {
		t.Fatalf("nominal step = %v, want %v", got, want)
	}
	if a, b := c.Step(1, false), c.Step(1e9, false); a != b {
		t.Fatalf("nominal step varies with elapsed time: %v vs %v", a, b)
	}
}

func TestClockWallStep(t *testing.T) {
	c := NewClock(60)
	want := float32(StepPerMicro1Hz) * 60 * 16667
	if got := c.Step(16667, true); got != want {
		t.Fatalf("wall step for 16667us = %v, want %v", got, want)
	}
}

func TestClockFirstTickIsZeroUnderWallTiming(t *testing.T) {
	c := NewClock(60)
	if got := c.Tick(true); got != 0 {
		t.Fatalf("first wall-timed tick = %v, want 0", got)
	}
	if got := c.Tick(true); got < 0 {
		t.Fatalf("second tick = %v, want non-negative", got)
	}
}
