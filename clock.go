package glimmer

import "time"

// StepPerMicro1Hz converts one microsecond of wall time into simulated
// time at a 1 Hz refresh rate; the clock scales it by the actual rate.
const StepPerMicro1Hz = 1e-8

// A Clock converts the wall time between frames into simulation steps.
// It is owned by the frame loop.
type Clock struct {
	stepPerMicro float32 // simulated time per microsecond of wall time
	nominalMicro float32 // frame duration at the target refresh rate
	last         time.Time
	started      bool
}

// NewClock returns a clock calibrated for the given refresh rate in Hz.
func NewClock(refreshHz int) *Clock {
	return &Clock{
		stepPerMicro: StepPerMicro1Hz * float32(refreshHz),
		nominalMicro: 1e6 / float32(refreshHz),
	}
}

// Step converts an elapsed wall time in microseconds into a simulation
// step. When limited is false the elapsed time is ignored and the fixed
// nominal frame duration is used instead, so the simulation free-runs at
// one nominal frame per call regardless of real frame pacing.
func (c *Clock) Step(elapsedMicro float32, limited bool) float32 {
	if !limited {
		elapsedMicro = c.nominalMicro
	}
	return c.stepPerMicro * elapsedMicro
}

// Tick measures the wall time since the previous Tick and returns the
// corresponding simulation step. The first Tick returns a zero step under
// wall-clock timing since no frame interval exists yet.
func (c *Clock) Tick(limited bool) float32 {
	now := time.Now()
	var micros float32
	if c.started {
		micros = float32(now.Sub(c.last).Microseconds())
	}
	c.last = now
	c.started = true
	return c.Step(micros, limited)
}
