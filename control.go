package glimmer

import "sync"

// Control surface tuning and defaults.
const (
	SharpnessStep = 0.05
	FrictionStep  = 1.3 // friction grows and shrinks geometrically

	DefaultTailCritical = 0.10
	DefaultFriction     = 0.15
)

// Params holds the user-adjustable runtime parameters. They are mutated
// only by draining the Keys queue on the frame loop and read by the
// integrator and the renderer.
type Params struct {
	// TailCritical is the field strength at which a pixel is drawn
	// completely white; it controls how aggressively the glow falloff
	// is cut. Always in [0, 1].
	TailCritical float32

	// Friction scales the cubic drag. Adjustments multiply it by
	// FrictionStep so it never reaches zero.
	Friction float32

	// Draw lets the renderer skip its draw call. The simulation keeps
	// advancing either way.
	Draw bool

	// LimitTime selects wall-clock frame timing; when false the clock
	// hands out a fixed nominal step per frame.
	LimitTime bool
}

// DefaultParams returns the documented initial parameters.
func DefaultParams() Params {
	return Params{
		TailCritical: DefaultTailCritical,
		Friction:     DefaultFriction,
		Draw:         true,
		LimitTime:    true,
	}
}

// An Action is one of the discrete control adjustments a user can trigger.
type Action int

const (
	Sharpen Action = iota
	Soften
	ToggleDraw
	ToggleLimitTime
	MoreFriction
	LessFriction

	numActions
)

// apply performs a single trigger's worth of adjustment.
func (a Action) apply(p *Params) {
	switch a {
	case Sharpen:
		p.TailCritical = min32(p.TailCritical+SharpnessStep, 1)
	case Soften:
		p.TailCritical = max32(p.TailCritical-SharpnessStep, 0)
	case ToggleDraw:
		p.Draw = !p.Draw
	case ToggleLimitTime:
		p.LimitTime = !p.LimitTime
	case MoreFriction:
		p.Friction *= FrictionStep
	case LessFriction:
		p.Friction *= 1 / float32(FrictionStep)
	}
}

// Keys accumulates pending control triggers between frames. Asynchronous
// input sources call Trigger once per press edge; the frame loop calls
// Drain once per frame. Both hold the same lock for as short as possible,
// so no press is lost even when several arrive during one frame.
type Keys struct {
	mu      sync.Mutex
	pending [numActions]int
}

// Trigger records one press of the given action.
func (k *Keys) Trigger(a Action) {
	if a < 0 || a >= numActions {
		return
	}
	k.mu.Lock()
	k.pending[a]++
	k.mu.Unlock()
}

// Drain applies every pending trigger to p, each action as many times as
// it was triggered, then resets all counters.
func (k *Keys) Drain(p *Params) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for a := Action(0); a < numActions; a++ {
		for ; k.pending[a] > 0; k.pending[a]-- {
			a.apply(p)
		}
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
