// Package glimmer animates a field of soft, glowing, star-shaped particles.
//
// A fixed number of particles drift in an aspect-corrected unit rectangle.
// Each frame a stochastic force with a quadratic boundary bias pushes every
// particle around while cubic drag keeps speeds bounded, hues rotate at a
// fixed per-particle rate, and the star silhouettes (rotation, plumpness,
// warp) are recomputed from elapsed time. The package only produces the
// per-particle parameter vectors; painting them as a glow field is the job
// of a driver such as the opengl or stream packages.
package glimmer

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Simulation contains all the state and parameters of a glow field.
//
// Swarm, Params and the clock are owned by the frame loop and need no
// locking. Keys is the only resource shared with other goroutines.
type Simulation struct {
	Swarm  *Swarm
	Params Params
	Keys   Keys
	Aspect float32 // width/height of the visible area
	Time   float32 // elapsed simulated time

	rng   *rand.Rand
	gen   genesis
	force distuv.Uniform // per-axis force jitter
}

// New creates a simulation of n particles with freshly drawn attributes.
// The aspect ratio scales the x axis of spawn positions and of the
// boundary bias. A fixed seed yields a reproducible run.
func New(n int, aspect float32, seed uint64) (*Simulation, error) {
	if n < 0 {
		return nil, fmt.Errorf("glimmer: negative particle count %d", n)
	}
	w, err := NewSwarm(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Simulation{
		Swarm:  w,
		Params: DefaultParams(),
		Aspect: aspect,
		rng:    rng,
		gen:    newGenesis(rng),
		force:  distuv.Uniform{Min: -ForceStrength, Max: ForceStrength, Src: rng},
	}

	// Starting far from t=0 keeps the shape oscillators decorrelated
	// from process start.
	s.Time = float32(distuv.Uniform{Min: 1e3, Max: 2e3, Src: rng}.Rand())

	for i := 0; i < n; i++ {
		s.gen.spawn(w, i, s.Aspect)
	}
	return s, nil
}

// Step advances the simulation by one frame of duration dt, then drains
// pending control triggers so they take effect on the next frame.
func (s *Simulation) Step(dt float32) {
	s.Time += dt
	s.moveParticles(dt)
	s.driftHues(dt)
	s.oscillateShapes()
	s.Keys.Drain(&s.Params)
}

// SetAspect records a new aspect ratio. Stored particle positions are not
// rescaled: only the boundary bias and future spawns see the new value.
func (s *Simulation) SetAspect(aspect float32) {
	s.Aspect = aspect
}

// A Snapshot is a copy of the renderable state of one frame. The slices
// do not alias the live swarm and stay valid across later steps.
type Snapshot struct {
	Time         float32
	TailCritical float32
	Draw         bool
	PosRad       []Vec3
	Color        []Vec3
	Shape        []Vec4
}

// Snapshot copies the current renderable state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Time:         s.Time,
		TailCritical: s.Params.TailCritical,
		Draw:         s.Params.Draw,
		PosRad:       make([]Vec3, len(s.Swarm.PosRad)),
		Color:        make([]Vec3, len(s.Swarm.Color)),
		Shape:        make([]Vec4, len(s.Swarm.Shape)),
	}
	copy(snap.PosRad, s.Swarm.PosRad)
	copy(snap.Color, s.Swarm.Color)
	copy(snap.Shape, s.Swarm.Shape)
	return snap
}
