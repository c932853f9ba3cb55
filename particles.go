package glimmer

import "fmt"

// A Vec2 is a simple 2D float vector.
type Vec2 struct {
	X, Y float32
}

// A Vec3 is a simple 3D float vector.
type Vec3 struct {
	X, Y, Z float32
}

// A Vec4 is a simple 4D float vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// A Spin holds the fixed angular velocities driving one particle's
// star silhouette: rotation, warp and plumpness.
type Spin struct {
	Rot, Wrp, Plp float32
}

// A Swarm holds all per-particle attributes as index-aligned arrays:
// index i identifies the same particle across every array. The arrays are
// allocated once and keep their length for the life of the process.
type Swarm struct {
	// PosRad packs position (x, y) and radius (z). The x coordinate
	// lives in [0, aspect], y near [0, 1]; neither is hard-clamped
	// after spawn. Radius is clamped to [MinRadius, MaxRadius].
	PosRad []Vec3

	// Color packs hue (x), saturation (y) and value (z).
	// Only hue changes after spawn, wrapping in [0, 1).
	Color []Vec3

	// Shape packs star point count (x), rotation in raw radians (y),
	// plumpness in [0.7, 1.0] (z) and warp in [-0.2, 0.2] (w).
	// Rotation, plumpness and warp are recomputed from elapsed time
	// every frame, never integrated.
	Shape []Vec4

	Vel     []Vec2    // position velocity, shaped by drag only
	HueVel  []float32 // signed hue drift rate, fixed at spawn
	SpinVel []Spin    // silhouette angular velocities, fixed at spawn
}

// NewSwarm allocates the attribute arrays for n particles.
func NewSwarm(n int) (*Swarm, error) {
	if n < 0 {
		return nil, fmt.Errorf("glimmer: negative particle count %d", n)
	}
	return &Swarm{
		PosRad:  make([]Vec3, n),
		Color:   make([]Vec3, n),
		Shape:   make([]Vec4, n),
		Vel:     make([]Vec2, n),
		HueVel:  make([]float32, n),
		SpinVel: make([]Spin, n),
	}, nil
}

// Len returns the number of particles.
func (w *Swarm) Len() int {
	return len(w.PosRad)
}

// Check verifies that all attribute arrays are index-aligned. A mismatch
// means a caller bug (for example a recording with inconsistent datasets)
// and callers are expected to abort on it.
func (w *Swarm) Check() error {
	n := len(w.PosRad)
	if len(w.Color) != n || len(w.Shape) != n || len(w.Vel) != n ||
		len(w.HueVel) != n || len(w.SpinVel) != n {
		return fmt.Errorf("glimmer: misaligned swarm arrays: pos_rad=%d color=%d shape=%d vel=%d hue_vel=%d spin_vel=%d",
			n, len(w.Color), len(w.Shape), len(w.Vel), len(w.HueVel), len(w.SpinVel))
	}
	return nil
}

// clamp limits f to [lo, hi].
func clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
