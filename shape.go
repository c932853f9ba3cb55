package glimmer

import "math"

// Silhouette parameter ranges.
const (
	MinPlumpness = 0.7
	MaxPlumpness = 1.0
	MinWarp      = -0.2
	MaxWarp      = 0.2
)

// driftHues rotates every particle's hue by its drift rate, keeping the
// result in [0, 1). The wrap is a loop rather than a modulo so arbitrarily
// large overshoot in one step lands back in range without precision loss.
func (s *Simulation) driftHues(dt float32) {
	w := s.Swarm
	for i := range w.Color {
		w.Color[i].X = wrapHue(w.Color[i].X + w.HueVel[i]*dt)
	}
}

// wrapHue folds h into [0, 1). Wrapping an already wrapped value is a no-op.
func wrapHue(h float32) float32 {
	for h >= 1 {
		h--
	}
	for h < 0 {
		h++
	}
	return h
}

// oscillateShapes recomputes rotation, plumpness and warp for every
// particle as pure functions of elapsed simulated time. Unlike position
// these are not integrated: recomputing from scratch keeps them perfectly
// periodic and free of accumulated drift. Rotation is left in raw radians;
// wrapping it is the renderer's concern.
func (s *Simulation) oscillateShapes() {
	w := s.Swarm
	t := s.Time
	for i := range w.Shape {
		spin := w.SpinVel[i]
		w.Shape[i].Y = spin.Rot * t
		w.Shape[i].Z = cosRange(spin.Plp*t, MinPlumpness, MaxPlumpness)
		w.Shape[i].W = cosRange(spin.Wrp*t, MinWarp, MaxWarp)
	}
}

// cosRange maps cos(x) from [-1, 1] onto [lo, hi].
func cosRange(x, lo, hi float32) float32 {
	return 0.5*(float32(math.Cos(float64(x)))+1)*(hi-lo) + lo
}
