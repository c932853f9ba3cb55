package glimmer

// Force model tuning. Too small a force and particles escape the visible
// area, too large and they oscillate. The boundary strictness sets how far
// from an edge the bias starts pushing back toward the center; the
// tendency scales about with its square root, so large values are fine.
const (
	ForceStrength      = 0.3
	BiasStrength       = 0.005 * ForceStrength
	BoundaryStrictness = 64.0
)

// biasedForce returns the stochastic force on a particle at pos: uniform
// jitter in [-ForceStrength, ForceStrength] per axis plus a restoring bias
// that grows quadratically with the distance from the middle of the
// visible area. The bias is a soft pressure, not a hard wall.
func (s *Simulation) biasedForce(pos Vec3) Vec2 {
	xlo, xhi := float32(0), s.Aspect
	ylo, yhi := float32(0), float32(1)

	// The margin to the low/high edge measures how willing the
	// particle is to move toward that edge.
	xbias := (xhi - pos.X) - (pos.X - xlo)
	ybias := (yhi - pos.Y) - (pos.Y - ylo)
	xbias *= abs(xbias) * BoundaryStrictness
	ybias *= abs(ybias) * BoundaryStrictness

	return Vec2{
		X: float32(s.force.Rand()) + xbias*BiasStrength,
		Y: float32(s.force.Rand()) + ybias*BiasStrength,
	}
}

// moveParticles advances every particle's position and velocity by dt
// using semi-implicit integration. Drag opposes velocity and grows with
// its cube, scaled by the friction parameter, so speed settles at a
// friction-dependent terminal value instead of being clamped.
func (s *Simulation) moveParticles(dt float32) {
	w := s.Swarm
	friction := s.Params.Friction
	for i := range w.PosRad {
		vel := w.Vel[i]
		vSqrd := vel.X*vel.X + vel.Y*vel.Y

		rnd := s.biasedForce(w.PosRad[i])
		force := Vec2{
			X: rnd.X - vel.X*vSqrd*friction,
			Y: rnd.Y - vel.Y*vSqrd*friction,
		}

		w.PosRad[i].X += vel.X*dt + 0.5*force.X*dt*dt
		w.PosRad[i].Y += vel.Y*dt + 0.5*force.Y*dt*dt
		w.Vel[i].X += force.X * dt
		w.Vel[i].Y += force.Y * dt
	}
}

// abs returns the absolute value of f.
func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
