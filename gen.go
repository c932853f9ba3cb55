package glimmer

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Spawn distribution parameters.
const (
	CoordMean      = 0.5  // spawn positions cluster around the middle
	CoordDeviation = 0.22

	AvgRadius       = 0.035
	RadiusDeviation = 0.007
	MinRadius       = 0.01
	MaxRadius       = 0.5

	// Lower rates favor more saturated, brighter colors. Both are set
	// high enough that muddy gray particles are rare.
	SaturationRate = 12.0
	ValueRate      = 14.0

	// Star point count is round(4 + Gamma(CornersShape, CornersScale)),
	// putting the mode around 5 to 7 points, never below 4.
	CornersShape = 5.0
	CornersScale = 0.28

	HueVelFactor = 0.002
	RotVelFactor = 0.10
	WrpVelFactor = 0.10
	PlpVelFactor = 0.03
)

// genesis draws the initial attributes of a particle from a shared seeded
// stream. Every spawn consumes the same number of draws in the same order,
// so runs with a fixed seed are reproducible.
type genesis struct {
	coord   distuv.Normal
	radius  distuv.Normal
	hue     distuv.Uniform
	sat     distuv.Exponential
	val     distuv.Exponential
	corners distuv.Gamma
	hueVel  distuv.Gamma
	spinVel distuv.Gamma

	rng *rand.Rand
}

func newGenesis(rng *rand.Rand) genesis {
	return genesis{
		coord:   distuv.Normal{Mu: CoordMean, Sigma: CoordDeviation, Src: rng},
		radius:  distuv.Normal{Mu: AvgRadius, Sigma: RadiusDeviation, Src: rng},
		hue:     distuv.Uniform{Min: 0, Max: 1, Src: rng},
		sat:     distuv.Exponential{Rate: SaturationRate, Src: rng},
		val:     distuv.Exponential{Rate: ValueRate, Src: rng},
		corners: distuv.Gamma{Alpha: CornersShape, Beta: 1 / CornersScale, Src: rng},
		hueVel:  distuv.Gamma{Alpha: 7, Beta: 1 / 2.0, Src: rng},
		spinVel: distuv.Gamma{Alpha: 12, Beta: 1 / 0.4, Src: rng},
		rng:     rng,
	}
}

// spawn fills in every attribute of particle i. The draw order is fixed:
// position x, y, radius, hue, saturation, value, corners, then
// magnitude/sign pairs for hue, rotation, warp and plumpness velocities.
func (g *genesis) spawn(w *Swarm, i int, aspect float32) {
	w.PosRad[i] = Vec3{
		X: clamp(float32(g.coord.Rand()), 0, 1) * aspect,
		Y: clamp(float32(g.coord.Rand()), 0, 1),
		Z: clamp(float32(g.radius.Rand()), MinRadius, MaxRadius),
	}
	w.Color[i] = Vec3{
		X: float32(g.hue.Rand()),
		Y: 1 - float32(math.Min(g.sat.Rand(), 1)),
		Z: 1 - float32(math.Min(g.val.Rand(), 1)),
	}
	w.Shape[i].X = float32(math.Round(4 + g.corners.Rand()))
	w.Vel[i] = Vec2{}
	w.HueVel[i] = float32(g.hueVel.Rand()) * g.sign() * HueVelFactor
	w.SpinVel[i] = Spin{
		Rot: float32(g.spinVel.Rand()) * g.sign() * RotVelFactor,
		Wrp: float32(g.spinVel.Rand()) * g.sign() * WrpVelFactor,
		Plp: float32(g.spinVel.Rand()) * g.sign() * PlpVelFactor,
	}
}

// sign flips a fair coin on the shared stream.
func (g *genesis) sign() float32 {
	if g.rng.Uint64()&1 == 0 {
		return 1
	}
	return -1
}
