package physarum

import (
	"physarum/internal/core"
	"physarum/internal/vecmath"
	"physarum/pkg/rng"
)

// Agent is one particle of the population. Its index in the pool is its only
// identity.
type Agent struct {
	Pos     vecmath.Vec2
	Heading float64
}

// Probes returns the forward, left and right sensor points for the agent.
func (a Agent) Probes(distance, angle float64) (fwd, left, right vecmath.Vec2) {
	fwd = a.Pos.Add(vecmath.FromPolar(distance, a.Heading))
	left = a.Pos.Add(vecmath.FromPolar(distance, a.Heading-angle))
	right = a.Pos.Add(vecmath.FromPolar(distance, a.Heading+angle))
	return fwd, left, right
}

// AgentPool owns the fixed-size agent array.
type AgentPool struct {
	grid   core.Grid
	agents []Agent
}

// NewAgentPool allocates n agents on the given grid, all at the origin.
func NewAgentPool(n int, g core.Grid) *AgentPool {
	return &AgentPool{grid: g, agents: make([]Agent, n)}
}

// Len returns the population size.
func (p *AgentPool) Len() int { return len(p.agents) }

// Agents exposes the agent slice. Callers outside the stepper must treat it
// as read-only.
func (p *AgentPool) Agents() []Agent { return p.agents }

// Place reseeds every agent with the given strategy.
func (p *AgentPool) Place(pl Placement, r *rng.RNG) {
	pl.Place(p.agents, p.grid, r.Source())
}

// SenseSteerMove runs the first pass: every agent samples its three probes,
// turns, and moves. The field is only read, so agents may be processed in
// any order and in parallel. Agent i draws randomness from src stream i only.
func (p *AgentPool) SenseSteerMove(field *TrailField, cfg Config, src rng.Source, workers int) {
	g := p.grid
	forEachBand(workers, len(p.agents), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a := &p.agents[i]
			fp, lp, rp := a.Probes(cfg.SenseDistance, cfg.SenseAngle)
			f := field.SampleAt(fp, cfg.SensorSize)
			l := field.SampleAt(lp, cfg.SensorSize)
			r := field.SampleAt(rp, cfg.SensorSize)

			a.Heading = vecmath.WrapAngle(a.Heading + steer(f, l, r, cfg, src, i))
			a.Pos = a.Pos.Add(vecmath.FromPolar(cfg.AgentSpeed, a.Heading))
			a.Pos.X, a.Pos.Y = g.WrapPoint(a.Pos.X, a.Pos.Y)
		}
	})
}

// Deposit runs the second pass: every agent marks the cell it stands on.
func (p *AgentPool) Deposit(field *TrailField) {
	for i := range p.agents {
		x, y := p.grid.Cell(p.agents[i].Pos.X, p.agents[i].Pos.Y)
		field.Deposit(x, y, DepositValue)
	}
}

// steer returns the heading change for the probe readings f, l and r.
//
// The no-turn branch draws nothing. The random branch draws once and takes
// the sign from the low bit and the strength from the high bits. The
// directed branches draw once only when RandomTurnStrength > 0, so their
// turn magnitude is randomized too; with RandomTurnStrength == 0 they are
// fully deterministic and draw nothing. This draw count rule is deliberate.
func steer(f, l, r float32, cfg Config, src rng.Source, agent int) float64 {
	switch {
	case f >= l && f >= r:
		return 0
	case f < l && f < r:
		bits := src.Uint64(agent)
		d := turnStrength(cfg.RandomTurnStrength, bits) * cfg.TurnSpeed
		if bits&1 == 0 {
			return -d
		}
		return d
	}
	strength := 1.0
	if cfg.RandomTurnStrength > 0 {
		strength = turnStrength(cfg.RandomTurnStrength, src.Uint64(agent))
	}
	if l > r {
		return -strength * cfg.TurnSpeed
	}
	return strength * cfg.TurnSpeed
}

func turnStrength(randomness float64, bits uint64) float64 {
	return 1 - randomness + randomness*rng.Unit(bits)
}
