package physarum

import (
	"math"
	"math/rand/v2"
	"slices"

	"physarum/internal/core"
	"physarum/internal/vecmath"
)

// Built-in placement strategies.
const (
	PlacementDisk    = "disk"
	PlacementUniform = "uniform"
	PlacementCenter  = "center"
)

// Placement seeds the initial agent state for a run.
type Placement interface {
	Place(agents []Agent, g core.Grid, r *rand.Rand)
}

// PlacementFunc adapts a function to the Placement interface.
type PlacementFunc func(agents []Agent, g core.Grid, r *rand.Rand)

// Place calls f.
func (f PlacementFunc) Place(agents []Agent, g core.Grid, r *rand.Rand) { f(agents, g, r) }

var placements = map[string]Placement{
	PlacementDisk:    PlacementFunc(placeDisk),
	PlacementUniform: PlacementFunc(placeUniform),
	PlacementCenter:  PlacementFunc(placeCenter),
}

// RegisterPlacement adds a named strategy usable from Config.Placement.
func RegisterPlacement(name string, p Placement) {
	if name == "" || p == nil {
		return
	}
	placements[name] = p
}

// Placements lists the registered strategy names in sorted order.
func Placements() []string {
	names := make([]string, 0, len(placements))
	for name := range placements {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// placeDisk spreads agents uniformly over a disk of radius min(w,h)/2 around
// the centre, each facing the centre.
func placeDisk(agents []Agent, g core.Grid, r *rand.Rand) {
	center := vecmath.Vec2{X: float64(g.W) / 2, Y: float64(g.H) / 2}
	radius := float64(min(g.W, g.H)) / 2
	for i := range agents {
		rho := radius * math.Sqrt(r.Float64())
		theta := 2 * math.Pi * r.Float64()
		pos := center.Add(vecmath.FromPolar(rho, theta))
		pos.X, pos.Y = g.WrapPoint(pos.X, pos.Y)
		agents[i] = Agent{Pos: pos, Heading: vecmath.WrapAngle(theta + math.Pi)}
	}
}

func placeUniform(agents []Agent, g core.Grid, r *rand.Rand) {
	for i := range agents {
		agents[i] = Agent{
			Pos:     vecmath.Vec2{X: r.Float64() * float64(g.W), Y: r.Float64() * float64(g.H)},
			Heading: 2*math.Pi*r.Float64() - math.Pi,
		}
	}
}

// placeCenter starts every agent on the centre point with a random heading.
func placeCenter(agents []Agent, g core.Grid, r *rand.Rand) {
	center := vecmath.Vec2{X: float64(g.W) / 2, Y: float64(g.H) / 2}
	for i := range agents {
		agents[i] = Agent{Pos: center, Heading: 2*math.Pi*r.Float64() - math.Pi}
	}
}
