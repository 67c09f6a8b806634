//go:build ebiten

package ui

import (
	"image/color"

	"physarum/internal/core"
	"physarum/internal/vecmath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type agentProvider interface {
	AgentPositions(dst []vecmath.Vec2) []vecmath.Vec2
}

// maxOverlayAgents bounds how many agents are drawn per frame.
const maxOverlayAgents = 4000

// Overlay draws agent positions on top of the trail field.
type Overlay struct {
	sim       core.Sim
	scale     int
	positions []vecmath.Vec2
	tint      color.RGBA

	// ShowAgents toggles the agent layer.
	ShowAgents bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{
		sim:   sim,
		scale: scale,
		tint:  color.RGBA{R: 255, G: 120, B: 40, A: 200},
	}
}

// Toggle flips the agent layer.
func (o *Overlay) Toggle() { o.ShowAgents = !o.ShowAgents }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.ShowAgents {
		return
	}
	provider, ok := o.sim.(agentProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.positions = provider.AgentPositions(o.positions[:0])
	stride := 1
	if len(o.positions) > maxOverlayAgents {
		stride = (len(o.positions) + maxOverlayAgents - 1) / maxOverlayAgents
	}
	size := float32(scale)
	if size < 2 {
		size = 2
	}
	for i := 0; i < len(o.positions); i += stride {
		p := o.positions[i]
		x := float32(p.X)*float32(scale) - size/2
		y := float32(p.Y)*float32(scale) - size/2
		vector.DrawFilledRect(screen, x, y, size, size, o.tint, false)
	}
}
