//go:build !ebiten

package ui

import "physarum/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	ShowAgents bool
}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Toggle flips the agent layer flag.
func (o *Overlay) Toggle() { o.ShowAgents = !o.ShowAgents }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
