//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"physarum/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type tickCounter interface {
	Ticks() int
}

// HUD renders the telemetry and parameter panel to the right of the
// simulation view. The configuration is fixed for a run so the panel is
// read-only.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	rate  core.RateMeter
	lines []string
	title string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if sim != nil && sim.Name() != "" {
		h.title = strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
	} else {
		h.title = "Simulation"
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update records a frame at now and rebuilds the telemetry lines.
func (h *HUD) Update(now time.Time, stepped bool) {
	if h == nil {
		return
	}
	if stepped {
		h.rate.Mark(now)
	}
	view := h.sim.Field()
	values := view.Values()
	total := 0.0
	for _, v := range values {
		total += float64(v)
	}
	mean := 0.0
	if len(values) > 0 {
		mean = total / float64(len(values))
	}

	h.lines = h.lines[:0]
	if tc, ok := h.sim.(tickCounter); ok {
		h.lines = append(h.lines, fmt.Sprintf("tick     %d", tc.Ticks()))
	}
	h.lines = append(h.lines,
		fmt.Sprintf("tps      %.1f", h.rate.Rate()),
		fmt.Sprintf("mean     %.2f", mean),
		fmt.Sprintf("total    %.0f", total),
		"",
	)
	for _, group := range h.snapshot.Groups {
		header := group.Name
		if group.Summary != "" {
			header += " (" + group.Summary + ")"
		}
		h.lines = append(h.lines, header)
		for _, p := range group.Params {
			h.lines = append(h.lines, fmt.Sprintf("  %-14s %s", p.Label, p.Value))
		}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing
	for _, line := range h.lines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 18
	infoSpacing    = 24
)
