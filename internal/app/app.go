//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"physarum/internal/core"
	"physarum/internal/logging"
	"physarum/internal/render"
	"physarum/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, log *slog.Logger) *Game {
	if log == nil {
		log = logging.Discard()
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewFieldPainter(size.W, size.H, render.GrayRamp()),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		log:     log,
		scale:   cfg.Scale,
		paused:  cfg.Paused,
		showHUD: cfg.HUDWidth > 0,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	stepped := false
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		stepped = true
	}
	if g.showHUD {
		g.hud.Update(time.Now(), stepped)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Field(), g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.showHUD {
		w += g.hud.Width()
	}
	return w, s.H * g.scale
}
