//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"physarum/internal/app"
)

func newViewCmd() *cobra.Command {
	win := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window",
		Long: `Open a window showing the trail field.

Keys: space pause, n single step, r reset, s reseed, 1 agent overlay,
h telemetry panel, q or esc quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := win.Validate(); err != nil {
				return err
			}
			r, err := resolve(cmd)
			if err != nil {
				return err
			}
			sim, err := r.newSim()
			if err != nil {
				return err
			}
			win.Seed = sim.Seed()

			game := app.New(sim, win, r.log)
			size := sim.Size()

			ebiten.SetWindowTitle("physarum - " + r.file.Preset)
			ebiten.SetTPS(win.TPS)
			ebiten.SetWindowSize(size.W*win.Scale+win.HUDWidth, size.H*win.Scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	win.Bind(cmd.Flags())
	return cmd
}
