//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"physarum/internal/app"
)

func newViewCmd() *cobra.Command {
	win := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window (requires the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the view command requires the ebiten build tag; " +
				"re-run with `go run -tags ebiten ./cmd/physarum view` or build with `-tags ebiten`")
		},
	}
	win.Bind(cmd.Flags())
	return cmd
}
