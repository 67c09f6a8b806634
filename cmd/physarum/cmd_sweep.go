package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"physarum/internal/sims/physarum"
)

func newSweepCmd() *cobra.Command {
	var (
		angles string
		decays string
		ticks  int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Score a grid of sense angles and decay factors",
		Long: `Run every combination of --angles and --decays on top of the resolved
configuration and print the results ordered by coverage.

Examples:
  physarum sweep --angles 0.3,0.6,1.2 --decays 1,3,10 --ticks 300
  physarum sweep --preset network --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			angleList, err := parseFloats(angles, 64)
			if err != nil {
				return fmt.Errorf("--angles: %w", err)
			}
			decayList, err := parseFloats(decays, 32)
			if err != nil {
				return fmt.Errorf("--decays: %w", err)
			}
			r, err := resolve(cmd)
			if err != nil {
				return err
			}

			decay32 := make([]float32, len(decayList))
			for i, d := range decayList {
				decay32[i] = float32(d)
			}
			sets := physarum.SweepGrid(r.file.Physarum, angleList, decay32)
			r.log.Info("sweep started", "sets", len(sets), "ticks", ticks, "workers", r.file.Workers)

			results, err := physarum.Sweep(cmd.Context(), sets, ticks, r.file.Workers)
			if err != nil {
				return err
			}
			sort.SliceStable(results, func(i, j int) bool {
				return results[i].Coverage > results[j].Coverage
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ANGLE\tDECAY\tCOVERAGE\tMEAN")
			for _, res := range results {
				fmt.Fprintf(w, "%.3f\t%g\t%.4f\t%.2f\n",
					res.Config.SenseAngle, res.Config.DecayFactor, res.Coverage, res.Mean)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&angles, "angles", "0.3,0.6,1.2", "Comma-separated sense angles in radians")
	cmd.Flags().StringVar(&decays, "decays", "1,3,10", "Comma-separated decay factors")
	cmd.Flags().IntVar(&ticks, "ticks", 200, "Ticks per configuration")
	return cmd
}
