package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"physarum/internal/core"
	"physarum/internal/logging"
	"physarum/internal/render"
	"physarum/internal/sims/physarum"
)

type runOptions struct {
	Ticks       int
	TPS         int
	ReportEvery int
	Snapshot    string
}

type runStats struct {
	Ticks int
	Rate  float64
	Total float64
}

func newRunCmd() *cobra.Command {
	opts := runOptions{Ticks: 1000, ReportEvery: 100}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless",
		Long: `Run the simulation without a window and log telemetry.

Examples:
  physarum run --ticks 500 --preset classic
  physarum run --config run.toml --set decay_factor=5 --snapshot trail.png
  physarum run --ticks 0 --tps 30        # run paced until interrupted`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolve(cmd)
			if err != nil {
				return err
			}
			sim, err := r.newSim()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
			defer stop()

			stats, err := runHeadless(ctx, sim, opts, r.log)
			if err != nil {
				return err
			}
			r.log.Info("run finished",
				"ticks", stats.Ticks,
				"tps", fmt.Sprintf("%.1f", stats.Rate),
				"total", fmt.Sprintf("%.0f", stats.Total),
			)

			if opts.Snapshot != "" {
				if err := writeSnapshot(opts.Snapshot, sim.Field()); err != nil {
					return err
				}
				r.log.Info("snapshot written", "path", opts.Snapshot)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Ticks, "ticks", opts.Ticks, "Ticks to run (0 runs until interrupted)")
	cmd.Flags().IntVar(&opts.TPS, "tps", opts.TPS, "Ticks per second (0 runs unpaced)")
	cmd.Flags().IntVar(&opts.ReportEvery, "report-every", opts.ReportEvery, "Log progress every N ticks (0 disables)")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Write the final field as a grayscale PNG")
	return cmd
}

// runHeadless steps sim until opts.Ticks is reached or ctx is cancelled.
// Cancellation is not an error; the ticks completed so far are reported.
func runHeadless(ctx context.Context, sim *physarum.Sim, opts runOptions, log *slog.Logger) (runStats, error) {
	var pacer *core.FixedStep
	if opts.TPS > 0 {
		pacer = core.NewFixedStep(opts.TPS)
	}
	var meter core.RateMeter
	meter.Mark(time.Now())

	stats := runStats{}
	for opts.Ticks <= 0 || stats.Ticks < opts.Ticks {
		if ctx.Err() != nil {
			log.Info("run interrupted", "tick", stats.Ticks)
			break
		}
		if pacer != nil && !pacer.ShouldStep() {
			select {
			case <-ctx.Done():
			case <-time.After(pacer.Remaining()):
			}
			continue
		}

		sim.Step()
		stats.Ticks++
		stats.Rate = meter.Mark(time.Now())
		log.Log(ctx, logging.LevelTrace, "tick", "tick", stats.Ticks)

		if opts.ReportEvery > 0 && stats.Ticks%opts.ReportEvery == 0 {
			log.Info("progress",
				"tick", stats.Ticks,
				"tps", fmt.Sprintf("%.1f", stats.Rate),
				"total", fmt.Sprintf("%.0f", sim.Trail().Total()),
			)
		}
	}
	stats.Total = sim.Trail().Total()
	return stats, nil
}

func writeSnapshot(path string, view core.FieldView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := render.WritePNG(f, view); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
