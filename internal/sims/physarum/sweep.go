package physarum

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SweepResult scores one configuration after a fixed number of ticks.
type SweepResult struct {
	Config Config
	Ticks  int
	// Coverage is the fraction of cells at or above half intensity.
	Coverage float64
	// Mean is the average cell intensity.
	Mean float64
}

func (r SweepResult) String() string {
	return fmt.Sprintf("angle=%.3f decay=%g coverage=%.4f mean=%.2f",
		r.Config.SenseAngle, r.Config.DecayFactor, r.Coverage, r.Mean)
}

// SweepGrid returns base with every combination of sense angle and decay.
func SweepGrid(base Config, angles []float64, decays []float32) []Config {
	sets := make([]Config, 0, len(angles)*len(decays))
	for _, angle := range angles {
		for _, decay := range decays {
			c := base
			c.SenseAngle = angle
			c.DecayFactor = decay
			sets = append(sets, c)
		}
	}
	return sets
}

// Sweep runs each configuration for ticks steps, at most workers at a time,
// and returns the results in input order. Each run is single-threaded; the
// parallelism is across runs. Cancelling ctx stops all runs between ticks.
func Sweep(ctx context.Context, configs []Config, ticks, workers int) ([]SweepResult, error) {
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("sweep set %d: %w", i, err)
		}
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	results := make([]SweepResult, len(configs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range configs {
		g.Go(func() error {
			res, err := evaluate(ctx, c, ticks)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluate(ctx context.Context, cfg Config, ticks int) (SweepResult, error) {
	sim, err := New(cfg, WithWorkers(1))
	if err != nil {
		return SweepResult{}, err
	}
	for t := 0; t < ticks; t++ {
		if err := ctx.Err(); err != nil {
			return SweepResult{}, err
		}
		sim.Step()
	}
	field := sim.Trail()
	cells := cfg.Width * cfg.Height
	return SweepResult{
		Config:   cfg,
		Ticks:    ticks,
		Coverage: field.Coverage(MaxIntensity / 2),
		Mean:     field.Total() / float64(cells),
	}, nil
}
