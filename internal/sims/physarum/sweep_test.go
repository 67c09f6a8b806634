package physarum

import (
	"context"
	"errors"
	"testing"
)

func sweepBase() Config {
	c := DefaultConfig()
	c.Width = 32
	c.Height = 24
	c.Population = 200
	return c
}

func TestSweepGrid(t *testing.T) {
	sets := SweepGrid(sweepBase(), []float64{0.3, 0.6}, []float32{1, 5, 9})
	if len(sets) != 6 {
		t.Fatalf("grid size = %d, want 6", len(sets))
	}
	if sets[0].SenseAngle != 0.3 || sets[0].DecayFactor != 1 {
		t.Fatalf("first set = %+v", sets[0])
	}
	if sets[5].SenseAngle != 0.6 || sets[5].DecayFactor != 9 {
		t.Fatalf("last set = %+v", sets[5])
	}
}

func TestSweepPreservesOrder(t *testing.T) {
	sets := SweepGrid(sweepBase(), []float64{0.3, 0.9}, []float32{0, 50})
	results, err := Sweep(context.Background(), sets, 8, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(sets) {
		t.Fatalf("results = %d, want %d", len(results), len(sets))
	}
	for i, res := range results {
		if res.Config != sets[i] {
			t.Fatalf("result %d belongs to %+v", i, res.Config)
		}
		if res.Ticks != 8 {
			t.Fatalf("result %d ran %d ticks", i, res.Ticks)
		}
		if res.Coverage < 0 || res.Coverage > 1 || res.Mean <= 0 {
			t.Fatalf("result %d out of range: %+v", i, res)
		}
	}
	// Without decay the trail only accumulates.
	if results[0].Mean <= results[1].Mean {
		t.Fatalf("expected decay 0 to leave more trail than decay 50: %v vs %v", results[0], results[1])
	}
}

func TestSweepMatchesSingleRun(t *testing.T) {
	cfg := sweepBase()
	results, err := Sweep(context.Background(), []Config{cfg}, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	want := sim.Trail().Total() / float64(cfg.Width*cfg.Height)
	if results[0].Mean != want {
		t.Fatalf("sweep mean %f, direct run %f", results[0].Mean, want)
	}
}

func TestSweepRejectsInvalidSet(t *testing.T) {
	bad := sweepBase()
	bad.Population = 0
	_, err := Sweep(context.Background(), []Config{sweepBase(), bad}, 1, 2)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, []Config{sweepBase()}, 10, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
