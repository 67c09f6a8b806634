package physarum

import "physarum/pkg/rng"

// Stepper advances a field and an agent pool by whole ticks.
type Stepper struct {
	workers int
}

// NewStepper returns a stepper that splits each pass across workers
// goroutines. Non-positive values use DefaultWorkers.
func NewStepper(workers int) *Stepper {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Stepper{workers: workers}
}

// Workers returns the configured parallelism.
func (s *Stepper) Workers() int { return s.workers }

// Tick runs one simulation step:
//
//  1. agents sense the current buffer, steer and move;
//  2. agents deposit into the current buffer;
//  3. the field decays and diffuses into the next buffer;
//  4. the buffers swap.
//
// Each phase returns only after all of its work is done, so sensing at tick T
// sees the field as left by tick T-1 and none of tick T's deposits.
func (s *Stepper) Tick(field *TrailField, agents *AgentPool, cfg Config, src rng.Source) {
	agents.SenseSteerMove(field, cfg, src, s.workers)
	agents.Deposit(field)
	field.Step(cfg.DecayFactor, cfg.DiffuseWeight, s.workers)
	field.Swap()
}
