package physarum

import (
	"log/slog"

	"physarum/internal/core"
	"physarum/internal/logging"
	"physarum/internal/vecmath"
	"physarum/pkg/rng"
)

// Sim owns every piece of state of one run: the configuration, the trail
// field, the agents, their random streams and the stepper.
type Sim struct {
	cfg       Config
	placement Placement

	field   *TrailField
	agents  *AgentPool
	streams *rng.Streams
	src     rng.Source
	stepper *Stepper
	log     *slog.Logger

	seed  int64
	ticks int
}

// Option customises a Sim at construction.
type Option func(*Sim)

// WithWorkers sets the number of goroutines each pass is split across.
func WithWorkers(n int) Option {
	return func(s *Sim) { s.stepper = NewStepper(n) }
}

// WithLogger routes lifecycle messages to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSource replaces the per-agent random streams. Reset does not reseed
// a replaced source.
func WithSource(src rng.Source) Option {
	return func(s *Sim) { s.src = src }
}

// New validates cfg and builds a Sim seeded with cfg.Seed. Nothing is
// allocated when the configuration is invalid.
func New(cfg Config, opts ...Option) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:       cfg,
		placement: placements[cfg.Placement],
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stepper == nil {
		s.stepper = NewStepper(0)
	}
	s.field = NewTrailField(cfg.Width, cfg.Height)
	s.agents = NewAgentPool(cfg.Population, s.field.Grid())
	s.streams = rng.NewStreams(cfg.Seed, cfg.Population)
	if s.src == nil {
		s.src = s.streams
	}
	s.log.Debug("simulation created",
		"width", cfg.Width,
		"height", cfg.Height,
		"population", cfg.Population,
		"placement", cfg.Placement,
		"workers", s.stepper.Workers(),
		"diffusion", cfg.DiffusionEnabled(),
	)
	s.Reset(0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "physarum" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.field.Size() }

// Config returns the configuration the Sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// Seed returns the seed of the current run.
func (s *Sim) Seed() int64 { return s.seed }

// Ticks returns the number of steps since the last Reset.
func (s *Sim) Ticks() int { return s.ticks }

// Field returns a read-only view of the current trail buffer.
func (s *Sim) Field() core.FieldView { return s.field.View() }

// Trail exposes the trail field.
func (s *Sim) Trail() *TrailField { return s.field }

// Agents exposes the agent array. Callers must not modify it.
func (s *Sim) Agents() []Agent { return s.agents.Agents() }

// AgentPositions appends every agent position to dst and returns it.
func (s *Sim) AgentPositions(dst []vecmath.Vec2) []vecmath.Vec2 {
	for _, a := range s.agents.Agents() {
		dst = append(dst, a.Pos)
	}
	return dst
}

// Reset clears the field and re-places the agents. A zero seed reuses the
// configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.ticks = 0
	s.field.Clear()
	s.agents.Place(s.placement, rng.NewRNG(seed))
	s.streams.Seed(seed)
	s.log.Debug("simulation reset", "seed", seed)
}

// Step advances the simulation by one tick.
func (s *Sim) Step() {
	s.stepper.Tick(s.field, s.agents, s.cfg, s.src)
	s.ticks++
}
