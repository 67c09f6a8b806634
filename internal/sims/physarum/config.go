package physarum

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MaxIntensity is the saturation level of the trail field.
	MaxIntensity float32 = 255
	// DepositValue is what every agent writes into its cell each tick.
	DepositValue = MaxIntensity
	// DiffusionOffThreshold disables diffusion when DiffuseWeight reaches it.
	DiffusionOffThreshold float32 = 20
)

// Config holds every tunable of a run. It is fixed once a Sim is built.
type Config struct {
	Width      int `toml:"width" yaml:"width"`
	Height     int `toml:"height" yaml:"height"`
	Population int `toml:"population" yaml:"population"`

	Seed      int64  `toml:"seed" yaml:"seed"`
	Placement string `toml:"placement" yaml:"placement"`

	SenseDistance float64 `toml:"sense_distance" yaml:"sense_distance"`
	SenseAngle    float64 `toml:"sense_angle" yaml:"sense_angle"`
	// SensorSize is the side of the square footprint averaged per probe.
	SensorSize int `toml:"sensor_size" yaml:"sensor_size"`

	TurnSpeed          float64 `toml:"turn_speed" yaml:"turn_speed"`
	RandomTurnStrength float64 `toml:"random_turn_strength" yaml:"random_turn_strength"`
	AgentSpeed         float64 `toml:"agent_speed" yaml:"agent_speed"`

	DecayFactor   float32 `toml:"decay_factor" yaml:"decay_factor"`
	DiffuseWeight float32 `toml:"diffuse_weight" yaml:"diffuse_weight"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:              320,
		Height:             240,
		Population:         20000,
		Seed:               1337,
		Placement:          PlacementDisk,
		SenseDistance:      9,
		SenseAngle:         0.6,
		SensorSize:         1,
		TurnSpeed:          0.5,
		RandomTurnStrength: 0.5,
		AgentSpeed:         1,
		DecayFactor:        3,
		DiffuseWeight:      4,
	}
}

// DiffusionEnabled reports whether Step blends the 3×3 neighbourhood.
func (c Config) DiffusionEnabled() bool {
	return c.DiffuseWeight < DiffusionOffThreshold
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the configuration and returns the first violation. NaN
// and infinite floats are rejected for every field.
func (c Config) Validate() error {
	switch {
	case c.Population <= 0:
		return &ConfigError{Field: "population", Value: c.Population, Reason: "must be > 0"}
	case c.Width <= 0:
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be > 0"}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Value: c.Height, Reason: "must be > 0"}
	case !(c.DecayFactor >= 0 && c.DecayFactor <= MaxIntensity):
		return &ConfigError{Field: "decay_factor", Value: c.DecayFactor, Reason: fmt.Sprintf("must be within [0, %g]", MaxIntensity)}
	case c.SensorSize < 1:
		return &ConfigError{Field: "sensor_size", Value: c.SensorSize, Reason: "must be >= 1"}
	case !nonNegative(c.SenseDistance):
		return &ConfigError{Field: "sense_distance", Value: c.SenseDistance, Reason: "must be finite and >= 0"}
	case !finite(c.SenseAngle):
		return &ConfigError{Field: "sense_angle", Value: c.SenseAngle, Reason: "must be finite"}
	case !nonNegative(c.AgentSpeed):
		return &ConfigError{Field: "agent_speed", Value: c.AgentSpeed, Reason: "must be finite and >= 0"}
	case !nonNegative(c.TurnSpeed):
		return &ConfigError{Field: "turn_speed", Value: c.TurnSpeed, Reason: "must be finite and >= 0"}
	case !(c.RandomTurnStrength >= 0 && c.RandomTurnStrength <= 1):
		return &ConfigError{Field: "random_turn_strength", Value: c.RandomTurnStrength, Reason: "must be within [0, 1]"}
	case !nonNegative(float64(c.DiffuseWeight)):
		return &ConfigError{Field: "diffuse_weight", Value: c.DiffuseWeight, Reason: "must be finite and >= 0"}
	}
	if _, ok := placements[c.Placement]; !ok {
		return &ConfigError{Field: "placement", Value: c.Placement, Reason: "unknown placement strategy"}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func nonNegative(v float64) bool { return finite(v) && v >= 0 }

// FromMap applies flag-style key/value overrides on top of base.
func FromMap(base Config, kv map[string]string) (Config, error) {
	c := base
	for key, v := range kv {
		var err error
		switch key {
		case "w", "width":
			c.Width, err = strconv.Atoi(v)
		case "h", "height":
			c.Height, err = strconv.Atoi(v)
		case "population", "agents":
			c.Population, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "placement":
			c.Placement = v
		case "sense_distance":
			c.SenseDistance, err = strconv.ParseFloat(v, 64)
		case "sense_angle":
			c.SenseAngle, err = strconv.ParseFloat(v, 64)
		case "sensor_size":
			c.SensorSize, err = strconv.Atoi(v)
		case "turn_speed":
			c.TurnSpeed, err = strconv.ParseFloat(v, 64)
		case "random_turn_strength":
			c.RandomTurnStrength, err = strconv.ParseFloat(v, 64)
		case "agent_speed":
			c.AgentSpeed, err = strconv.ParseFloat(v, 64)
		case "decay_factor":
			c.DecayFactor, err = parseFloat32(v)
		case "diffuse_weight":
			c.DiffuseWeight, err = parseFloat32(v)
		default:
			return base, &ConfigError{Field: key, Value: v, Reason: "unknown parameter"}
		}
		if err != nil {
			return base, &ConfigError{Field: key, Value: v, Reason: err.Error()}
		}
	}
	return c, nil
}

func parseFloat32(v string) (float32, error) {
	f, err := strconv.ParseFloat(v, 32)
	return float32(f), err
}
