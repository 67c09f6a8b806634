package physarum

import "slices"

// Preset names.
const (
	PresetDefault = "default"
	PresetClassic = "classic"
	PresetNetwork = "network"
)

var presets = map[string]func() Config{
	PresetDefault: DefaultConfig,
	PresetClassic: classicConfig,
	PresetNetwork: networkConfig,
}

// Preset returns the named base configuration.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f(), true
}

// Presets lists preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// classicConfig reproduces the canvas prototype: fully random turn strength,
// heavy decay and no diffusion.
func classicConfig() Config {
	c := DefaultConfig()
	c.Width = 512
	c.Height = 288
	c.Population = 50000
	c.AgentSpeed = 1
	c.SenseDistance = 10
	c.SenseAngle = 1.2
	c.TurnSpeed = 0.7
	c.RandomTurnStrength = 1
	c.DecayFactor = 20
	c.DiffuseWeight = DiffusionOffThreshold
	return c
}

// networkConfig favours long-lived transport networks.
func networkConfig() Config {
	c := DefaultConfig()
	c.Width = 400
	c.Height = 300
	c.Population = 30000
	c.SenseDistance = 15
	c.SenseAngle = 0.4
	c.SensorSize = 3
	c.TurnSpeed = 0.3
	c.RandomTurnStrength = 0.3
	c.DecayFactor = 1
	c.DiffuseWeight = 2
	return c
}
