package physarum

import (
	"strconv"

	"physarum/internal/core"
)

// Parameters describes the run configuration for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	c := s.cfg
	diffusion := "off"
	if c.DiffusionEnabled() {
		diffusion = "on"
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", c.Width),
				intParam("height", "Height", c.Height),
				intParam("population", "Agents", c.Population),
				int64Param("seed", "Seed", s.seed),
				stringParam("placement", "Placement", c.Placement),
			},
		},
		{
			Name: "Sensing",
			Params: []core.Parameter{
				floatParam("sense_distance", "Sense distance", c.SenseDistance),
				floatParam("sense_angle", "Sense angle", c.SenseAngle),
				intParam("sensor_size", "Sensor size", c.SensorSize),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("turn_speed", "Turn speed", c.TurnSpeed),
				floatParam("random_turn_strength", "Random turn", c.RandomTurnStrength),
				floatParam("agent_speed", "Speed", c.AgentSpeed),
			},
		},
		{
			Name:    "Trail",
			Summary: "diffusion " + diffusion,
			Params: []core.Parameter{
				float32Param("decay_factor", "Decay", c.DecayFactor),
				float32Param("diffuse_weight", "Diffuse weight", c.DiffuseWeight),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func float32Param(key, label string, value float32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(float64(value), 'f', -1, 32),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
