package app

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config represents the window parameters of the view command.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Paused   bool
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60, HUDWidth: 240}
}

// Bind attaches the window flags to fs.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the telemetry panel in pixels (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Validate rejects values the window cannot use.
func (c *Config) Validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud-width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}
