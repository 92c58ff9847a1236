package app

import (
	"flag"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Map   mapgen.Config
	Scale float64
	TPS   int
	HUD   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Map: mapgen.DefaultConfig(), Scale: 1, TPS: 60, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.Map.Bind(fs)
	fs.Float64Var(&c.Scale, "scale", c.Scale, "map scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
}
