package mapgen

import (
	"flag"
	"image/color"
	"log"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground is the colour painted below every layer.
const DefaultBackground = "#f0f0f0"

// Config controls the dimensions and inputs of a generation.
type Config struct {
	Width  int
	Height int

	Points int
	Plates int

	Seed int64

	// Background is a #rrggbb colour.
	Background string

	// Logger receives a summary of every generation. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Points:     1000,
		Plates:     8,
		Seed:       42,
		Background: DefaultBackground,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["points"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Points = parsed
		}
	}
	if v, ok := cfg["plates"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Plates = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["bg"]; ok {
		if _, err := colorful.Hex(v); err == nil {
			c.Background = v
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "map width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "map height in pixels")
	fs.IntVar(&c.Points, "points", c.Points, "number of points in the field")
	fs.IntVar(&c.Plates, "plates", c.Plates, "number of tectonic plates")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
	fs.StringVar(&c.Background, "bg", c.Background, "background colour (#rrggbb)")
}

// BackgroundColor parses Background, falling back to DefaultBackground.
func (c Config) BackgroundColor() color.Color {
	if col, err := colorful.Hex(c.Background); err == nil {
		return col
	}
	col, _ := colorful.Hex(DefaultBackground)
	return col
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
