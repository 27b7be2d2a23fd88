package botania

import (
	"strconv"

	"botania-ca/pkg/botania"
)

// Config controls how the botania sim builds its game.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64

	// Layout is a YAML layout path. When set it replaces random seeding and
	// its own settings take precedence over the fields below.
	Layout string

	Dandelifeon     botania.Cell
	MaxMaturity     int
	ValueMultiplier int
	MaxGenerations  int
}

// DefaultConfig returns the standard 25x25 setup.
func DefaultConfig() Config {
	opts := botania.DefaultOptions()
	return Config{
		Width:           opts.MaxWidth,
		Height:          opts.MaxHeight,
		Seed:            1337,
		Density:         0.2,
		Dandelifeon:     opts.Dandelifeon,
		MaxMaturity:     opts.MaxMaturity,
		ValueMultiplier: opts.ValueMultiplier,
		MaxGenerations:  botania.DefaultMaxGenerations,
	}
}

// Options converts the config into game options.
func (c Config) Options() botania.Options {
	return botania.Options{
		MaxWidth:        c.Width,
		MaxHeight:       c.Height,
		Dandelifeon:     c.Dandelifeon,
		MaxMaturity:     c.MaxMaturity,
		ValueMultiplier: c.ValueMultiplier,
	}
}

// FromMap populates a Config from a string map. Invalid values are ignored.
// The dandelifeon defaults to the centre of the field.
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
	c.Dandelifeon = botania.Cell{X: c.Width / 2, Y: c.Height / 2}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = v
	}
	if v, ok := cfg["dandelifeon_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Dandelifeon.X = parsed
		}
	}
	if v, ok := cfg["dandelifeon_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Dandelifeon.Y = parsed
		}
	}
	if v, ok := cfg["max_maturity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxMaturity = parsed
		}
	}
	if v, ok := cfg["value_multiplier"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ValueMultiplier = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}
