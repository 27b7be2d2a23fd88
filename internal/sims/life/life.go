// Package life runs the plain petrification-aware rules as a core.Sim,
// without a dandelifeon or scoring.
package life

import (
	"strconv"

	"botania-ca/internal/core"
	"botania-ca/pkg/botania"
	pkgcore "botania-ca/pkg/core"
)

// Config holds parameters for the plain game.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Density float64
	// Layout is an optional YAML layout; only its cells are used.
	Layout string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 42, Density: 0.3}
}

// FromMap populates a Config from a string map.
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
	return c
}

var (
	_ core.Sim                  = (*Life)(nil)
	_ core.IntParameterSetter   = (*Life)(nil)
	_ core.FloatParameterSetter = (*Life)(nil)
)

// Life wraps a plain botania.Game.
type Life struct {
	cfg  Config
	game *botania.Game
	grid *core.ByteGrid
	err  error
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	c := DefaultConfig()
	c.Width, c.Height = w, h
	return NewWithConfig(c)
}

// NewWithConfig returns a Life simulation seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Life {
	l := &Life{cfg: cfg}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the current grid values: 1 live, 2 petrified.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Game exposes the underlying game.
func (l *Life) Game() *botania.Game { return l.game }

// Err reports the layout error from the last Reset, if any.
func (l *Life) Err() error { return l.err }

// Reset rebuilds the board from the layout, or randomly using the seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.err = nil
	f, err := l.initialField(seed)
	if err != nil {
		l.err = err
		f = l.scatter(seed)
	}
	l.game = botania.NewGame(f, f.Width(), f.Height())
	if l.grid == nil || l.grid.W != f.Width() || l.grid.H != f.Height() {
		l.grid = core.NewByteGrid(f.Width(), f.Height())
	}
	l.paint()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.game.Run(1)
	l.paint()
}

// SetIntParameter updates the grid size or seed. Changes apply on the next
// Reset.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if value <= 0 {
			return false
		}
		l.cfg.Width = value
	case "h":
		if value <= 0 {
			return false
		}
		l.cfg.Height = value
	case "seed":
		l.cfg.Seed = int64(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates the seeding density, accepted in [0, 1].
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	l.cfg.Density = value
	return true
}

func (l *Life) initialField(seed int64) (*botania.Field, error) {
	if l.cfg.Layout == "" {
		return l.scatter(seed), nil
	}
	layout, err := botania.LoadLayout(l.cfg.Layout)
	if err != nil {
		return nil, err
	}
	return layout.Field()
}

func (l *Life) scatter(seed int64) *botania.Field {
	live := botania.CellSet{}
	pkgcore.NewRNG(seed).Scatter(l.cfg.Width, l.cfg.Height, l.cfg.Density, func(x, y int) {
		live.Add(botania.Cell{X: x, Y: y})
	})
	return botania.NewField(l.cfg.Width, l.cfg.Height, live, nil)
}

func (l *Life) paint() {
	l.grid.Clear()
	f := l.game.Latest()
	for c := range f.Petrified() {
		l.grid.Set(c.X, c.Y, 2)
	}
	for c := range f.Live() {
		l.grid.Set(c.X, c.Y, 1)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
