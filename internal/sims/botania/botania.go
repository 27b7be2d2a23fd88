// Package botania exposes the Botania game as a registered core.Sim.
package botania

import (
	"errors"
	"fmt"

	"botania-ca/internal/core"
	"botania-ca/pkg/botania"
	pkgcore "botania-ca/pkg/core"
)

// Raster values written to Cells.
const (
	CellEmpty uint8 = iota
	CellLive
	CellPetrified
	CellDandelifeon
)

var (
	_ core.Sim                  = (*Sim)(nil)
	_ core.Scorer               = (*Sim)(nil)
	_ core.ParameterProvider    = (*Sim)(nil)
	_ core.IntParameterSetter   = (*Sim)(nil)
	_ core.FloatParameterSetter = (*Sim)(nil)
)

// Sim drives a BotaniaGame one generation per Step.
type Sim struct {
	cfg  Config
	game *botania.BotaniaGame
	grid *core.ByteGrid
	err  error
}

// New returns a Sim with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Dandelifeon = botania.Cell{X: w / 2, Y: h / 2}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Sim seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "botania" }

// Size reports the grid dimensions of the current game.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the raster of the latest generation.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Game exposes the underlying game.
func (s *Sim) Game() *botania.BotaniaGame { return s.game }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Err reports what went wrong in the last Reset, if anything. A failed layout
// leaves the sim on a randomly seeded field.
func (s *Sim) Err() error { return s.err }

// Halted reports whether the collection region has been reached.
func (s *Sim) Halted() bool { return s.game.State() == botania.StateHalted }

// Score returns the halting score, or 0 while the game is running.
func (s *Sim) Score() int { return s.game.Score() }

// Age returns the number of generations computed.
func (s *Sim) Age() int { return s.game.Age() }

// Reset rebuilds the game. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.err = nil
	if s.cfg.Layout != "" {
		game, err := s.fromLayout()
		if err == nil {
			s.install(game)
			return
		}
		s.err = err
	}
	s.install(s.scatter(effective))
}

// Step advances one generation. It does nothing once the game has halted.
func (s *Sim) Step() {
	if s.Halted() {
		return
	}
	s.game.Run(1)
	s.paint()
}

// Run advances until the game halts or the configured generation limit is
// spent, and returns the score.
func (s *Sim) Run() int {
	score := s.game.Run(s.cfg.MaxGenerations)
	s.paint()
	return score
}

func (s *Sim) fromLayout() (*botania.BotaniaGame, error) {
	l, err := botania.LoadLayout(s.cfg.Layout)
	if err != nil {
		return nil, err
	}
	game, err := l.Game()
	if err != nil {
		return nil, err
	}
	s.cfg.Width, s.cfg.Height = game.Initial().Width(), game.Initial().Height()
	s.cfg.Dandelifeon = game.Dandelifeon()
	s.cfg.MaxMaturity = game.MaxMaturity()
	s.cfg.ValueMultiplier = game.ValueMultiplier()
	s.cfg.MaxGenerations = l.Generations()
	return game, nil
}

// scatter seeds live cells at random, keeping the dandelifeon and its
// collection region clear. A dandelifeon outside the field is reported
// through Err and moved to the centre.
func (s *Sim) scatter(seed int64) *botania.BotaniaGame {
	bounds := botania.NewField(s.cfg.Width, s.cfg.Height, nil, nil)
	if !bounds.Contains(s.cfg.Dandelifeon) {
		s.err = errors.Join(s.err, fmt.Errorf("%w: dandelifeon %v in %dx%d",
			botania.ErrInvalidCoordinate, s.cfg.Dandelifeon, s.cfg.Width, s.cfg.Height))
		s.cfg.Dandelifeon = botania.Cell{X: s.cfg.Width / 2, Y: s.cfg.Height / 2}
	}
	reserved := bounds.NeighborsOf(s.cfg.Dandelifeon)
	reserved.Add(s.cfg.Dandelifeon)

	live := botania.CellSet{}
	pkgcore.NewRNG(seed).Scatter(s.cfg.Width, s.cfg.Height, s.cfg.Density, func(x, y int) {
		c := botania.Cell{X: x, Y: y}
		if !reserved.Has(c) {
			live.Add(c)
		}
	})
	return botania.NewBotaniaWithOptions(botania.NewField(s.cfg.Width, s.cfg.Height, live, nil), s.cfg.Options())
}

func (s *Sim) install(game *botania.BotaniaGame) {
	s.game = game
	f := game.Initial()
	if s.grid == nil || s.grid.W != f.Width() || s.grid.H != f.Height() {
		s.grid = core.NewByteGrid(f.Width(), f.Height())
	}
	s.paint()
}

func (s *Sim) paint() {
	Rasterize(s.grid, s.game.Latest(), s.game.Dandelifeon())
}

// Rasterize writes f into grid using the Cell* values. The dandelifeon is
// drawn over the petrified layer.
func Rasterize(grid *core.ByteGrid, f *botania.Field, dandelifeon botania.Cell) {
	grid.Clear()
	for c := range f.Petrified() {
		grid.Set(c.X, c.Y, CellPetrified)
	}
	for c := range f.Live() {
		grid.Set(c.X, c.Y, CellLive)
	}
	if f.IsPetrified(dandelifeon) {
		grid.Set(dandelifeon.X, dandelifeon.Y, CellDandelifeon)
	}
}

func init() {
	core.Register("botania", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
