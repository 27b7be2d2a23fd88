package botania

// DefaultMaxGenerations is the generation limit used when none is configured.
const DefaultMaxGenerations = 200

// Options configures a BotaniaGame.
type Options struct {
	MaxWidth        int
	MaxHeight       int
	Dandelifeon     Cell
	MaxMaturity     int
	ValueMultiplier int
}

// DefaultOptions returns the standard 25x25 setup with the dandelifeon at its
// centre.
func DefaultOptions() Options {
	return Options{
		MaxWidth:        25,
		MaxHeight:       25,
		Dandelifeon:     Cell{12, 12},
		MaxMaturity:     100,
		ValueMultiplier: 60,
	}
}

// BotaniaGame is a Game that halts as soon as any cell around the dandelifeon
// comes alive, scoring by the number of such cells and the game's age.
type BotaniaGame struct {
	game *Game

	dandelifeon     Cell
	collection      CellSet
	maxMaturity     int
	valueMultiplier int

	score int
}

// NewBotania returns a game using DefaultOptions.
func NewBotania(initial *Field) *BotaniaGame {
	return NewBotaniaWithOptions(initial, DefaultOptions())
}

// NewBotaniaWithOptions petrifies the dandelifeon in initial and fixes the
// collection cells to its neighbors. The game takes ownership of initial: the
// caller must not modify it afterwards.
func NewBotaniaWithOptions(initial *Field, opts Options) *BotaniaGame {
	initial.petrified.Add(opts.Dandelifeon)
	return &BotaniaGame{
		game:            NewGame(initial, opts.MaxWidth, opts.MaxHeight),
		dandelifeon:     opts.Dandelifeon,
		collection:      initial.NeighborsOf(opts.Dandelifeon),
		maxMaturity:     opts.MaxMaturity,
		valueMultiplier: opts.ValueMultiplier,
	}
}

// Dandelifeon returns the cell the collection region surrounds.
func (b *BotaniaGame) Dandelifeon() Cell { return b.dandelifeon }

// CollectionCells returns a copy of the halting region.
func (b *BotaniaGame) CollectionCells() CellSet { return b.collection.Clone() }

// MaxMaturity returns the age cap used when scoring.
func (b *BotaniaGame) MaxMaturity() int { return b.maxMaturity }

// ValueMultiplier returns the scoring scale factor.
func (b *BotaniaGame) ValueMultiplier() int { return b.valueMultiplier }

// Score returns the score recorded when the game halted, or 0.
func (b *BotaniaGame) Score() int { return b.score }

// Age returns the number of generations computed so far.
func (b *BotaniaGame) Age() int { return b.game.Age() }

// Latest returns the current generation.
func (b *BotaniaGame) Latest() *Field { return b.game.Latest() }

// State returns the lifecycle state.
func (b *BotaniaGame) State() State { return b.game.state }

// Initial returns the field the game was created with, dandelifeon included.
func (b *BotaniaGame) Initial() *Field { return b.game.Initial() }

// Progression returns every generation computed so far, oldest first.
func (b *BotaniaGame) Progression() []*Field { return b.game.Progression() }

// Run advances up to maxGenerations times and returns the score of the first
// generation in which a collection cell is live, or 0 if that never happens.
// Once halted the game is finished and Run keeps returning the same score.
func (b *BotaniaGame) Run(maxGenerations int) int {
	if b.game.state == StateHalted {
		return b.score
	}
	b.game.seed()
	for i := 0; i < maxGenerations; i++ {
		if !b.game.step() {
			continue
		}
		halting := b.collection.Intersect(b.game.latest.live)
		if len(halting) == 0 {
			continue
		}
		b.score = b.scoreFor(len(halting))
		b.game.state = StateHalted
		return b.score
	}
	b.game.state = StateExhausted
	return 0
}

func (b *BotaniaGame) scoreFor(halting int) int {
	age := b.game.Age()
	if age >= b.maxMaturity {
		age = b.maxMaturity
	}
	return halting * age * b.valueMultiplier
}
