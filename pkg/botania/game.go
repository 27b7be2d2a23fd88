package botania

// Simulation is the capability shared by the plain and Botania games. Each
// instance has a single owner and must not be run from several goroutines.
type Simulation interface {
	// Run advances by at most maxGenerations and returns the score.
	Run(maxGenerations int) int
	// Age is the number of generations computed so far.
	Age() int
	// Latest is the most recent generation, or the initial field before the
	// first Run.
	Latest() *Field
	State() State
}

// State tracks where a simulation is in its lifecycle.
type State uint8

const (
	StateSeeding State = iota
	StateAdvancing
	StateHalted
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateSeeding:
		return "seeding"
	case StateAdvancing:
		return "advancing"
	case StateHalted:
		return "halted"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Game runs the unmodified birth/survival rules with no halting condition.
type Game struct {
	initial             *Field
	maxWidth, maxHeight int

	latest      *Field
	progression []*Field
	state       State
}

var (
	_ Simulation = (*Game)(nil)
	_ Simulation = (*BotaniaGame)(nil)
)

// NewGame wraps initial. maxWidth and maxHeight are informational.
func NewGame(initial *Field, maxWidth, maxHeight int) *Game {
	return &Game{initial: initial, maxWidth: maxWidth, maxHeight: maxHeight}
}

// Initial returns the field the game was created with.
func (g *Game) Initial() *Field { return g.initial }

// MaxWidth returns the configured width bound.
func (g *Game) MaxWidth() int { return g.maxWidth }

// MaxHeight returns the configured height bound.
func (g *Game) MaxHeight() int { return g.maxHeight }

// Age returns the number of generations computed so far.
func (g *Game) Age() int { return len(g.progression) }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Latest returns the current generation.
func (g *Game) Latest() *Field {
	if g.latest == nil {
		return g.initial
	}
	return g.latest
}

// Progression returns every generation computed so far, oldest first. The
// initial field is not included.
func (g *Game) Progression() []*Field {
	return append([]*Field(nil), g.progression...)
}

// Run advances up to maxGenerations times. A plain game never scores, so the
// result is always 0.
func (g *Game) Run(maxGenerations int) int {
	g.seed()
	for i := 0; i < maxGenerations; i++ {
		g.step()
	}
	g.state = StateExhausted
	return 0
}

func (g *Game) seed() {
	if g.latest == nil {
		g.latest = g.initial
	}
	g.state = StateAdvancing
}

// step advances one generation. An empty field is a fixed point, so it is
// left as is and the age does not grow; the caller keeps looping.
func (g *Game) step() bool {
	if g.latest.LiveCount() == 0 {
		return false
	}
	g.latest = g.latest.NextGeneration()
	g.progression = append(g.progression, g.latest)
	return true
}
