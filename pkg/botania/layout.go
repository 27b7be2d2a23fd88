package botania

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is the on-disk description of a Botania setup. Cells may be given as
// coordinate lists, as a text grid in the Render format, or both.
type Layout struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Grid      string  `yaml:"grid,omitempty"`
	Live      []Point `yaml:"live,omitempty"`
	Petrified []Point `yaml:"petrified,omitempty"`

	// Optional game settings. Zero or missing values fall back to
	// DefaultOptions and DefaultMaxGenerations; negative values are rejected.
	Dandelifeon     *Point `yaml:"dandelifeon,omitempty"`
	MaxMaturity     int    `yaml:"maxMaturity,omitempty"`
	ValueMultiplier int    `yaml:"valueMultiplier,omitempty"`
	MaxGenerations  int    `yaml:"maxGenerations,omitempty"`
}

// Point is a cell written as a two element flow sequence, e.g. [12, 3].
type Point Cell

// UnmarshalYAML accepts either [x, y] or {x: .., y: ..}.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: point needs 2 coordinates, got %d", node.Line, len(node.Content))
		}
		x, err := strconv.Atoi(node.Content[0].Value)
		if err != nil {
			return fmt.Errorf("line %d: bad x coordinate: %w", node.Line, err)
		}
		y, err := strconv.Atoi(node.Content[1].Value)
		if err != nil {
			return fmt.Errorf("line %d: bad y coordinate: %w", node.Line, err)
		}
		*p = Point{X: x, Y: y}
		return nil
	case yaml.MappingNode:
		var raw struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*p = Point{X: raw.X, Y: raw.Y}
		return nil
	default:
		return fmt.Errorf("line %d: point must be a sequence or mapping", node.Line)
	}
}

// MarshalYAML writes the point in flow style.
func (p Point) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.X)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Y)},
		},
	}, nil
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes a YAML layout and checks that the resulting field is
// valid.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if _, err := l.Field(); err != nil {
		return nil, err
	}
	if err := l.checkSettings(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) checkSettings() error {
	settings := []struct {
		key   string
		value int
	}{
		{"maxMaturity", l.MaxMaturity},
		{"valueMultiplier", l.ValueMultiplier},
		{"maxGenerations", l.MaxGenerations},
	}
	for _, s := range settings {
		if s.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrInvalidSetting, s.key, s.value)
		}
	}
	return nil
}

// Marshal encodes the layout as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// LayoutFromGame captures the initial state and options of g. The dandelifeon
// is not repeated in the petrified list.
func LayoutFromGame(g *BotaniaGame) *Layout {
	f := g.Initial()
	d := Point(g.Dandelifeon())
	l := &Layout{
		Width:           f.Width(),
		Height:          f.Height(),
		Dandelifeon:     &d,
		MaxMaturity:     g.MaxMaturity(),
		ValueMultiplier: g.ValueMultiplier(),
	}
	for _, c := range f.live.Sorted() {
		l.Live = append(l.Live, Point(c))
	}
	for _, c := range f.petrified.Sorted() {
		if c == g.Dandelifeon() {
			continue
		}
		l.Petrified = append(l.Petrified, Point(c))
	}
	return l
}

// Field builds a fresh, validated field from the layout. When a grid is
// present its size wins over Width and Height if those are unset.
func (l *Layout) Field() (*Field, error) {
	live, petrified := CellSet{}, CellSet{}
	w, h := l.Width, l.Height
	if strings.TrimSpace(l.Grid) != "" {
		g, err := ParseField(strings.NewReader(l.Grid))
		if err != nil {
			return nil, err
		}
		if w == 0 && h == 0 {
			w, h = g.Width(), g.Height()
		} else if g.Width() != w || g.Height() != h {
			return nil, fmt.Errorf("%w: grid is %dx%d, layout says %dx%d", ErrInvalidBounds, g.Width(), g.Height(), w, h)
		}
		live, petrified = g.live, g.petrified
	}
	for _, p := range l.Live {
		live.Add(Cell(p))
	}
	for _, p := range l.Petrified {
		petrified.Add(Cell(p))
	}
	f := NewField(w, h, live, petrified)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Options merges the layout settings over DefaultOptions. The width and
// height bounds follow the field.
func (l *Layout) Options() Options {
	opts := DefaultOptions()
	opts.MaxWidth = l.Width
	opts.MaxHeight = l.Height
	if l.Dandelifeon != nil {
		opts.Dandelifeon = Cell(*l.Dandelifeon)
	}
	if l.MaxMaturity > 0 {
		opts.MaxMaturity = l.MaxMaturity
	}
	if l.ValueMultiplier > 0 {
		opts.ValueMultiplier = l.ValueMultiplier
	}
	return opts
}

// Generations returns the configured generation limit or
// DefaultMaxGenerations.
func (l *Layout) Generations() int {
	if l.MaxGenerations > 0 {
		return l.MaxGenerations
	}
	return DefaultMaxGenerations
}

// Game builds a BotaniaGame from the layout.
func (l *Layout) Game() (*BotaniaGame, error) {
	f, err := l.Field()
	if err != nil {
		return nil, err
	}
	opts := l.Options()
	opts.MaxWidth, opts.MaxHeight = f.Width(), f.Height()
	if !f.Contains(opts.Dandelifeon) {
		return nil, fmt.Errorf("%w: dandelifeon %v in %dx%d", ErrInvalidCoordinate, opts.Dandelifeon, f.Width(), f.Height())
	}
	return NewBotaniaWithOptions(f, opts), nil
}
