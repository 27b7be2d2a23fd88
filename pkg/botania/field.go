package botania

import (
	"fmt"
	"strings"
)

// Field is one immutable generation of a simulation: the live cells, the
// petrified cells and the grid bounds. Neighbors never wrap around the edges.
//
// The petrified set is shared between a field and every generation derived
// from it, so it must not be modified once the field has been handed to a
// game.
type Field struct {
	width, height int
	live          CellSet
	petrified     CellSet
}

// NewField builds a field and takes ownership of both sets. Nil sets are
// treated as empty. No bounds checking is done here; see Validate.
func NewField(width, height int, live, petrified CellSet) *Field {
	if live == nil {
		live = CellSet{}
	}
	if petrified == nil {
		petrified = CellSet{}
	}
	return &Field{width: width, height: height, live: live, petrified: petrified}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Live returns a copy of the live cells.
func (f *Field) Live() CellSet { return f.live.Clone() }

// Petrified returns a copy of the petrified cells.
func (f *Field) Petrified() CellSet { return f.petrified.Clone() }

// IsLive reports whether c is alive in this generation.
func (f *Field) IsLive(c Cell) bool { return f.live.Has(c) }

// IsPetrified reports whether c can never be born.
func (f *Field) IsPetrified(c Cell) bool { return f.petrified.Has(c) }

// LiveCount returns the number of live cells.
func (f *Field) LiveCount() int { return len(f.live) }

// Contains reports whether c lies inside the field bounds.
func (f *Field) Contains(c Cell) bool {
	return c.X >= 0 && c.X < f.width && c.Y >= 0 && c.Y < f.height
}

// Validate checks the bounds and that every live and petrified cell lies
// inside them.
func (f *Field) Validate() error {
	if f.width < 0 || f.height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, f.width, f.height)
	}
	for _, c := range f.live.Sorted() {
		if !f.Contains(c) {
			return fmt.Errorf("%w: live cell %v in %dx%d", ErrInvalidCoordinate, c, f.width, f.height)
		}
	}
	for _, c := range f.petrified.Sorted() {
		if !f.Contains(c) {
			return fmt.Errorf("%w: petrified cell %v in %dx%d", ErrInvalidCoordinate, c, f.width, f.height)
		}
	}
	return nil
}

// NeighborsOf returns the Moore neighborhood of c clipped to the field.
func (f *Field) NeighborsOf(c Cell) CellSet {
	n := make(CellSet, 8)
	left := c.X-1 >= 0
	right := c.X+1 < f.width
	up := c.Y-1 >= 0
	down := c.Y+1 < f.height

	if left {
		n.Add(Cell{c.X - 1, c.Y})
	}
	if left && up {
		n.Add(Cell{c.X - 1, c.Y - 1})
	}
	if left && down {
		n.Add(Cell{c.X - 1, c.Y + 1})
	}
	if up {
		n.Add(Cell{c.X, c.Y - 1})
	}
	if up && right {
		n.Add(Cell{c.X + 1, c.Y - 1})
	}
	if down {
		n.Add(Cell{c.X, c.Y + 1})
	}
	if right {
		n.Add(Cell{c.X + 1, c.Y})
	}
	if down && right {
		n.Add(Cell{c.X + 1, c.Y + 1})
	}
	return n
}

// NextGeneration applies the birth/survival rules and returns the resulting
// field. Only live cells and their neighbors are visited. A petrified cell is
// never born, whatever its neighbor count.
func (f *Field) NextGeneration() *Field {
	counts := make(map[Cell]int, len(f.live)*3)
	for c := range f.live {
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
		for nb := range f.NeighborsOf(c) {
			counts[nb]++
		}
	}

	next := f.live.Clone()
	for c, n := range counts {
		switch {
		case n < 2 || n > 3:
			next.Remove(c)
		case n == 3:
			if !f.petrified.Has(c) {
				next.Add(c)
			}
		}
	}
	return &Field{width: f.width, height: f.height, live: next, petrified: f.petrified}
}

// Glyph returns the text character for c: 'X' live, 'Y' petrified, 'O' empty.
func (f *Field) Glyph(c Cell) byte {
	switch {
	case f.live.Has(c):
		return GlyphLive
	case f.petrified.Has(c):
		return GlyphPetrified
	default:
		return GlyphEmpty
	}
}

func (f *Field) String() string {
	var b strings.Builder
	_ = Render(&b, f)
	return b.String()
}
