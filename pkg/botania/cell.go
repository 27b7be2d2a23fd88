package botania

import (
	"fmt"
	"slices"
)

// Cell is a grid coordinate. Cells compare by value and can be used as map keys.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet returns a set holding the provided cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s CellSet) Add(c Cell) { s[c] = struct{}{} }

// Remove deletes c from the set if present.
func (s CellSet) Remove(c Cell) { delete(s, c) }

// Has reports whether c is a member.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Intersect returns the cells present in both s and other.
func (s CellSet) Intersect(other CellSet) CellSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := CellSet{}
	for c := range small {
		if large.Has(c) {
			out.Add(c)
		}
	}
	return out
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
