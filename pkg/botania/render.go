package botania

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Glyphs used by the plain-text grid format.
const (
	GlyphLive      = 'X'
	GlyphPetrified = 'Y'
	GlyphEmpty     = 'O'
	glyphEmptyAlt  = '.'
)

// Render writes f as Height lines of Width glyphs.
func Render(w io.Writer, f *Field) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, f.width+1)
	row[f.width] = '\n'
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			row[x] = f.Glyph(Cell{x, y})
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseField reads a grid written by Render. Blank lines are skipped and '.'
// is accepted as an empty cell.
func ParseField(r io.Reader) (*Field, error) {
	live, petrified := CellSet{}, CellSet{}
	width, y := -1, 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(line), width)
		}
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case GlyphLive:
				live.Add(Cell{x, y})
			case GlyphPetrified:
				petrified.Add(Cell{x, y})
			case GlyphEmpty, glyphEmptyAlt:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, line[x], x, y)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if width < 0 {
		width = 0
	}
	return NewField(width, y, live, petrified), nil
}
