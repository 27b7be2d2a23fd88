package botania

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderGlyphs(t *testing.T) {
	f := NewField(3, 2, NewCellSet(Cell{0, 0}), NewCellSet(Cell{2, 1}))
	var b strings.Builder
	if err := Render(&b, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "XOO\nOOY\n"
	if b.String() != want {
		t.Fatalf("Render produced %q, want %q", b.String(), want)
	}
	if f.String() != want {
		t.Fatalf("String produced %q, want %q", f.String(), want)
	}
}

func TestParseFieldRoundTrip(t *testing.T) {
	src := optimalField()
	parsed, err := ParseField(strings.NewReader(src.String()))
	if err != nil {
		t.Fatalf("ParseField: %v", err)
	}
	if parsed.Width() != 25 || parsed.Height() != 25 {
		t.Fatalf("parsed bounds %dx%d", parsed.Width(), parsed.Height())
	}
	if !parsed.Live().Equal(src.Live()) || !parsed.Petrified().Equal(src.Petrified()) {
		t.Fatal("parsed field differs from the rendered one")
	}
}

func TestParseFieldLenient(t *testing.T) {
	f, err := ParseField(strings.NewReader("\n  X.O\n\n  .YX  \n"))
	if err != nil {
		t.Fatalf("ParseField: %v", err)
	}
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("bounds %dx%d, want 3x2", f.Width(), f.Height())
	}
	if !f.Live().Equal(NewCellSet(Cell{0, 0}, Cell{2, 1})) {
		t.Fatalf("live %v", f.Live().Sorted())
	}
	if !f.Petrified().Equal(NewCellSet(Cell{1, 1})) {
		t.Fatalf("petrified %v", f.Petrified().Sorted())
	}
}

func TestParseFieldErrors(t *testing.T) {
	if _, err := ParseField(strings.NewReader("XO\nXOO\n")); !errors.Is(err, ErrRaggedRows) {
		t.Fatalf("expected ErrRaggedRows, got %v", err)
	}
	if _, err := ParseField(strings.NewReader("XZ\n")); !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("expected ErrUnknownGlyph, got %v", err)
	}
	f, err := ParseField(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty input: %v", err)
	}
	if f.Width() != 0 || f.Height() != 0 {
		t.Fatalf("empty input gave %dx%d", f.Width(), f.Height())
	}
}
