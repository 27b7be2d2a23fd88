package botania

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLayoutOptimal(t *testing.T) {
	l, err := LoadLayout(filepath.Join("testdata", "optimal.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	game, err := l.Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if got := game.Run(l.Generations()); got != 36000 {
		t.Fatalf("score %d, want 36000", got)
	}
	if game.Age() != 100 {
		t.Fatalf("age %d, want 100", game.Age())
	}
}

func TestLoadLayoutGrid(t *testing.T) {
	l, err := LoadLayout(filepath.Join("testdata", "blinker.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	opts := l.Options()
	if opts.Dandelifeon != (Cell{3, 3}) || opts.MaxMaturity != 1 || opts.ValueMultiplier != 10 {
		t.Fatalf("unexpected options %+v", opts)
	}
	game, err := l.Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if game.Initial().Width() != 7 || game.Initial().Height() != 7 {
		t.Fatalf("grid bounds %dx%d", game.Initial().Width(), game.Initial().Height())
	}
	if got := game.Run(l.Generations()); got != 10 {
		t.Fatalf("score %d, want 10", got)
	}
}

func TestParseLayoutRejectsOutOfBounds(t *testing.T) {
	_, err := ParseLayout([]byte("width: 3\nheight: 3\nlive:\n  - [3, 1]\n"))
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	_, err = ParseLayout([]byte("width: 4\nheight: 3\ngrid: |\n  XOO\n  OOO\n  OOO\n"))
	if !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds for mismatched grid, got %v", err)
	}
	if _, err := ParseLayout([]byte("width: 3\nheight: 3\nlive:\n  - [1, 2, 3]\n")); err == nil {
		t.Fatal("expected an error for a three element point")
	}
}

func TestParseLayoutSettings(t *testing.T) {
	for _, body := range []string{
		"width: 3\nheight: 3\nmaxMaturity: -1\n",
		"width: 3\nheight: 3\nvalueMultiplier: -60\n",
		"width: 3\nheight: 3\nmaxGenerations: -5\n",
	} {
		if _, err := ParseLayout([]byte(body)); !errors.Is(err, ErrInvalidSetting) {
			t.Fatalf("expected ErrInvalidSetting for %q, got %v", body, err)
		}
	}

	l, err := ParseLayout([]byte("width: 3\nheight: 3\nmaxMaturity: 0\n"))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if got := l.Options().MaxMaturity; got != DefaultOptions().MaxMaturity {
		t.Fatalf("zero maxMaturity gave %d, want the default", got)
	}
	if l.Generations() != DefaultMaxGenerations {
		t.Fatalf("generations %d", l.Generations())
	}
}

func TestLayoutGameRejectsOutsideDandelifeon(t *testing.T) {
	l, err := ParseLayout([]byte("width: 5\nheight: 5\n"))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if _, err := l.Game(); !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("default dandelifeon (12,12) should not fit 5x5, got %v", err)
	}
}

func TestLayoutFromGameRoundTrip(t *testing.T) {
	game := NewBotania(optimalField())
	data, err := LayoutFromGame(game).Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v\n%s", err, data)
	}
	if len(l.Petrified) != 7 {
		t.Fatalf("petrified list has %d cells, want 7 without the dandelifeon", len(l.Petrified))
	}
	again, err := l.Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if got := again.Run(DefaultMaxGenerations); got != 36000 {
		t.Fatalf("reloaded layout scored %d, want 36000", got)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
