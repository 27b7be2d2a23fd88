package botania

import (
	"testing"

	"botania-ca/pkg/botania"
)

func TestSweepKeepsBestAndReplays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Dandelifeon = botania.Cell{X: 8, Y: 8}
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	densities := []float64{0.15, 0.3}

	calls := 0
	res := Sweep(cfg, seeds, densities, func(Candidate) { calls++ })
	if calls != len(seeds)*len(densities) || res.Evaluated != calls {
		t.Fatalf("evaluated %d candidates with %d callbacks", res.Evaluated, calls)
	}
	if res.Layout == nil {
		t.Fatal("sweep returned no layout")
	}

	game, err := res.Layout.Game()
	if err != nil {
		t.Fatalf("best layout invalid: %v", err)
	}
	if got := game.Run(res.Layout.Generations()); got != res.Best.Score {
		t.Fatalf("replayed layout scored %d, sweep reported %d", got, res.Best.Score)
	}
	if res.Best.Score > 0 && !res.Best.Halted {
		t.Fatal("a positive score must come from a halted game")
	}
}

func TestSweepEmpty(t *testing.T) {
	res := Sweep(DefaultConfig(), nil, []float64{0.2}, nil)
	if res.Evaluated != 0 || res.Layout != nil {
		t.Fatalf("unexpected result %+v", res)
	}
}
