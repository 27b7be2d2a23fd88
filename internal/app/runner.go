package app

import (
	"bufio"
	"fmt"
	"io"

	"botania-ca/internal/core"
	"botania-ca/pkg/botania"
)

// Result summarises a Runner pass.
type Result struct {
	Steps  int
	Age    int
	Halted bool
	Score  int
}

// Runner advances a core.Sim and prints frames as plain text.
type Runner struct {
	Sim   core.Sim
	Out   io.Writer
	Steps int
	Show  string
	TPS   int
}

// NewRunner builds a Runner from the command-line configuration.
func NewRunner(sim core.Sim, out io.Writer, cfg *Config) *Runner {
	return &Runner{Sim: sim, Out: out, Steps: cfg.Steps, Show: cfg.Show, TPS: cfg.TPS}
}

// Run steps the sim up to Steps times, stopping early if it halts.
func (r *Runner) Run() (Result, error) {
	scorer, _ := r.Sim.(core.Scorer)
	var pace *core.FixedStep
	if r.Show == ShowEvery && r.TPS > 0 {
		pace = core.NewFixedStep(r.TPS)
	}

	var res Result
	if r.Show == ShowEvery {
		if err := r.frame(0); err != nil {
			return res, err
		}
	}
	for res.Steps < r.Steps {
		if scorer != nil && scorer.Halted() {
			break
		}
		if pace != nil {
			pace.Wait()
		}
		r.Sim.Step()
		res.Steps++
		if r.Show == ShowEvery {
			if err := r.frame(res.Steps); err != nil {
				return res, err
			}
		}
	}
	if r.Show == ShowFinal {
		if err := r.frame(res.Steps); err != nil {
			return res, err
		}
	}
	if scorer != nil {
		res.Age = scorer.Age()
		res.Halted = scorer.Halted()
		res.Score = scorer.Score()
	} else {
		res.Age = res.Steps
	}
	return res, nil
}

func (r *Runner) frame(step int) error {
	bw := bufio.NewWriter(r.Out)
	fmt.Fprintf(bw, "-- %s step %d\n", r.Sim.Name(), step)
	if err := WriteCells(bw, r.Sim.Size(), r.Sim.Cells()); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCells prints a raster using the field glyphs: 0 empty, 1 live and
// anything higher as petrified.
func WriteCells(w io.Writer, size core.Size, cells []uint8) error {
	row := make([]byte, size.W+1)
	row[size.W] = '\n'
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			switch v := cells[y*size.W+x]; {
			case v == 0:
				row[x] = botania.GlyphEmpty
			case v == 1:
				row[x] = botania.GlyphLive
			default:
				row[x] = botania.GlyphPetrified
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
