package botania

import "botania-ca/pkg/botania"

// Candidate is one random layout evaluated by Sweep.
type Candidate struct {
	Seed    int64
	Density float64
	Score   int
	Age     int
	Halted  bool
}

// SweepResult holds the best candidate and the layout that produced it.
type SweepResult struct {
	Best      Candidate
	Layout    *botania.Layout
	Evaluated int
	Halted    int
}

// Sweep scatters a field for every seed/density pair, runs it to completion
// and keeps the highest score. Ties go to the earlier candidate. progress, if
// not nil, is called after each evaluation.
func Sweep(cfg Config, seeds []int64, densities []float64, progress func(Candidate)) SweepResult {
	var res SweepResult
	for _, density := range densities {
		for _, seed := range seeds {
			c := cfg
			c.Layout = ""
			c.Density = density
			c.Seed = seed
			sim := NewWithConfig(c)
			score := sim.Run()
			cand := Candidate{Seed: seed, Density: density, Score: score, Age: sim.Age(), Halted: sim.Halted()}

			res.Evaluated++
			if cand.Halted {
				res.Halted++
			}
			if res.Layout == nil || cand.Score > res.Best.Score {
				res.Best = cand
				res.Layout = botania.LayoutFromGame(sim.Game())
				res.Layout.MaxGenerations = c.MaxGenerations
			}
			if progress != nil {
				progress(cand)
			}
		}
	}
	return res
}
