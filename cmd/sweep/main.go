package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"botania-ca/internal/app"
	"botania-ca/internal/sims/botania"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 || v > 1 {
			return fmt.Errorf("density %q must be a number in [0, 1]", part)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	count := flag.Int("count", 500, "random seeds to try per density")
	start := flag.Int64("seed", 1, "first seed")
	out := flag.String("out", "", "write the best layout to this YAML file")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	var densities floatList
	flag.Var(&densities, "density", "live density to try, comma separated or repeatable (default 0.2)")
	overrides := app.KVList{}
	flag.Var(overrides, "set", "sim parameter override in key=value form (repeatable)")
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("invalid -count %d", *count)
	}
	if len(densities) == 0 {
		densities = floatList{0.2}
	}
	cfg := botania.FromMap(overrides)
	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *start + int64(i)
	}

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New(len(seeds) * len(densities)).SetWriter(os.Stderr).Start()
	}
	res := botania.Sweep(cfg, seeds, densities, func(botania.Candidate) {
		if bar != nil {
			bar.Increment()
		}
	})
	if bar != nil {
		bar.Finish()
	}

	best := res.Best
	fmt.Printf("Evaluated %d layouts on %dx%d, %d reached the dandelifeon.\n", res.Evaluated, cfg.Width, cfg.Height, res.Halted)
	fmt.Printf("Best: seed %d density %.2f -> score %d at age %d (halted=%v)\n", best.Seed, best.Density, best.Score, best.Age, best.Halted)

	if *out == "" || res.Layout == nil {
		return
	}
	data, err := res.Layout.Marshal()
	if err != nil {
		log.Fatalf("[sweep] marshal layout: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("[sweep] write %s: %v", *out, err)
	}
	log.Printf("[sweep] best layout written to %s", *out)
}
