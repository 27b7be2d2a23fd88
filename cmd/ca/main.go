package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"botania-ca/internal/app"
	"botania-ca/internal/core"
	_ "botania-ca/internal/sims/botania"
	_ "botania-ca/internal/sims/life"
)

type errReporter interface {
	Err() error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := core.Lookup(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	if rejected := core.Apply(sim, cfg.Set); len(rejected) > 0 {
		log.Fatalf("unknown or invalid -set keys for %s: %v", sim.Name(), rejected)
	}
	sim.Reset(cfg.Seed)
	if r, ok := sim.(errReporter); ok && r.Err() != nil {
		log.Fatalf("reset %s: %v", sim.Name(), r.Err())
	}

	if cfg.Params {
		provider, ok := sim.(core.ParameterProvider)
		if !ok {
			log.Fatalf("sim %q exposes no parameters", sim.Name())
		}
		if err := provider.Parameters().WriteText(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	res, err := app.NewRunner(sim, os.Stdout, cfg).Run()
	if err != nil {
		log.Fatal(err)
	}

	if _, ok := sim.(core.Scorer); ok {
		state := "exhausted"
		if res.Halted {
			state = "halted"
		}
		fmt.Printf("%s: %s after %d generations, score %d\n", sim.Name(), state, res.Age, res.Score)
		return
	}
	fmt.Printf("%s: advanced %d generations\n", sim.Name(), res.Steps)
}
