package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"botania-ca/internal/core"
	_ "botania-ca/internal/sims/botania"
	_ "botania-ca/internal/sims/life"
)

const optimalLayout = `width: 25
height: 25
live: [[11, 2], [12, 2], [13, 2], [12, 3], [15, 3], [15, 4]]
petrified: [[17, 1], [17, 4], [9, 5], [15, 5], [7, 10], [12, 10], [17, 10]]
`

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "life", "-steps", "12", "-set", "w=10", "-set", "density=0.1", "-layout", "x.yaml", "-show", "every"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "life" || cfg.Steps != 12 || cfg.Show != ShowEvery {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Set["w"] != "10" || cfg.Set["density"] != "0.1" {
		t.Fatalf("overrides %v", cfg.Set)
	}
	sc := cfg.SimConfig()
	if len(sc) != 1 || sc["layout"] != "x.yaml" {
		t.Fatalf("sim config %v", sc)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected an error for a malformed -set")
	}
	cfg.Show = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unknown -show mode")
	}
}

func TestRunnerHaltsBotania(t *testing.T) {
	path := filepath.Join(t.TempDir(), "optimal.yaml")
	if err := os.WriteFile(path, []byte(optimalLayout), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sim, err := core.Lookup("botania", map[string]string{"layout": path})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	var out strings.Builder
	r := &Runner{Sim: sim, Out: &out, Steps: 500, Show: ShowFinal}
	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Halted || res.Score != 36000 || res.Age != 100 || res.Steps != 100 {
		t.Fatalf("unexpected result %+v", res)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 26 {
		t.Fatalf("final frame has %d lines, want header + 25 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "-- botania step 100") {
		t.Fatalf("header %q", lines[0])
	}
}

func TestRunnerEveryFrame(t *testing.T) {
	sim, err := core.Lookup("life", map[string]string{"w": "4", "h": "3", "seed": "5"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	var out strings.Builder
	res, err := NewRunner(sim, &out, &Config{Steps: 3, Show: ShowEvery}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Steps != 3 || res.Halted {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := strings.Count(out.String(), "-- life step"); got != 4 {
		t.Fatalf("printed %d frames, want 4", got)
	}
}

func TestWriteCells(t *testing.T) {
	var b strings.Builder
	if err := WriteCells(&b, core.Size{W: 3, H: 2}, []uint8{0, 1, 2, 3, 0, 1}); err != nil {
		t.Fatalf("WriteCells: %v", err)
	}
	if b.String() != "OXY\nYOX\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestOverridesThroughSetters(t *testing.T) {
	sim, err := core.Lookup("life", nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	rejected := core.Apply(sim, map[string]string{"w": "6", "h": "4", "density": "0.5", "layout": "x.yaml"})
	if len(rejected) != 1 || rejected[0] != "layout" {
		t.Fatalf("rejected %v, want [layout]", rejected)
	}
	sim.Reset(3)
	if sim.Size() != (core.Size{W: 6, H: 4}) {
		t.Fatalf("size %+v after overrides, want 6x4", sim.Size())
	}

	bot, err := core.Lookup("botania", nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rejected := core.Apply(bot, map[string]string{"max_maturity": "7", "value_multiplier": "3"}); len(rejected) != 0 {
		t.Fatalf("rejected %v", rejected)
	}
	bot.Reset(0)
	p, ok := bot.(core.ParameterProvider).Parameters().Lookup("max_maturity")
	if !ok || p.Value != "7" {
		t.Fatalf("max_maturity param %+v", p)
	}
}
