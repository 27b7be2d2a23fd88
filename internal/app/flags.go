package app

import (
	"flag"
	"fmt"
	"strings"
)

// Frame output modes for the Runner.
const (
	ShowNone  = "none"
	ShowFinal = "final"
	ShowEvery = "every"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Seed   int64
	Steps  int
	TPS    int
	Layout string
	Show   string
	Params bool
	Set    KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "botania", Seed: 42, Steps: 200, Show: ShowFinal, Set: KVList{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "maximum generations to advance")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second when printing every frame (0 = unpaced)")
	fs.StringVar(&c.Layout, "layout", c.Layout, "YAML layout file")
	fs.StringVar(&c.Show, "show", c.Show, "frames to print: none, final or every")
	fs.BoolVar(&c.Params, "params", c.Params, "print the sim parameters and exit")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig returns the factory configuration for the selected sim. The -set
// overrides are not included; they go through the sim's parameter setters.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{}
	if c.Layout != "" {
		cfg["layout"] = c.Layout
	}
	return cfg
}

// Validate checks flag combinations.
func (c *Config) Validate() error {
	switch c.Show {
	case ShowNone, ShowFinal, ShowEvery:
	default:
		return fmt.Errorf("invalid -show %q", c.Show)
	}
	if c.Steps < 0 {
		return fmt.Errorf("invalid -steps %d", c.Steps)
	}
	return nil
}

// KVList collects repeated key=value flags.
type KVList map[string]string

func (l KVList) String() string {
	parts := make([]string, 0, len(l))
	for k, v := range l {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (l KVList) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	l[key] = val
	return nil
}
