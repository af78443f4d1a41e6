package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Input string
	Jets  string
	Rows  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "rockfall", Scale: 12, TPS: 30, Seed: 1337, Rows: 48}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random jet patterns")
	fs.StringVar(&c.Input, "input", c.Input, "file holding the jet pattern")
	fs.StringVar(&c.Jets, "jets", c.Jets, "literal jet pattern (overrides -input)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of the well shown")
}

// SimOptions converts the flags into the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"seed": strconv.FormatInt(c.Seed, 10),
		"rows": strconv.Itoa(c.Rows),
	}
	if c.Input != "" {
		opts["input"] = c.Input
	}
	if c.Jets != "" {
		opts["jets"] = c.Jets
	}
	return opts
}
