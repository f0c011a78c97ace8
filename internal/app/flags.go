package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	SimTPS  int
	Seed    int64
	Workers int

	File   string
	LutDir string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "grayscott", Scale: 3, TPS: 60, SimTPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "stepper worker goroutines (0 = all CPUs)")
	fs.StringVar(&c.File, "config", c.File, "optional YAML simulation config file")
	fs.StringVar(&c.LutDir, "lut-dir", c.LutDir, "load .lut tables from this directory instead of the embedded set")
}
