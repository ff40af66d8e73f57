package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Params string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: 60, Seed: 42, Width: 320, Height: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the movement randomness")
	fs.IntVar(&c.Width, "width", c.Width, "initial grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "initial grid height in cells")
	fs.StringVar(&c.Params, "params", c.Params, "movement overrides as key=value pairs, e.g. drift_span=3,diagonal_chance=25")
}
