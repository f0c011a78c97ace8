package grayscott

import (
	"os"
	"strconv"

	"gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"
)

// Params holds the reaction-diffusion coefficients. TimeStep scales the
// per-tick delta applied by the update rule; it is plain configuration, not
// a physical constant.
type Params struct {
	Feed     float32 `yaml:"feed"`
	Kill     float32 `yaml:"kill"`
	DiffU    float32 `yaml:"diff_u"`
	DiffV    float32 `yaml:"diff_v"`
	TimeStep float32 `yaml:"time_step"`
}

// Config controls the simulation dimensions and execution.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// Workers is the number of goroutines the stepper fans out to.
	// Zero selects runtime.NumCPU.
	Workers int `yaml:"workers"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Workers: 0,
		Params: Params{
			Feed:     0.055,
			Kill:     0.062,
			DiffU:    1.0,
			DiffV:    0.5,
			TimeStep: 1.0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["feed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Feed = float32(parsed)
		}
	}
	if v, ok := cfg["kill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.Kill = float32(parsed)
		}
	}
	if v, ok := cfg["diff_u"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.DiffU = float32(parsed)
		}
	}
	if v, ok := cfg["diff_v"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			c.Params.DiffV = float32(parsed)
		}
	}
	if v, ok := cfg["time_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.TimeStep = float32(parsed)
		}
	}
	return c
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errgo.Notef(err, "cannot read config %q", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errgo.Notef(err, "cannot parse config %q", path)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return c, errgo.Newf("config %q has non-positive grid dimensions", path)
	}
	if c.Params.TimeStep <= 0 {
		c.Params.TimeStep = DefaultConfig().Params.TimeStep
	}
	return c, nil
}
