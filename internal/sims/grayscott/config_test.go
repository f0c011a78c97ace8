package grayscott

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "128",
		"h":         "96",
		"feed":      "0.03",
		"kill":      "0.058",
		"workers":   "2",
		"time_step": "0.5",
	})
	if c.Width != 128 || c.Height != 96 {
		t.Fatalf("dimensions = %dx%d, want 128x96", c.Width, c.Height)
	}
	if c.Params.Feed != 0.03 || c.Params.Kill != 0.058 {
		t.Fatalf("rates = %v/%v, want 0.03/0.058", c.Params.Feed, c.Params.Kill)
	}
	if c.Workers != 2 {
		t.Fatalf("workers = %d, want 2", c.Workers)
	}
	if c.Params.TimeStep != 0.5 {
		t.Fatalf("time step = %v, want 0.5", c.Params.TimeStep)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{"w": "bogus", "feed": "-3"})
	if c.Width != def.Width || c.Params.Feed != def.Params.Feed {
		t.Fatal("invalid values should fall back to defaults")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte("width: 64\nheight: 32\nparams:\n  feed: 0.04\n  kill: 0.059\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 64 || c.Height != 32 {
		t.Fatalf("dimensions = %dx%d, want 64x32", c.Width, c.Height)
	}
	if c.Params.Feed != 0.04 || c.Params.Kill != 0.059 {
		t.Fatalf("rates = %v/%v, want 0.04/0.059", c.Params.Feed, c.Params.Kill)
	}
	// Fields absent from the file keep their defaults.
	if c.Params.TimeStep != DefaultConfig().Params.TimeStep {
		t.Fatalf("time step = %v, want default", c.Params.TimeStep)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file should return an error")
	}
}
