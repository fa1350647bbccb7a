package swarm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swarm.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
count = 80
algo = "Constant"
repel_boundary = 40.0
dampen = false
leader = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Count != 80 || cfg.Algo != AlgoConstant || cfg.RepelBoundary != 40 || cfg.Dampen || !cfg.Leader {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	def := DefaultConfig()
	if cfg.Mass != def.Mass || cfg.AttractBoundary != def.AttractBoundary || cfg.TPS != def.TPS {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "count = 10\nrepel_bondary = 5.0\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadConfigRejectsUnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, `algo = "quadratic"`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for an unknown algorithm")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 7
	cfg.Algo = AlgoNone
	cfg.Seed = 1234
	cfg.ColourByHeading = true
	path := filepath.Join(t.TempDir(), "saved.toml")
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative count": func(c *Config) { c.Count = -1 },
		"zero radius":    func(c *Config) { c.Radius = 0 },
		"zero mass":      func(c *Config) { c.Mass = 0 },
		"negative speed": func(c *Config) { c.Speed = -1 },
		"empty world":    func(c *Config) { c.Width = 0 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"sub-ns tps":     func(c *Config) { c.TPS = 2_000_000_000 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}

	cfg := DefaultConfig()
	cfg.Algo = "spiral"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	fastest := DefaultConfig()
	fastest.TPS = int(time.Second)
	if err := fastest.Validate(); err != nil {
		t.Fatalf("one tick per nanosecond should be accepted: %v", err)
	}
	if fastest.Interval() <= 0 {
		t.Fatalf("expected a positive interval, got %v", fastest.Interval())
	}
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Fatalf("unexpected warnings for defaults: %v", w)
	}
	cfg.RepelBoundary = 500
	if w := cfg.Warnings(); len(w) != 1 {
		t.Fatalf("expected a boundary warning, got %v", w)
	}
	cfg.Algo = AlgoNone
	if w := cfg.Warnings(); len(w) != 0 {
		t.Fatalf("boundaries do not matter without an algorithm, got %v", w)
	}
}

func TestAlgorithmNext(t *testing.T) {
	if AlgoNone.Next() != AlgoConstant || AlgoConstant.Next() != AlgoLinear || AlgoLinear.Next() != AlgoNone {
		t.Fatal("algorithms do not cycle in order")
	}
}
