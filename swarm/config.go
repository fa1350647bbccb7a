package swarm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidConfig    = errors.New("invalid swarm config")
	ErrUnknownAlgorithm = errors.New("unknown swarm algorithm")
)

// Algorithm selects how a pair of particles affects each other.
type Algorithm string

const (
	AlgoNone     Algorithm = "none"
	AlgoConstant Algorithm = "constant"
	AlgoLinear   Algorithm = "linear"
)

// Algorithms lists the selectable algorithms in cycling order.
var Algorithms = []Algorithm{AlgoNone, AlgoConstant, AlgoLinear}

func (a Algorithm) valid() bool {
	for _, known := range Algorithms {
		if a == known {
			return true
		}
	}
	return false
}

// Next returns the algorithm after a, wrapping around.
func (a Algorithm) Next() Algorithm {
	for i, known := range Algorithms {
		if a == known {
			return Algorithms[(i+1)%len(Algorithms)]
		}
	}
	return Algorithms[0]
}

// UnmarshalText lets TOML decode the algorithm case-insensitively.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v := Algorithm(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(text))
	}
	*a = v
	return nil
}

// MarshalText writes the algorithm name.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// Config is a snapshot of the simulation parameters. The swarm only reads it
// at Initialize/Reset time.
type Config struct {
	Count  int     `toml:"count"`
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
	Mass   float64 `toml:"mass"`

	Algo            Algorithm `toml:"algo"`
	RepelBoundary   float64   `toml:"repel_boundary"`
	AttractBoundary float64   `toml:"attract_boundary"`
	RepelForce      float64   `toml:"repel_force"`
	AttractForce    float64   `toml:"attract_force"`

	Dampen  bool `toml:"dampen"`
	SpeedUp bool `toml:"speed_up"`

	FollowMouse bool    `toml:"follow_mouse"`
	MouseForce  float64 `toml:"mouse_force"`

	ShowDirection   bool `toml:"show_direction"`
	ColourByHeading bool `toml:"colour_by_heading"`
	Leader          bool `toml:"leader"`

	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	TPS    int     `toml:"tps"`
	Seed   int64   `toml:"seed"`
}

// DefaultConfig returns the values the control panel starts with.
func DefaultConfig() Config {
	return Config{
		Count:           50,
		Radius:          4,
		Speed:           2.0,
		Mass:            100,
		Algo:            AlgoLinear,
		RepelBoundary:   100,
		AttractBoundary: 400,
		RepelForce:      -10,
		AttractForce:    1,
		Dampen:          true,
		SpeedUp:         false,
		FollowMouse:     true,
		MouseForce:      1,
		ShowDirection:   true,
		Width:           800,
		Height:          600,
		TPS:             100,
	}
}

// Interval is the tick period implied by TPS.
func (c Config) Interval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Validate reports parameters the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count %d is negative", ErrInvalidConfig, c.Count)
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidConfig, c.Radius)
	case c.Mass <= 0:
		return fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidConfig, c.Mass)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed %v is negative", ErrInvalidConfig, c.Speed)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: world %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.TPS > int(time.Second):
		return fmt.Errorf("%w: tps %d exceeds one tick per nanosecond", ErrInvalidConfig, c.TPS)
	case c.RepelBoundary < 0 || c.AttractBoundary < 0:
		return fmt.Errorf("%w: boundaries must not be negative", ErrInvalidConfig)
	}
	if !c.Algo.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(c.Algo))
	}
	return nil
}

// Warnings lists settings that are legal but make the two-zone algorithms
// degenerate.
func (c Config) Warnings() []string {
	var w []string
	if c.Algo != AlgoNone && c.RepelBoundary >= c.AttractBoundary {
		w = append(w, fmt.Sprintf("repel_boundary %v >= attract_boundary %v: attraction zone is empty", c.RepelBoundary, c.AttractBoundary))
	}
	if c.Mass < 1 {
		w = append(w, fmt.Sprintf("mass %v < 1: damped velocity flips sign every tick", c.Mass))
	}
	return w
}

// LoadConfig decodes a TOML file over DefaultConfig. Keys that do not map to
// a field are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
