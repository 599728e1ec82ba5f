package gocaster

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config collects the knobs the entry points need: output size and the
// input speeds that scale per-frame camera movement. Keeping these out
// of the render core lets it run headless in tests.
type Config struct {
	ScreenWidth  int     `json:"screen_width"`
	ScreenHeight int     `json:"screen_height"`
	MoveSpeed    float64 `json:"move_speed"`   // tiles per second
	RotateSpeed  float64 `json:"rotate_speed"` // radians per second
	ClimbSpeed   float64 `json:"climb_speed"`  // eye-height units per second
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:  600,
		ScreenHeight: 500,
		MoveSpeed:    3,
		RotateSpeed:  2,
		ClimbSpeed:   1,
	}
}

// LoadConfig reads a JSON config file. Missing fields keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}
