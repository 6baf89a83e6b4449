package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thealanjason/MiniThesis/internal/ode"
)

const (
	DefaultRate         = -5.0
	DefaultInitialTime  = 0.0
	DefaultSteps        = 25
	DefaultMethod       = "implicit-analytic"
	DefaultExactDensity = 10
)

// DefaultDt and DefaultInitialValue reproduce the reference scenario:
// 25 steps of pi/25 starting from 1/sqrt(2).
var (
	DefaultDt           = math.Pi / 25
	DefaultInitialValue = 1 / math.Sqrt2
)

type Config struct {
	Method       string  `yaml:"method"`
	Dt           float64 `yaml:"dt"`
	Steps        int     `yaml:"steps"`
	Rate         float64 `yaml:"rate"`
	InitialTime  float64 `yaml:"initial_time"`
	InitialValue float64 `yaml:"initial_value"`
	ExactDensity int     `yaml:"exact_density"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:       DefaultMethod,
		Dt:           DefaultDt,
		Steps:        DefaultSteps,
		Rate:         DefaultRate,
		InitialTime:  DefaultInitialTime,
		InitialValue: DefaultInitialValue,
		ExactDensity: DefaultExactDensity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid returns the discretization described by the config.
func (c *Config) Grid() ode.Grid {
	return ode.Grid{Dt: c.Dt, Steps: c.Steps}
}

// Params returns the problem parameters described by the config.
func (c *Config) Params() ode.Params {
	return ode.Params{
		Rate:         c.Rate,
		InitialTime:  c.InitialTime,
		InitialValue: c.InitialValue,
	}
}
