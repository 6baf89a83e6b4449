package config

import (
	"math"
	"sort"
)

// Presets are canned scenarios that bracket the stability behavior of the
// four methods on the test equation.
var Presets = map[string]*Config{
	// The reference scenario: horizon pi, all methods accurate.
	"reference": {
		Method: "implicit-analytic",
		Dt:     math.Pi / 25, Steps: 25,
		Rate: -5, InitialValue: 1 / math.Sqrt2,
		ExactDensity: 10,
	},
	// Fine grid: every method within 1e-2 of exact.
	"smooth": {
		Method: "explicit",
		Dt:     math.Pi / 200, Steps: 200,
		Rate: -5, InitialValue: 1 / math.Sqrt2,
		ExactDensity: 10,
	},
	// |1 + dt*rate| > 1: explicit Euler oscillates and grows while the
	// implicit variants stay on the exact curve.
	"unstable": {
		Method: "explicit",
		Dt:     math.Pi / 2, Steps: 8,
		Rate: -5, InitialValue: 1 / math.Sqrt2,
		ExactDensity: 10,
	},
	// |dt*rate| > 1: the fixed-point corrector cannot contract, so the
	// iterative method truncates and reports divergence.
	"diverging": {
		Method: "implicit-iterative",
		Dt:     1.0, Steps: 10,
		Rate: -5, InitialValue: 1,
		ExactDensity: 10,
	},
	// dt*rate == 1 exactly: the whole-horizon matrix is singular and the
	// matrix method must refuse to solve.
	"singular": {
		Method: "implicit-matrix",
		Dt:     0.2, Steps: 10,
		Rate: 5, InitialValue: 1,
		ExactDensity: 10,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.ExactDensity == 0 {
		out.ExactDensity = DefaultExactDensity
	}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
