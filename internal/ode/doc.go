// Package ode provides the core primitives for time integration of the
// scalar test equation.
//
// The package defines the fundamental types shared by every integration
// method:
//
//   - [Params]: the rate constant and initial condition of a run
//   - [Grid]: the uniform time discretization
//   - [Trajectory]: an index-aligned sequence of (time, state) samples
//   - [Method]: interface implemented by each stepping scheme
//
// # Example
//
//	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}
//	p := ode.Params{Rate: -5, InitialValue: 1 / math.Sqrt2}
//	traj, _ := steppers.NewExplicit().Integrate(g, p)
//
// # Thread Safety
//
// Params and Grid are plain values; a Trajectory is owned by its caller.
// Methods keep no state between calls, so the four variants may run
// concurrently against the same inputs.
package ode
