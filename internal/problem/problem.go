// Package problem defines the scalar test equation and its closed-form
// solution.
//
// The equation is
//
//	dy/dt = rate*(y - sin(t)) + cos(t)
//
// with exact solution
//
//	y(t) = (y0 - sin(t0)) * exp(rate*(t - t0)) + sin(t)
//
// For rate < 0 the solution decays onto sin(t), which makes the equation a
// standard probe for the stability of explicit versus implicit Euler steps.
package problem

import (
	"math"

	"github.com/thealanjason/MiniThesis/internal/ode"
)

// RHS evaluates the right-hand side dy/dt = rate*(y - sin(t)) + cos(t).
// Pure and total: defined for all finite y and t.
func RHS(p ode.Params, y, t float64) float64 {
	return p.Rate*(y-math.Sin(t)) + math.Cos(t)
}

// Exact evaluates the closed-form solution at time t.
func Exact(p ode.Params, t float64) float64 {
	c := p.InitialValue - math.Sin(p.InitialTime)
	return c*math.Exp(p.Rate*(t-p.InitialTime)) + math.Sin(t)
}

// ExactOn evaluates the closed-form solution on an arbitrary time sample.
func ExactOn(p ode.Params, times []float64) []float64 {
	ys := make([]float64, len(times))
	for i, t := range times {
		ys[i] = Exact(p, t)
	}
	return ys
}

// SampleExact evaluates the exact solution over the grid's horizon at
// density samples per step. The comparison driver uses density 10 so the
// reference curve stays smooth next to coarse numerical trajectories.
func SampleExact(p ode.Params, g ode.Grid, density int) (*ode.Trajectory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if density < 1 {
		density = 1
	}

	n := g.Steps * density
	dt := g.Dt / float64(density)
	tr := ode.NewTrajectory(p, n)
	for i := 1; i <= n; i++ {
		t := p.InitialTime + float64(i)*dt
		tr.Append(t, Exact(p, t))
	}
	return tr, nil
}
