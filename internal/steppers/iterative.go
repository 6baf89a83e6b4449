package steppers

import (
	"math"

	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

const (
	// DefaultTolerance is the corrector convergence threshold.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations bounds the corrector loop within one step.
	DefaultMaxIterations = 10000
)

// ImplicitIterative is backward Euler solved per step by predictor-corrector
// fixed-point iteration: one explicit Euler predictor at the old time, then
// repeated correction y' = y_n + dt*f(y', t_{n+1}) until successive guesses
// differ by less than the tolerance.
//
// The corrector map contracts only when |dt*rate| < 1. Outside that range
// the iteration count hits the divergence limit; the run then stops for
// good and the truncated trajectory is returned together with a
// *ode.DivergenceError. A diverged run never resumes.
type ImplicitIterative struct {
	Tolerance     float64
	MaxIterations int
}

func NewImplicitIterative() *ImplicitIterative {
	return &ImplicitIterative{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (it *ImplicitIterative) Name() string { return "implicit-iterative" }

func (it *ImplicitIterative) Integrate(g ode.Grid, p ode.Params) (*ode.Trajectory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	tr := ode.NewTrajectory(p, g.Steps)
	t := p.InitialTime
	y := p.InitialValue

	for i := 0; i < g.Steps; i++ {
		guess := y + g.Dt*problem.RHS(p, y, t)
		t += g.Dt

		converged := false
		iters := 0
		for ; iters < it.MaxIterations; iters++ {
			next := y + g.Dt*problem.RHS(p, guess, t)
			diff := math.Abs(next - guess)
			guess = next

			if diff < it.Tolerance {
				converged = true
				break
			}
			if math.IsNaN(diff) || math.IsInf(diff, 0) {
				// Iterates left float range; no convergence possible.
				break
			}
		}

		if !converged {
			return tr, &ode.DivergenceError{Step: i + 1, Time: t, Iterations: iters}
		}

		y = guess
		tr.Append(t, y)
	}

	return tr, nil
}
