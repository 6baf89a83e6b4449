package steppers

import (
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

// Explicit is forward Euler: y_{n+1} = y_n + dt*f(y_n, t_n).
//
// Conditionally stable: for the test equation the step is stable only when
// |1 + dt*rate| < 1. No stabilization is applied; the blow-up at large
// steps is the behavior this lab exists to show.
type Explicit struct{}

func NewExplicit() *Explicit {
	return &Explicit{}
}

func (e *Explicit) Name() string { return "explicit" }

func (e *Explicit) Integrate(g ode.Grid, p ode.Params) (*ode.Trajectory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	tr := ode.NewTrajectory(p, g.Steps)
	t := p.InitialTime
	y := p.InitialValue

	for i := 0; i < g.Steps; i++ {
		y += g.Dt * problem.RHS(p, y, t)
		t += g.Dt
		tr.Append(t, y)
	}

	return tr, nil
}
