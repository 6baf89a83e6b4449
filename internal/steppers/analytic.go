package steppers

import (
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

// ImplicitAnalytic is backward Euler with the implicit equation
// y_{n+1} = y_n + dt*f(y_{n+1}, t_{n+1}) solved in closed form.
//
// The closed form exploits that f is affine in y for this equation:
//
//	y_{n+1} = y_n + dt/(1 - dt*rate) * f(y_n, t_{n+1})
//
// This update is hard-coupled to problem.RHS. It must be re-derived by
// hand for any other right-hand side, which is the method's documented
// drawback: it is a strategy for this one equation, not a general
// implicit solver. Unconditionally stable for rate < 0 and any dt > 0.
type ImplicitAnalytic struct{}

func NewImplicitAnalytic() *ImplicitAnalytic {
	return &ImplicitAnalytic{}
}

func (a *ImplicitAnalytic) Name() string { return "implicit-analytic" }

func (a *ImplicitAnalytic) Integrate(g ode.Grid, p ode.Params) (*ode.Trajectory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	tr := ode.NewTrajectory(p, g.Steps)
	t := p.InitialTime
	y := p.InitialValue
	gain := 1 / (1 - g.Dt*p.Rate)

	for i := 0; i < g.Steps; i++ {
		// Time first: the RHS is evaluated at the next time level.
		t += g.Dt
		y += g.Dt * gain * problem.RHS(p, y, t)
		tr.Append(t, y)
	}

	return tr, nil
}
