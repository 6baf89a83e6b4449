package steppers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/thealanjason/MiniThesis/internal/ode"
)

// ImplicitMatrix is backward Euler posed as one linear system over the
// whole horizon instead of a step-by-step march. With the affine RHS the
// n unknown future states satisfy A y = b where A is lower bidiagonal:
//
//	A[i][i]   = 1 - dt*rate
//	A[i][i-1] = -1
//	b[i]      = -dt*(rate*sin(t_{i+1}) - cos(t_{i+1}))
//	b[0]     += y0
//
// The system is solved in one shot and the known initial value prepended.
// The diagonal vanishes exactly when dt*rate == 1; that case is rejected
// up front as ErrSingularSystem rather than letting NaN/Inf leak out of
// the solve.
type ImplicitMatrix struct{}

func NewImplicitMatrix() *ImplicitMatrix {
	return &ImplicitMatrix{}
}

func (m *ImplicitMatrix) Name() string { return "implicit-matrix" }

func (m *ImplicitMatrix) Integrate(g ode.Grid, p ode.Params) (*ode.Trajectory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	diag := 1 - g.Dt*p.Rate
	if diag == 0 {
		return nil, ode.ErrSingularSystem
	}

	n := g.Steps
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		a.Set(i, i, diag)
		if i > 0 {
			a.Set(i, i-1, -1)
		}
		ti := p.InitialTime + float64(i+1)*g.Dt
		b.SetVec(i, -g.Dt*(p.Rate*math.Sin(ti)-math.Cos(ti)))
	}
	b.SetVec(0, b.AtVec(0)+p.InitialValue)

	var y mat.VecDense
	if err := y.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ode.ErrSingularSystem, err)
	}

	tr := ode.NewTrajectory(p, n)
	for i := 0; i < n; i++ {
		tr.Append(p.InitialTime+float64(i+1)*g.Dt, y.AtVec(i))
	}

	return tr, nil
}
