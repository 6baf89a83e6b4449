package steppers

import (
	"errors"
	"math"
	"testing"

	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

var stiffParams = ode.Params{Rate: -5, InitialTime: 0, InitialValue: 1 / math.Sqrt2}

func allMethods() []ode.Method {
	return []ode.Method{
		NewExplicit(),
		NewImplicitAnalytic(),
		NewImplicitMatrix(),
		NewImplicitIterative(),
	}
}

func TestAllMethodsStartAtInitialCondition(t *testing.T) {
	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}

	for _, m := range allMethods() {
		tr, err := m.Integrate(g, stiffParams)
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		t0, y0 := tr.At(0)
		if t0 != stiffParams.InitialTime || y0 != stiffParams.InitialValue {
			t.Errorf("%s: first sample (%v, %v), want (%v, %v)",
				m.Name(), t0, y0, stiffParams.InitialTime, stiffParams.InitialValue)
		}
	}
}

func TestAllMethodsProduceUniformTimeGrid(t *testing.T) {
	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}

	for _, m := range allMethods() {
		tr, err := m.Integrate(g, stiffParams)
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		if tr.Len() != g.Steps+1 {
			t.Fatalf("%s: expected %d samples, got %d", m.Name(), g.Steps+1, tr.Len())
		}
		for i := 0; i < tr.Len(); i++ {
			want := stiffParams.InitialTime + float64(i)*g.Dt
			ti, _ := tr.At(i)
			if math.Abs(ti-want) > 1e-12 {
				t.Errorf("%s: t[%d] = %v, want %v", m.Name(), i, ti, want)
			}
		}
	}
}

func TestAllMethodsRejectInvalidGrid(t *testing.T) {
	bad := []ode.Grid{
		{Dt: 0, Steps: 10},
		{Dt: -0.1, Steps: 10},
		{Dt: 0.1, Steps: 0},
	}

	for _, m := range allMethods() {
		for _, g := range bad {
			if _, err := m.Integrate(g, stiffParams); !errors.Is(err, ode.ErrInvalidGrid) {
				t.Errorf("%s: grid %+v accepted, want ErrInvalidGrid", m.Name(), g)
			}
		}
	}
}

func TestConsistencyAtSmallStep(t *testing.T) {
	// dt = pi/200 over a horizon of pi: every method should land within
	// 1e-2 of the exact solution at the final time.
	g := ode.Grid{Dt: math.Pi / 200, Steps: 200}
	exactFinal := problem.Exact(stiffParams, math.Pi)

	for _, m := range allMethods() {
		tr, err := m.Integrate(g, stiffParams)
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		_, yf := tr.Final()
		if math.Abs(yf-exactFinal) > 1e-2 {
			t.Errorf("%s: final state %v, exact %v (|err| = %.2e)",
				m.Name(), yf, exactFinal, math.Abs(yf-exactFinal))
		}
	}
}

func TestAnalyticMatchesIterative(t *testing.T) {
	// Both solve the same implicit equation, one in closed form and one by
	// fixed-point convergence, so they agree to the iterative tolerance.
	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}

	an, err := NewImplicitAnalytic().Integrate(g, stiffParams)
	if err != nil {
		t.Fatalf("analytic: %v", err)
	}
	it, err := NewImplicitIterative().Integrate(g, stiffParams)
	if err != nil {
		t.Fatalf("iterative: %v", err)
	}

	for i := 0; i < an.Len(); i++ {
		_, ya := an.At(i)
		_, yi := it.At(i)
		if math.Abs(ya-yi) > 1e-9 {
			t.Errorf("step %d: analytic %v vs iterative %v", i, ya, yi)
		}
	}
}

func TestMatrixMatchesAnalytic(t *testing.T) {
	// The one-shot solve and the stepwise closed form walk the identical
	// linear recurrence.
	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}

	an, err := NewImplicitAnalytic().Integrate(g, stiffParams)
	if err != nil {
		t.Fatalf("analytic: %v", err)
	}
	mx, err := NewImplicitMatrix().Integrate(g, stiffParams)
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}

	for i := 0; i < an.Len(); i++ {
		_, ya := an.At(i)
		_, ym := mx.At(i)
		if math.Abs(ya-ym) > 1e-8 {
			t.Errorf("step %d: analytic %v vs matrix %v", i, ya, ym)
		}
	}
}

func TestExplicitUnstableAtLargeStep(t *testing.T) {
	// |1 + dt*rate| = |1 - 5*pi/2| > 1: explicit Euler must blow up while
	// the implicit methods stay bounded near the exact curve.
	g := ode.Grid{Dt: math.Pi / 2, Steps: 8}
	exactFinal := problem.Exact(stiffParams, float64(g.Steps)*g.Dt)

	ex, err := NewExplicit().Integrate(g, stiffParams)
	if err != nil {
		t.Fatalf("explicit: %v", err)
	}
	_, yf := ex.Final()
	if math.Abs(yf-exactFinal) < 10 {
		t.Errorf("explicit should be wildly off at dt=pi/2: final %v, exact %v", yf, exactFinal)
	}

	// Growth: the envelope |y_n| must grow step over step.
	grew := 0
	for i := 2; i < ex.Len(); i++ {
		if math.Abs(ex.States[i]) > math.Abs(ex.States[i-1]) {
			grew++
		}
	}
	if grew < ex.Len()-3 {
		t.Errorf("explicit envelope not growing: %d of %d steps grew", grew, ex.Len()-2)
	}

	for _, m := range []ode.Method{NewImplicitAnalytic(), NewImplicitMatrix()} {
		tr, err := m.Integrate(g, stiffParams)
		if err != nil {
			t.Fatalf("%s: %v", m.Name(), err)
		}
		_, yf := tr.Final()
		if math.Abs(yf-exactFinal) > 1.0 {
			t.Errorf("%s should remain near exact at large steps: final %v, exact %v",
				m.Name(), yf, exactFinal)
		}
	}
}

func TestMatrixSingularSystem(t *testing.T) {
	// dt*rate == 1 zeroes the matrix diagonal.
	p := ode.Params{Rate: 5, InitialTime: 0, InitialValue: 1}
	g := ode.Grid{Dt: 0.2, Steps: 10}

	tr, err := NewImplicitMatrix().Integrate(g, p)
	if !errors.Is(err, ode.ErrSingularSystem) {
		t.Fatalf("expected ErrSingularSystem, got %v", err)
	}
	if tr != nil {
		t.Error("no trajectory should be produced for a singular system")
	}
}

func TestIterativeDivergesAtLargeStep(t *testing.T) {
	// Contraction factor |dt*rate| = 5: the corrector cannot converge, the
	// run halts and returns whatever completed beforehand.
	p := ode.Params{Rate: -5, InitialTime: 0, InitialValue: 1}
	g := ode.Grid{Dt: 1.0, Steps: 10}

	tr, err := NewImplicitIterative().Integrate(g, p)

	var divErr *ode.DivergenceError
	if !errors.As(err, &divErr) {
		t.Fatalf("expected DivergenceError, got %v", err)
	}
	if !errors.Is(err, ode.ErrDiverged) {
		t.Error("DivergenceError should satisfy errors.Is(err, ErrDiverged)")
	}

	if tr == nil {
		t.Fatal("truncated trajectory must still be returned")
	}
	if tr.Len() >= g.Steps+1 {
		t.Errorf("diverged run should be truncated, got %d samples", tr.Len())
	}
	t0, y0 := tr.At(0)
	if t0 != p.InitialTime || y0 != p.InitialValue {
		t.Errorf("truncated trajectory lost its initial condition: (%v, %v)", t0, y0)
	}
	if divErr.Step != tr.Len() {
		t.Errorf("divergence step %d inconsistent with %d completed samples", divErr.Step, tr.Len())
	}
}

func TestIterativeConvergesQuicklyWhenContractive(t *testing.T) {
	// |dt*rate| = 0.5: a handful of corrector passes should suffice.
	p := ode.Params{Rate: -5, InitialTime: 0, InitialValue: 1}
	g := ode.Grid{Dt: 0.1, Steps: 20}

	it := NewImplicitIterative()
	tr, err := it.Integrate(g, p)
	if err != nil {
		t.Fatalf("unexpected divergence: %v", err)
	}
	if tr.Len() != g.Steps+1 {
		t.Errorf("expected full trajectory, got %d samples", tr.Len())
	}
	if !tr.IsValid() {
		t.Error("trajectory contains non-finite states")
	}
}
