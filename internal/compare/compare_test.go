package compare

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

var exampleParams = ode.Params{Rate: -5, InitialTime: 0, InitialValue: 1 / math.Sqrt2}

func TestRunExampleScenario(t *testing.T) {
	// rate=-5, y0=1/sqrt(2), dt=pi/25, 25 steps: horizon pi.
	g := ode.Grid{Dt: math.Pi / 25, Steps: 25}

	res, err := Run(context.Background(), g, exampleParams)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Exact.Len() != 251 {
		t.Errorf("exact reference: expected 251 samples, got %d", res.Exact.Len())
	}
	if len(res.Methods) != 4 {
		t.Fatalf("expected 4 methods, got %d", len(res.Methods))
	}

	exactFinal := problem.Exact(exampleParams, math.Pi)
	for _, mr := range res.Methods {
		if mr.Err != nil {
			t.Fatalf("%s: %v", mr.Name, mr.Err)
		}
		if mr.Trajectory.Len() != 26 {
			t.Errorf("%s: expected 26 samples, got %d", mr.Name, mr.Trajectory.Len())
		}
		t0, y0 := mr.Trajectory.At(0)
		if t0 != 0 || math.Abs(y0-1/math.Sqrt2) > 1e-15 {
			t.Errorf("%s: first sample (%v, %v)", mr.Name, t0, y0)
		}
		_, yf := mr.Trajectory.Final()
		if math.Abs(yf-exactFinal) > 0.05 {
			t.Errorf("%s: final state %v not within 0.05 of exact %v", mr.Name, yf, exactFinal)
		}
	}
}

func TestRunPreservesMethodOrder(t *testing.T) {
	g := ode.Grid{Dt: 0.1, Steps: 5}

	res, err := Run(context.Background(), g, exampleParams)
	if err != nil {
		t.Fatal(err)
	}

	for i, want := range MethodOrder {
		if res.Methods[i].Name != want {
			t.Errorf("slot %d: got %s, want %s", i, res.Methods[i].Name, want)
		}
	}
}

func TestRunCarriesDivergenceInSlot(t *testing.T) {
	// dt*rate = -5: the iterative corrector cannot contract, but the other
	// methods must still deliver full trajectories.
	p := ode.Params{Rate: -5, InitialTime: 0, InitialValue: 1}
	g := ode.Grid{Dt: 1.0, Steps: 10}

	res, err := Run(context.Background(), g, p)
	if err != nil {
		t.Fatalf("comparison should not fail outright: %v", err)
	}

	it := res.ByName("implicit-iterative")
	if it == nil {
		t.Fatal("iterative result missing")
	}
	if !it.Diverged {
		t.Error("iterative method should be flagged diverged")
	}
	if !errors.Is(it.Err, ode.ErrDiverged) {
		t.Errorf("expected ErrDiverged, got %v", it.Err)
	}
	if it.Trajectory == nil {
		t.Error("truncated trajectory should still be present")
	}

	for _, name := range []string{"explicit", "implicit-analytic", "implicit-matrix"} {
		mr := res.ByName(name)
		if mr.Err != nil {
			t.Errorf("%s: unexpected error %v", name, mr.Err)
		}
		if mr.Trajectory.Len() != g.Steps+1 {
			t.Errorf("%s: expected full trajectory", name)
		}
	}
}

func TestRunInvalidGrid(t *testing.T) {
	_, err := Run(context.Background(), ode.Grid{Dt: -1, Steps: 5}, exampleParams)
	if !errors.Is(err, ode.ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestRegistryUnknownMethod(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("rk4"); err == nil {
		t.Error("expected error for unknown method")
	}

	names := r.Names()
	if len(names) != 4 {
		t.Errorf("expected 4 registered methods, got %d", len(names))
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, ode.Grid{Dt: 0.1, Steps: 5}, exampleParams)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
