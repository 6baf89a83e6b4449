// Package compare orchestrates one run of all four integration methods
// plus the exact reference over a shared grid.
package compare

import (
	"context"
	"errors"
	"sync"

	"github.com/thealanjason/MiniThesis/internal/analysis"
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

// ExactDensity is the oversampling factor of the reference curve relative
// to the numerical grid, chosen so the exact trace stays smooth next to
// coarse trajectories.
const ExactDensity = 10

// MethodResult holds one method's trajectory and its deviation from exact.
type MethodResult struct {
	Name       string
	Trajectory *ode.Trajectory
	Accuracy   analysis.Accuracy
	Diverged   bool
	Err        error
}

// Result is the outcome of one comparison run.
type Result struct {
	Grid    ode.Grid
	Params  ode.Params
	Exact   *ode.Trajectory
	Methods []MethodResult
}

// ByName returns the result for the named method, or nil.
func (r *Result) ByName(name string) *MethodResult {
	for i := range r.Methods {
		if r.Methods[i].Name == name {
			return &r.Methods[i]
		}
	}
	return nil
}

// Run integrates the test equation with every registered method and
// evaluates the exact reference at ExactDensity times the grid resolution.
//
// The four methods are independent given shared inputs, so they run
// concurrently; results are reassembled in canonical order. A diverged or
// singular method is recorded in its slot rather than failing the whole
// comparison, so partial results remain displayable. Only an invalid grid
// aborts up front.
func Run(ctx context.Context, g ode.Grid, p ode.Params) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exact, err := problem.SampleExact(p, g, ExactDensity)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	names := registry.Names()
	results := make([]MethodResult, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		method, err := registry.Get(name)
		if err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(idx int, m ode.Method) {
			defer wg.Done()

			tr, err := m.Integrate(g, p)
			mr := MethodResult{Name: m.Name(), Trajectory: tr, Err: err}
			if errors.Is(err, ode.ErrDiverged) {
				mr.Diverged = true
			}
			if tr != nil {
				mr.Accuracy = analysis.Measure(p, tr)
			}
			results[idx] = mr
		}(i, method)
	}
	wg.Wait()

	return &Result{Grid: g, Params: p, Exact: exact, Methods: results}, nil
}
