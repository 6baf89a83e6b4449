package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrInvalidGrid indicates a non-positive step size or fewer than one step.
	ErrInvalidGrid = errors.New("ode: invalid grid (dt must be > 0 and steps >= 1)")

	// ErrSingularSystem indicates the whole-horizon matrix is singular
	// (dt * rate == 1 zeroes its diagonal).
	ErrSingularSystem = errors.New("ode: singular system (dt * rate == 1)")

	// ErrDiverged indicates the fixed-point corrector failed to contract.
	ErrDiverged = errors.New("ode: corrector iteration diverged")
)

// DivergenceError reports where the iterative method's corrector stopped
// contracting. The run is terminal after this: no further steps were
// attempted, and the accompanying trajectory holds only the steps that
// completed beforehand.
type DivergenceError struct {
	Step       int
	Time       float64
	Iterations int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("ode: corrector diverged at step %d (t=%.4f) after %d iterations", e.Step, e.Time, e.Iterations)
}

func (e *DivergenceError) Unwrap() error {
	return ErrDiverged
}
