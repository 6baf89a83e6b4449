// Package analysis computes accuracy and stability diagnostics for
// numerical trajectories against the exact solution.
package analysis

import (
	"math"

	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

// Accuracy summarizes how far a trajectory strays from the exact solution
// at its own sample times.
type Accuracy struct {
	MaxAbsError   float64
	FinalAbsError float64
}

// Measure evaluates the exact solution at every sample time of tr and
// records the largest and the final absolute deviation. Works on truncated
// trajectories too; a single-sample trajectory has zero error by the first
// entry invariant.
func Measure(p ode.Params, tr *ode.Trajectory) Accuracy {
	var acc Accuracy
	for i := 0; i < tr.Len(); i++ {
		t, y := tr.At(i)
		e := math.Abs(y - problem.Exact(p, t))
		if e > acc.MaxAbsError {
			acc.MaxAbsError = e
		}
		acc.FinalAbsError = e
	}
	return acc
}

// GrowthRatio returns the ratio of the largest state envelope in the second
// half of the trajectory to that in the first half. A decaying solution
// yields a ratio <= 1; a ratio well above 1 is the signature of the
// explicit method's conditional instability.
func GrowthRatio(tr *ode.Trajectory) float64 {
	n := tr.Len()
	if n < 4 {
		return 1
	}

	half := n / 2
	first, second := 0.0, 0.0
	for i := 0; i < half; i++ {
		if a := math.Abs(tr.States[i]); a > first {
			first = a
		}
	}
	for i := half; i < n; i++ {
		if a := math.Abs(tr.States[i]); a > second {
			second = a
		}
	}

	if first == 0 {
		if second == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return second / first
}
