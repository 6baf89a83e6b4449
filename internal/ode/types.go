package ode

import "math"

// Params holds the scalar configuration of one integration run. The rate
// constant and initial condition are passed explicitly into every call;
// changing them between runs produces an entirely new run and never mutates
// an in-progress one.
type Params struct {
	Rate         float64
	InitialTime  float64
	InitialValue float64
}

// Grid defines the uniform discretization t_i = InitialTime + i*Dt for
// i = 0..Steps.
type Grid struct {
	Dt    float64
	Steps int
}

// Validate reports whether the grid defines a usable discretization.
func (g Grid) Validate() error {
	if g.Dt <= 0 {
		return ErrInvalidGrid
	}
	if g.Steps < 1 {
		return ErrInvalidGrid
	}
	return nil
}

// Horizon returns the total integrated time span.
func (g Grid) Horizon() float64 {
	return float64(g.Steps) * g.Dt
}

// Times materializes the full time grid, including the initial time.
func (g Grid) Times(t0 float64) []float64 {
	ts := make([]float64, g.Steps+1)
	for i := range ts {
		ts[i] = t0 + float64(i)*g.Dt
	}
	return ts
}

// Trajectory is an ordered sequence of (time, state) samples. Times and
// States are index-aligned and the first entry always equals the initial
// condition of the run that produced it. A truncated trajectory (shorter
// than Grid.Steps+1) only arises when the iterative method diverges.
type Trajectory struct {
	Times  []float64
	States []float64
}

// NewTrajectory allocates a trajectory seeded with the initial condition
// and capacity for steps further samples.
func NewTrajectory(p Params, steps int) *Trajectory {
	tr := &Trajectory{
		Times:  make([]float64, 1, steps+1),
		States: make([]float64, 1, steps+1),
	}
	tr.Times[0] = p.InitialTime
	tr.States[0] = p.InitialValue
	return tr
}

// Append adds one sample to the trajectory.
func (tr *Trajectory) Append(t, y float64) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, y)
}

// Len returns the number of samples.
func (tr *Trajectory) Len() int { return len(tr.Times) }

// At returns the i-th (time, state) pair.
func (tr *Trajectory) At(i int) (float64, float64) {
	return tr.Times[i], tr.States[i]
}

// Final returns the last (time, state) pair.
func (tr *Trajectory) Final() (float64, float64) {
	n := len(tr.Times) - 1
	return tr.Times[n], tr.States[n]
}

// IsValid reports whether every state sample is finite.
func (tr *Trajectory) IsValid() bool {
	for _, v := range tr.States {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Method is one time-integration scheme. Integrate validates the grid,
// marches from the initial condition, and returns a fresh trajectory; the
// caller owns the result. The iterative variant may return a non-nil
// truncated trajectory together with a DivergenceError.
type Method interface {
	Name() string
	Integrate(g Grid, p Params) (*Trajectory, error)
}
