// Package steppers implements the four time-integration schemes compared
// by this lab: explicit Euler, and three renditions of implicit Euler
// (closed-form, whole-horizon matrix solve, and fixed-point iteration).
//
// All four satisfy [ode.Method] and produce trajectories over the same
// uniform grid, so their outputs can be overlaid directly against the
// exact solution.
package steppers
