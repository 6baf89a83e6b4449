// Package viz renders comparison runs in the terminal.
//
// The five sequences (exact reference plus four methods) are drawn on a
// shared time/state axis with asciigraph; lipgloss provides the summary
// table styling. Rendering consumes trajectories and never recomputes
// them, so redraw policy stays out of the numerical core.
package viz
