package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/thealanjason/MiniThesis/internal/compare"
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/problem"
)

var seriesColors = map[string]asciigraph.AnsiColor{
	"exact":              asciigraph.Default,
	"explicit":           asciigraph.Red,
	"implicit-analytic":  asciigraph.Green,
	"implicit-matrix":    asciigraph.Cyan,
	"implicit-iterative": asciigraph.Yellow,
}

// Overlay draws all five sequences on one shared axis. The exact solution
// is resampled onto the numerical grid so the series stay index-aligned;
// the 10x-dense reference remains available through Single and the export
// paths.
func Overlay(res *compare.Result, width, height int) string {
	names := make([]string, 0, len(res.Methods)+1)
	series := make([][]float64, 0, len(res.Methods)+1)
	colors := make([]asciigraph.AnsiColor, 0, len(res.Methods)+1)

	gridTimes := res.Grid.Times(res.Params.InitialTime)
	names = append(names, "exact")
	series = append(series, problem.ExactOn(res.Params, gridTimes))
	colors = append(colors, seriesColors["exact"])

	for _, mr := range res.Methods {
		if mr.Trajectory == nil {
			continue
		}
		names = append(names, mr.Name)
		series = append(series, mr.Trajectory.States)
		colors = append(colors, seriesColors[mr.Name])
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("state vs time (dt=%.4f, rate=%.2f)", res.Grid.Dt, res.Params.Rate)),
		asciigraph.SeriesColors(colors...),
	)

	var sb strings.Builder
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	for _, name := range names {
		sb.WriteString(seriesStyle(name).Render("── "+name) + "  ")
	}
	sb.WriteString("\n")

	return sb.String()
}

// Single draws one trajectory on its own axis.
func Single(name string, tr *ode.Trajectory, width, height int) string {
	return asciigraph.Plot(tr.States,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(name),
	)
}

// SummaryTable renders per-method accuracy figures for one comparison.
func SummaryTable(res *compare.Result) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("method summary"))
	sb.WriteString("\n")
	sb.WriteString(dim.Render(fmt.Sprintf("%-20s %12s %12s %10s", "method", "final_err", "max_err", "status")))
	sb.WriteString("\n")

	for _, mr := range res.Methods {
		status := green.Render("ok")
		switch {
		case mr.Diverged:
			status = red.Render("diverged")
		case mr.Err != nil:
			status = red.Render("error")
		}

		line := fmt.Sprintf("%-20s %12.2e %12.2e %10s",
			mr.Name, mr.Accuracy.FinalAbsError, mr.Accuracy.MaxAbsError, status)
		sb.WriteString(seriesStyle(mr.Name).Render(line))
		sb.WriteString("\n")
	}

	return sb.String()
}
