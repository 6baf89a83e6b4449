// Package tui is the interactive consumer of the integration core: a
// Bubble Tea view with three adjustable inputs (step size, rate constant,
// horizon). Every adjustment discards the previous run and recomputes all
// five sequences from the initial condition.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thealanjason/MiniThesis/internal/compare"
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/viz"
)

const (
	graphWidth  = 90
	graphHeight = 18
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type param struct {
	name string
	step float64
}

// Model holds the adjustable inputs and the latest comparison result.
type Model struct {
	grid   ode.Grid
	params ode.Params

	knobs  []param
	cursor int

	result *compare.Result
	runErr error
	width  int
}

func NewModel(g ode.Grid, p ode.Params) Model {
	m := Model{
		grid:   g,
		params: p,
		knobs: []param{
			{name: "dt", step: 0.01},
			{name: "rate", step: 0.25},
			{name: "steps", step: 1},
		},
		width: graphWidth,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.knobs)-1 {
				m.cursor++
			}
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(+1)
		case "r":
			m.recompute()
		}
	}
	return m, nil
}

// adjust nudges the selected input and triggers a full recomputation; the
// prior result is discarded, never resumed.
func (m *Model) adjust(dir float64) {
	switch m.knobs[m.cursor].name {
	case "dt":
		dt := m.grid.Dt + dir*m.knobs[m.cursor].step
		if dt > 0 {
			m.grid.Dt = dt
		}
	case "rate":
		m.params.Rate += dir * m.knobs[m.cursor].step
	case "steps":
		steps := m.grid.Steps + int(dir*m.knobs[m.cursor].step)
		if steps >= 1 {
			m.grid.Steps = steps
		}
	}
	m.recompute()
}

func (m *Model) recompute() {
	m.result, m.runErr = compare.Run(context.Background(), m.grid, m.params)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("euler method lab"))
	sb.WriteString("\n\n")

	values := []float64{m.grid.Dt, m.params.Rate, float64(m.grid.Steps)}
	for i, k := range m.knobs {
		line := fmt.Sprintf("%-6s %10.4f", k.name, values[i])
		if i == m.cursor {
			sb.WriteString(activeStyle.Render("> " + line))
		} else {
			sb.WriteString(labelStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-6s %10.4f", "horizon", m.grid.Horizon())))
	sb.WriteString("\n\n")

	if m.runErr != nil {
		sb.WriteString(errStyle.Render("run failed: " + m.runErr.Error()))
		sb.WriteString("\n")
	} else if m.result != nil {
		w := graphWidth
		if m.width > 10 && m.width-10 < w {
			w = m.width - 10
		}
		sb.WriteString(viz.Overlay(m.result, w, graphHeight))
		sb.WriteString("\n")
		sb.WriteString(viz.SummaryTable(m.result))
	}

	sb.WriteString(helpStyle.Render("↑/↓ select input · ←/→ adjust · r rerun · q quit"))
	sb.WriteString("\n")

	return sb.String()
}
