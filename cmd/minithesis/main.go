package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thealanjason/MiniThesis/internal/compare"
	"github.com/thealanjason/MiniThesis/internal/config"
	"github.com/thealanjason/MiniThesis/internal/ode"
	"github.com/thealanjason/MiniThesis/internal/storage"
	"github.com/thealanjason/MiniThesis/internal/tui"
	"github.com/thealanjason/MiniThesis/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	rate       float64
	t0         float64
	y0         float64
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minithesis",
		Short: "explicit vs implicit Euler comparison lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLiveView(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".minithesis", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [method]",
		Short: "integrate with one method",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMethod,
	}
	addScenarioFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run all four methods against the exact solution",
		RunE:  runComparison,
	}
	addScenarioFlags(compareCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run a comparison and write CSV to stdout",
		RunE:  exportCSV,
	}
	addScenarioFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "run a comparison and write JSON to stdout",
		RunE:  exportJSON,
	}
	addScenarioFlags(exportJSONCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive view with adjustable step size, rate and horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runLiveView(cfg)
		},
	}
	addScenarioFlags(liveCmd)

	rootCmd.AddCommand(runCmd, compareCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "rate constant")
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultInitialTime, "initial time")
	cmd.Flags().Float64Var(&y0, "y0", config.DefaultInitialValue, "initial value")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

// resolveConfig layers preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate = rate
	}
	if cmd.Flags().Changed("t0") {
		cfg.InitialTime = t0
	}
	if cmd.Flags().Changed("y0") {
		cfg.InitialValue = y0
	}

	return cfg, nil
}

func runMethod(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Method = args[0]
	}

	registry := compare.NewRegistry()
	m, err := registry.Get(cfg.Method)
	if err != nil {
		return err
	}

	tr, err := m.Integrate(cfg.Grid(), cfg.Params())
	if err != nil && !errors.Is(err, ode.ErrDiverged) {
		return err
	}

	fmt.Println(viz.Single(m.Name(), tr, 80, 12))
	if err != nil {
		fmt.Printf("\n%v\n", err)
		fmt.Printf("partial trajectory: %d of %d samples\n", tr.Len(), cfg.Steps+1)
	}

	tf, yf := tr.Final()
	fmt.Printf("\nfinal: t=%.6f y=%.6f\n", tf, yf)
	return nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := compare.Run(context.Background(), cfg.Grid(), cfg.Params())
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}

	fmt.Println(viz.Overlay(res, 90, 18))
	fmt.Println(viz.SummaryTable(res))
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDT\tSTEPS\tRATE\tDIVERGED")

	for _, run := range runs {
		diverged := "-"
		for name, ms := range run.Methods {
			if ms.Diverged {
				diverged = name
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%d\t%.2f\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Rate,
			diverged,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (dt=%.4f, steps=%d, rate=%.2f)\n\n", meta.ID, meta.Dt, meta.Steps, meta.Rate)

	names := append([]string{storage.ExactSeries}, compare.MethodOrder...)
	for _, name := range names {
		tr, ok := series[name]
		if !ok || tr.Len() == 0 {
			continue
		}
		fmt.Println(viz.Single(name, tr, 80, 10))
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	res, err := comparisonFromFlags(cmd)
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, res)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	res, err := comparisonFromFlags(cmd)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, res)
}

func comparisonFromFlags(cmd *cobra.Command) (*compare.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return compare.Run(context.Background(), cfg.Grid(), cfg.Params())
}

func runLiveView(cfg *config.Config) error {
	m := tui.NewModel(cfg.Grid(), cfg.Params())
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
