package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/thealanjason/MiniThesis/internal/compare"
)

// ExportData is the flat JSON form of one comparison run.
type ExportData struct {
	Dt           float64              `json:"dt"`
	Steps        int                  `json:"steps"`
	Rate         float64              `json:"rate"`
	InitialTime  float64              `json:"initial_time"`
	InitialValue float64              `json:"initial_value"`
	Series       map[string]SeriesOut `json:"series"`
}

type SeriesOut struct {
	Times    []float64 `json:"times"`
	States   []float64 `json:"states"`
	Diverged bool      `json:"diverged,omitempty"`
}

// ExportJSON writes a comparison result as indented JSON.
func ExportJSON(w io.Writer, res *compare.Result) error {
	data := ExportData{
		Dt:           res.Grid.Dt,
		Steps:        res.Grid.Steps,
		Rate:         res.Params.Rate,
		InitialTime:  res.Params.InitialTime,
		InitialValue: res.Params.InitialValue,
		Series:       make(map[string]SeriesOut),
	}

	data.Series[ExactSeries] = SeriesOut{Times: res.Exact.Times, States: res.Exact.States}
	for _, mr := range res.Methods {
		if mr.Trajectory == nil {
			continue
		}
		data.Series[mr.Name] = SeriesOut{
			Times:    mr.Trajectory.Times,
			States:   mr.Trajectory.States,
			Diverged: mr.Diverged,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a comparison result in the same long format used by the
// on-disk store.
func ExportCSV(w io.Writer, res *compare.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"series", "time", "state"}); err != nil {
		return err
	}

	write := func(name string, times, states []float64) error {
		for i := range times {
			row := []string{
				name,
				strconv.FormatFloat(times[i], 'f', 6, 64),
				strconv.FormatFloat(states[i], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(ExactSeries, res.Exact.Times, res.Exact.States); err != nil {
		return err
	}
	for _, mr := range res.Methods {
		if mr.Trajectory == nil {
			continue
		}
		if err := write(mr.Name, mr.Trajectory.Times, mr.Trajectory.States); err != nil {
			return err
		}
	}
	return nil
}
