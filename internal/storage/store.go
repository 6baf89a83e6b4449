// Package storage persists comparison runs as a metadata.json plus a
// long-format trajectories.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/thealanjason/MiniThesis/internal/compare"
	"github.com/thealanjason/MiniThesis/internal/ode"
)

// ExactSeries is the series name used for the reference curve in the CSV.
const ExactSeries = "exact"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type MethodSummary struct {
	FinalAbsError float64 `json:"final_abs_error"`
	MaxAbsError   float64 `json:"max_abs_error"`
	Samples       int     `json:"samples"`
	Diverged      bool    `json:"diverged"`
	Error         string  `json:"error,omitempty"`
}

type RunMetadata struct {
	ID           string                   `json:"id"`
	Timestamp    time.Time                `json:"timestamp"`
	Dt           float64                  `json:"dt"`
	Steps        int                      `json:"steps"`
	Rate         float64                  `json:"rate"`
	InitialTime  float64                  `json:"initial_time"`
	InitialValue float64                  `json:"initial_value"`
	Methods      map[string]MethodSummary `json:"methods"`
}

// Save writes one comparison result under a fresh run directory and
// returns the run id.
func (s *Store) Save(res *compare.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Dt:           res.Grid.Dt,
		Steps:        res.Grid.Steps,
		Rate:         res.Params.Rate,
		InitialTime:  res.Params.InitialTime,
		InitialValue: res.Params.InitialValue,
		Methods:      make(map[string]MethodSummary),
	}
	for _, mr := range res.Methods {
		sum := MethodSummary{
			FinalAbsError: mr.Accuracy.FinalAbsError,
			MaxAbsError:   mr.Accuracy.MaxAbsError,
			Diverged:      mr.Diverged,
		}
		if mr.Trajectory != nil {
			sum.Samples = mr.Trajectory.Len()
		}
		if mr.Err != nil {
			sum.Error = mr.Err.Error()
		}
		meta.Methods[mr.Name] = sum
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"series", "time", "state"}); err != nil {
		return "", err
	}
	if err := writeSeries(w, ExactSeries, res.Exact); err != nil {
		return "", err
	}
	for _, mr := range res.Methods {
		if mr.Trajectory == nil {
			continue
		}
		if err := writeSeries(w, mr.Name, mr.Trajectory); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeSeries(w *csv.Writer, name string, tr *ode.Trajectory) error {
	for i := 0; i < tr.Len(); i++ {
		t, y := tr.At(i)
		row := []string{
			name,
			strconv.FormatFloat(t, 'g', 17, 64),
			strconv.FormatFloat(y, 'g', 17, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectories reads back every series of a run, keyed by series name.
func (s *Store) LoadTrajectories(runID string) (map[string]*ode.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := make(map[string]*ode.Trajectory)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != 3 {
			continue
		}
		t, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		tr, ok := series[record[0]]
		if !ok {
			tr = &ode.Trajectory{}
			series[record[0]] = tr
		}
		tr.Append(t, y)
	}

	return series, nil
}
