package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/field"
	"github.com/san-kum/heatsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
	fieldFile    = "field.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Alpha      float64            `json:"alpha"`
	Intensity  float64            `json:"intensity"`
	Source     string             `json:"source,omitempty"`
	Palette    string             `json:"palette"`
	Steps      int                `json:"steps"`
	StepsTaken int                `json:"steps_taken"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) newRunDir() (string, string, error) {
	base := fmt.Sprintf("heat_%d", time.Now().Unix())
	runID := base
	for i := 1; ; i++ {
		_, err := os.Stat(filepath.Join(s.baseDir, runID))
		if os.IsNotExist(err) {
			break
		}
		if err != nil {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

// Save writes the run summary, the sampled series and the final field.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	runID, runDir, err := s.newRunDir()
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Alpha:      cfg.Alpha,
		Intensity:  cfg.Intensity,
		Source:     cfg.Source,
		Palette:    cfg.Palette,
		Steps:      cfg.Steps,
		StepsTaken: result.StepsTaken,
		Metrics:    result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), result.Samples); err != nil {
		return "", err
	}
	if result.Final != nil {
		if err := writeField(filepath.Join(runDir, fieldFile), result.Final); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, samples []sim.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSeriesCSV(f, samples)
}

// WriteSeriesCSV writes samples as step,min,max,mean,total rows.
func WriteSeriesCSV(out io.Writer, samples []sim.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"step", "min", "max", "mean", "total"}); err != nil {
		return err
	}
	for _, sm := range samples {
		row := []string{
			strconv.Itoa(sm.Step),
			strconv.FormatFloat(sm.Min, 'g', -1, 64),
			strconv.FormatFloat(sm.Max, 'g', -1, 64),
			strconv.FormatFloat(sm.Mean, 'g', -1, 64),
			strconv.FormatFloat(sm.Total, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeField(path string, fld *field.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteFieldCSV(f, fld)
}

// WriteFieldCSV writes one CSV row per y, starting at y=0.
func WriteFieldCSV(out io.Writer, fld *field.Field) error {
	w := csv.NewWriter(out)
	row := make([]string, fld.Width())
	for y := 0; y < fld.Height(); y++ {
		for x := 0; x < fld.Width(); x++ {
			row[x] = strconv.FormatFloat(fld.At(x, y), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) ([]sim.Sample, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		samples = append(samples, sim.Sample{Step: step, Min: vals[0], Max: vals[1], Mean: vals[2], Total: vals[3]})
	}

	return samples, nil
}

func (s *Store) LoadField(runID string) (*field.Field, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, fieldFile))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("run %s: empty field", runID)
	}

	h, w := len(records), len(records[0])
	fld := field.New(w, h)
	for y, record := range records {
		if len(record) != w {
			return nil, fmt.Errorf("run %s: row %d has %d cells, expected %d", runID, y, len(record), w)
		}
		for x, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: cell (%d,%d): %w", runID, x, y, err)
			}
			fld.Set(x, y, v)
		}
	}
	return fld, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
