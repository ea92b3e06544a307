package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/storage"
)

// Scenario defines a scripted sequence of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (reference when empty) and applies the
// fields that are set. Pointers distinguish an explicit zero from "unset".
type ScenarioStep struct {
	Preset       string   `yaml:"preset"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Alpha        *float64 `yaml:"alpha"`
	Intensity    *float64 `yaml:"intensity"`
	Source       string   `yaml:"source"`
	SourceRadius *float64 `yaml:"source_radius"`
	Steps        int      `yaml:"steps"`
	Palette      string   `yaml:"palette"`
	// SaveAs writes the final field as a PNG.
	SaveAs string `yaml:"save_as"`
}

// Config resolves the step into a full run configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	preset := s.Preset
	if preset == "" {
		preset = "reference"
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", preset)
	}
	if s.Width > 0 {
		cfg.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Height = s.Height
	}
	if s.Alpha != nil {
		cfg.Alpha = *s.Alpha
	}
	if s.Intensity != nil {
		cfg.Intensity = *s.Intensity
	}
	if s.Source != "" {
		cfg.Source = s.Source
	}
	if s.SourceRadius != nil {
		cfg.SourceRadius = *s.SourceRadius
	}
	if s.Steps > 0 {
		cfg.Steps = s.Steps
	}
	if s.Palette != "" {
		cfg.Palette = s.Palette
	}
	return cfg, cfg.Validate()
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

type StepResult struct {
	Config *config.Config
	Result *sim.Result
	// RunID is set when the run was saved to a store.
	RunID string
}

// Runner executes scenarios. Store and Out are optional.
type Runner struct {
	Store *storage.Store
	Out   io.Writer
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out != nil {
		fmt.Fprintf(r.Out, format, args...)
	}
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		r.printf("Running step %d/%d: %dx%d alpha=%.3f steps=%d\n",
			i+1, len(scenario.Steps), cfg.Width, cfg.Height, cfg.Alpha, cfg.Steps)

		exp := experiment.New(cfg)
		if err := exp.Setup(); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Config: cfg, Result: result}

		if r.Store != nil {
			id, err := r.Store.Save(cfg, result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID = id
			r.printf("  saved run %s\n", id)
		}

		if step.SaveAs != "" {
			pal, err := colormap.Get(cfg.Palette)
			if err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			if err := export.WritePNG(step.SaveAs, result.Final, pal, cfg.Scale); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			r.printf("  wrote %s\n", step.SaveAs)
		}

		results = append(results, sr)
	}

	return results, nil
}
