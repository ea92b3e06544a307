package experiment

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/source"
)

func tinyConfig() *config.Config {
	cfg := config.GetPreset("tiny")
	cfg.Steps = 50
	return cfg
}

func TestExperimentRun(t *testing.T) {
	exp := New(tinyConfig())
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 50 {
		t.Errorf("expected 50 steps, got %d", result.StepsTaken)
	}
	if result.Metrics["bounded"] != 1.0 {
		t.Errorf("expected a bounded run, got %f", result.Metrics["bounded"])
	}
	if result.Metrics["peak_temperature"] != 0.8 {
		t.Errorf("expected peak at source intensity 0.8, got %f", result.Metrics["peak_temperature"])
	}
	if exp.Grid().Steps() != 50 {
		t.Errorf("expected grid at step 50, got %d", exp.Grid().Steps())
	}
}

func TestExperimentReferenceHeats(t *testing.T) {
	cfg := config.GetPreset("reference")
	cfg.Width, cfg.Height = 60, 40
	cfg.SourceRadius = 8
	cfg.Steps = 400

	exp := New(cfg)
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["peak_temperature"] != 0.01 {
		t.Errorf("expected peak at source intensity 0.01, got %g", result.Metrics["peak_temperature"])
	}
	if got := result.Metrics["heated_fraction"]; got <= 0 || got > 1 {
		t.Errorf("expected a heated fraction in (0, 1], got %g", got)
	}
	if result.Metrics["bounded"] != 1.0 {
		t.Errorf("expected a bounded run, got %f", result.Metrics["bounded"])
	}
}

func TestExperimentRunBeforeSetup(t *testing.T) {
	if _, err := New(tinyConfig()).Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}

func TestExperimentMissingImage(t *testing.T) {
	cfg := tinyConfig()
	cfg.Source = filepath.Join(t.TempDir(), "missing.png")
	err := New(cfg).Setup()
	if !errors.Is(err, source.ErrImageLoad) {
		t.Fatalf("expected ErrImageLoad, got %v", err)
	}
}

func TestExperimentInvalidConfig(t *testing.T) {
	cfg := tinyConfig()
	cfg.Width = 1
	if err := New(cfg).Setup(); err == nil {
		t.Error("expected invalid config error")
	}
}

func TestExperimentCopiesConfig(t *testing.T) {
	cfg := tinyConfig()
	exp := New(cfg)
	cfg.Alpha = 0.9
	if exp.Config().Alpha == 0.9 {
		t.Error("experiment shares caller config")
	}
}
