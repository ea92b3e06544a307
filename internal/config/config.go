package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/colormap"
)

const (
	DefaultWidth         = 320
	DefaultHeight        = 240
	DefaultAlpha         = 0.25
	DefaultIntensity     = 1.0
	DefaultSourceRadius  = 30.0
	DefaultSteps         = 2000
	DefaultSampleEvery   = 10
	DefaultScale         = 3
	DefaultFPS           = 60
	DefaultStepsPerFrame = 1
)

type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Alpha     float64 `yaml:"alpha"`
	Intensity float64 `yaml:"intensity"`
	// Source is an image path. When empty a disc of SourceRadius cells is used.
	Source        string  `yaml:"source"`
	SourceRadius  float64 `yaml:"source_radius"`
	Steps         int     `yaml:"steps"`
	SampleEvery   int     `yaml:"sample_every"`
	Palette       string  `yaml:"palette"`
	Scale         int     `yaml:"scale"`
	FPS           int     `yaml:"fps"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Alpha:         DefaultAlpha,
		Intensity:     DefaultIntensity,
		SourceRadius:  DefaultSourceRadius,
		Steps:         DefaultSteps,
		SampleEvery:   DefaultSampleEvery,
		Palette:       colormap.Default,
		Scale:         DefaultScale,
		FPS:           DefaultFPS,
		StepsPerFrame: DefaultStepsPerFrame,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values a run cannot start without. It does not reject
// unstable alphas; see diffusion.Stable.
func (c *Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Width, c.Height)
	}
	if c.Alpha < 0 {
		return fmt.Errorf("alpha must be non-negative, got %f", c.Alpha)
	}
	if c.Intensity < 0 {
		return fmt.Errorf("intensity must be non-negative, got %f", c.Intensity)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if _, err := colormap.Get(c.Palette); err != nil {
		return err
	}
	return nil
}

// Clone returns a copy safe to modify.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
