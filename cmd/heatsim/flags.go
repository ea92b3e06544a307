package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/viz"
)

func addSimFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.Flags()
	f.IntVar(&width, "width", d.Width, "grid width in cells")
	f.IntVar(&height, "height", d.Height, "grid height in cells")
	f.Float64Var(&alpha, "alpha", d.Alpha, "diffusion rate (stable up to 0.25)")
	f.Float64Var(&intensity, "intensity", d.Intensity, "source intensity k")
	f.StringVar(&sourcePath, "source", "", "grayscale source image (default: centred disc)")
	f.Float64Var(&sourceRadius, "radius", d.SourceRadius, "disc radius when no image is given")
	f.IntVar(&steps, "steps", d.Steps, "number of steps")
	f.IntVar(&sampleEvery, "sample-every", d.SampleEvery, "record stats every N steps")
	f.StringVar(&palette, "palette", d.Palette, "palette name")
	f.IntVar(&scale, "scale", d.Scale, "pixels per cell")
	f.IntVar(&frameRate, "fps", d.FPS, "frame rate")
	f.IntVar(&stepsPerFrame, "steps-per-frame", d.StepsPerFrame, "steps per rendered frame")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("alpha") {
		cfg.Alpha = alpha
	}
	if flags.Changed("intensity") {
		cfg.Intensity = intensity
	}
	if flags.Changed("source") {
		cfg.Source = sourcePath
	}
	if flags.Changed("radius") {
		cfg.SourceRadius = sourceRadius
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("sample-every") {
		cfg.SampleEvery = sampleEvery
	}
	if flags.Changed("palette") {
		cfg.Palette = palette
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("steps-per-frame") {
		cfg.StepsPerFrame = stepsPerFrame
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	warnUnstable(cfg.Alpha)
	return cfg, nil
}

func warnUnstable(a float64) {
	if !diffusion.Stable(a) {
		fmt.Fprintln(os.Stderr, viz.Warning.Render(
			fmt.Sprintf("warning: alpha %.3f exceeds %.2f, the simulation will diverge", a, diffusion.MaxStableAlpha)))
	}
}
