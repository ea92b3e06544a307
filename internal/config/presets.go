package config

import "sort"

var Presets = map[string]*Config{
	// reference uses the classic constants: 320x240, alpha 0.25,
	// source intensity 0.01.
	"reference": {
		Width: 320, Height: 240, Alpha: 0.25, Intensity: 0.01, SourceRadius: 30,
		Steps: 2000, SampleEvery: 10, Palette: "inferno", Scale: 3, FPS: 60, StepsPerFrame: 1,
	},
	"gentle": {
		Width: 320, Height: 240, Alpha: 0.1, Intensity: 1.0, SourceRadius: 20,
		Steps: 5000, SampleEvery: 25, Palette: "inferno", Scale: 3, FPS: 60, StepsPerFrame: 4,
	},
	"sharp": {
		Width: 320, Height: 240, Alpha: 0.25, Intensity: 1.0, SourceRadius: 6,
		Steps: 3000, SampleEvery: 10, Palette: "rainbow", Scale: 3, FPS: 60, StepsPerFrame: 2,
	},
	"tiny": {
		Width: 40, Height: 30, Alpha: 0.2, Intensity: 0.8, SourceRadius: 4,
		Steps: 500, SampleEvery: 5, Palette: "grayscale", Scale: 16, FPS: 30, StepsPerFrame: 1,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
