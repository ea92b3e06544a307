package config

import (
	"fmt"
	"math"
	"sort"
)

var numericParams = map[string]func(c *Config, v float64){
	"alpha":         func(c *Config, v float64) { c.Alpha = v },
	"intensity":     func(c *Config, v float64) { c.Intensity = v },
	"source_radius": func(c *Config, v float64) { c.SourceRadius = v },
	"width":         func(c *Config, v float64) { c.Width = int(math.Round(v)) },
	"height":        func(c *Config, v float64) { c.Height = int(math.Round(v)) },
	"steps":         func(c *Config, v float64) { c.Steps = int(math.Round(v)) },
}

// SetParam sets a numeric field by its YAML name.
func (c *Config) SetParam(name string, v float64) error {
	set, ok := numericParams[name]
	if !ok {
		return fmt.Errorf("unknown parameter: %s (available: %v)", name, ParamNames())
	}
	set(c, v)
	return nil
}

func ParamNames() []string {
	names := make([]string, 0, len(numericParams))
	for name := range numericParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
