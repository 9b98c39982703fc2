package config

import "sort"

// Presets pair a seed pattern with a field large enough for it to play out.
var Presets = map[string]*Config{
	"blinker": {
		Width: 5, Height: 5, TicksPerSecond: 2, Pattern: "blinker", Generations: 10,
	},
	"pulsar": {
		Width: 17, Height: 17, TicksPerSecond: 4, Pattern: "pulsar", Generations: 30,
	},
	"glider": {
		Width: 20, Height: 20, TicksPerSecond: 8, Pattern: "glider", Generations: 80,
	},
	"lwss": {
		Width: 40, Height: 9, TicksPerSecond: 8, Pattern: "lwss", Generations: 60,
	},
	"r-pentomino": {
		Width: 80, Height: 60, TicksPerSecond: 15, Pattern: "r-pentomino", Generations: 1200,
	},
	"acorn": {
		Width: 100, Height: 80, TicksPerSecond: 20, Pattern: "acorn", Generations: 2000,
	},
	"diehard": {
		Width: 40, Height: 30, TicksPerSecond: 10, Pattern: "diehard", Generations: 140,
	},
	"soup": {
		Width: 60, Height: 30, TicksPerSecond: 10, Pattern: "random", Seed: 42, Density: DefaultDensity, Generations: 500,
	},
}

// GetPreset returns a copy of the named preset with unset fields defaulted.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.Density == 0 {
		cfg.Density = DefaultDensity
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
