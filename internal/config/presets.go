package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"tiny": {
		N: 8, MinVal: 1, MaxVal: 9, Width: DefaultWidth, Height: DefaultHeight, TickRate: 8,
		Algorithm: "insertion", Direction: DefaultDirection, Theme: DefaultTheme,
	},
	"dense": {
		N: 140, MinVal: 0, MaxVal: 100, Width: 1200, Height: 700, TickRate: 240,
		Algorithm: "merge", Direction: DefaultDirection, Theme: "midnight",
	},
	"duplicates": {
		N: 50, MinVal: 0, MaxVal: 5, Width: DefaultWidth, Height: DefaultHeight, TickRate: DefaultTickRate,
		Algorithm: "merge", Direction: DefaultDirection, Theme: DefaultTheme,
	},
	"wide": {
		N: 100, MinVal: 0, MaxVal: 250, Width: 1600, Height: 900, TickRate: 120,
		Algorithm: "quick", Direction: "descending", Theme: "ocean",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
