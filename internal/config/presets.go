package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Width: 50, Height: 20, Interval: 50 * time.Millisecond,
	},
	"wide": {
		Width: 120, Height: 30, Interval: 50 * time.Millisecond,
	},
	"compact": {
		Width: 30, Height: 12, Interval: 50 * time.Millisecond,
	},
	"slow": {
		Width: 50, Height: 20, Interval: 200 * time.Millisecond,
	},
	"frantic": {
		Width: 50, Height: 20, Interval: 15 * time.Millisecond,
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
