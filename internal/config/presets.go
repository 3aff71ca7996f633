package config

import "sort"

// Presets are named presentation profiles selectable with --preset.
var Presets = map[string]*Config{
	"compact": {
		Theme: "minimal", LogLevel: DefaultLogLevel, ExportFormat: "csv",
		Plot: PlotConfig{Width: 40, Height: 8, Points: 20},
	},
	"wide": {
		Theme: "ocean", LogLevel: DefaultLogLevel, ExportFormat: "json",
		Plot: PlotConfig{Width: 120, Height: 25, Points: 120},
	},
	"debug": {
		Theme: "minimal", LogLevel: "debug", ExportFormat: "yaml",
		Plot: PlotConfig{Width: DefaultPlotWidth, Height: DefaultPlotHeight, Points: DefaultPlotPoints},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
