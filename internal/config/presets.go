package config

import "sort"

// Presets are the built-in named reading rates in words per minute.
var Presets = map[string]int{
	"slow":   150,
	"normal": 250,
	"fast":   400,
	"pro":    600,
}

func GetPreset(name string) (int, bool) {
	wpm, ok := Presets[name]
	return wpm, ok
}

func sortedByRate(presets map[string]int) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := presets[names[i]], presets[names[j]]
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
	return names
}
