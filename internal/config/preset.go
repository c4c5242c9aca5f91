package config

import "fmt"

// Preset represents a named colony tuning.
type Preset string

const (
	PresetCalm   Preset = "calm"
	PresetNormal Preset = "normal"
	PresetSwarm  Preset = "swarm"
	PresetSiege  Preset = "siege"
)

// Presets lists every preset in display order.
func Presets() []Preset {
	return []Preset{PresetCalm, PresetNormal, PresetSwarm, PresetSiege}
}

// ParsePreset converts a flag value into a Preset. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	if s == "" {
		return PresetNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// ApplyPreset modifies the config based on a preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *ColonyConfig, preset Preset) {
	switch preset {
	case PresetCalm:
		cfg.Spawn.LeafOneIn = 6
		cfg.Spawn.SpiderOneIn = 400
	case PresetSwarm:
		cfg.AntCount *= 2
		cfg.Spawn.LeafOneIn = 4
	case PresetSiege:
		cfg.AntCount += cfg.AntCount / 2
		cfg.Spawn.SpiderOneIn = 25
	}
}
