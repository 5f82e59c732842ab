package config

import "fmt"

// Preset is a named variation of the match rules.
type Preset string

const (
	PresetClassic  Preset = "classic"  // Defaults as shipped
	PresetSprint   Preset = "sprint"   // Short race
	PresetMarathon Preset = "marathon" // Long race with platform pruning
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetSprint, PresetMarathon}
}

// ParsePreset validates a preset name. The empty string means classic.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetClassic, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want classic, sprint or marathon)", name)
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *ClimbConfig, preset Preset) {
	switch preset {
	case PresetSprint:
		cfg.World.GoalHeight = cfg.World.Height - 4000
	case PresetMarathon:
		cfg.World.GoalHeight = cfg.World.Height - 12000
		if cfg.Platforms.PruneBelow == 0 {
			// Two viewports below the slower player is never visible again
			cfg.Platforms.PruneBelow = 2 * cfg.Viewport.CanvasHeight
		}
	}
}
