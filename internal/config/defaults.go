package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the built-in configuration.
// It mirrors defaults/climb.yaml and is used when the embedded file cannot be parsed.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Physics: PhysicsConfig{
			Gravity:          0.6,
			JumpAcceleration: -12,
			PlayerSpeed:      5,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 50,
			P1:     SeatConfig{StartX: 150, Color: "red", Label: "P1"},
			P2:     SeatConfig{StartX: 370, Color: "blue", Label: "P2"},
		},
		World: WorldConfig{
			Height:       3000,
			GroundHeight: 20,
			GoalHeight:   -2000,
		},
		Platforms: PlatformConfig{
			Width:        100,
			Height:       20,
			Spacing:      100,
			InitialCount: 20,
			FirstOffset:  100,
			Margin:       50,
		},
		Combat: CombatConfig{
			CooldownMS:   1000,
			Displacement: 50,
		},
		Viewport: ViewportConfig{
			CanvasWidth:  820,
			CanvasHeight: 800,
			DividerWidth: 20,
		},
		Timing: TimingConfig{
			MaxElapsedMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClimbYAML
}
