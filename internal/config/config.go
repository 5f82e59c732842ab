// Package config provides YAML-based configuration loading, presets and hot
// reload for the climb game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ClimbConfig contains every tunable constant of a match.
// Units are world pixels (Y grows downwards) and milliseconds.
type ClimbConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	World     WorldConfig    `yaml:"world"`
	Platforms PlatformConfig `yaml:"platforms"`
	Combat    CombatConfig   `yaml:"combat"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Timing    TimingConfig   `yaml:"timing"`
}

// PhysicsConfig defines per-tick kinematics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Added to velocityY every tick
	JumpAcceleration float64 `yaml:"jump_acceleration"` // velocityY on jump (negative = up)
	PlayerSpeed      float64 `yaml:"player_speed"`      // Horizontal step per tick while held
}

// PlayerConfig defines the player hitbox and the two seats.
type PlayerConfig struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	P1     SeatConfig `yaml:"p1"`
	P2     SeatConfig `yaml:"p2"`
}

// SeatConfig defines the identity and spawn point of one player.
type SeatConfig struct {
	StartX float64 `yaml:"start_x"`
	Color  string  `yaml:"color"`
	Label  string  `yaml:"label"`
}

// WorldConfig defines the vertical extent of the world.
type WorldConfig struct {
	Height       float64 `yaml:"height"`        // Y of the floor
	GroundHeight float64 `yaml:"ground_height"` // Thickness of the drawn ground strip
	GoalHeight   float64 `yaml:"goal_height"`   // A player above this Y wins
}

// PlatformConfig defines platform size and the generator.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Spacing      float64 `yaml:"spacing"`       // Vertical distance between generated platforms
	InitialCount int     `yaml:"initial_count"` // Platforms in the starting ladder
	FirstOffset  float64 `yaml:"first_offset"`  // Distance of the lowest platform above the floor
	Margin       float64 `yaml:"margin"`        // Horizontal margin kept free at both sides
	PruneBelow   float64 `yaml:"prune_below"`   // Drop platforms this far below the lowest player; 0 keeps all
}

// CombatConfig defines the attack.
type CombatConfig struct {
	CooldownMS   int     `yaml:"cooldown_ms"`
	Displacement float64 `yaml:"displacement"` // Max horizontal knock in either direction
	FreezeMS     int     `yaml:"freeze_ms"`    // Horizontal freeze applied to the defender; 0 disables
}

// ViewportConfig defines the logical canvas that is split in two halves.
type ViewportConfig struct {
	CanvasWidth  float64 `yaml:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height"`
	DividerWidth float64 `yaml:"divider_width"`
}

// TimingConfig bounds the frame clock.
type TimingConfig struct {
	MaxElapsedMS int `yaml:"max_elapsed_ms"` // Upper bound for one tick's elapsed time
}

// HalfWidth returns the width of one player's half of the canvas.
func (c ClimbConfig) HalfWidth() float64 {
	return c.Viewport.CanvasWidth/2 - c.Viewport.DividerWidth/2
}

// Cooldown returns the attack cooldown as a duration.
func (c ClimbConfig) Cooldown() time.Duration {
	return time.Duration(c.Combat.CooldownMS) * time.Millisecond
}

// Freeze returns the freeze applied by a successful attack.
func (c ClimbConfig) Freeze() time.Duration {
	return time.Duration(c.Combat.FreezeMS) * time.Millisecond
}

// MaxElapsed returns the cap for a single tick's elapsed time.
func (c ClimbConfig) MaxElapsed() time.Duration {
	return time.Duration(c.Timing.MaxElapsedMS) * time.Millisecond
}

// Validate reports configurations that cannot produce a playable match.
func (c ClimbConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		errs = append(errs, fmt.Errorf("platform size must be positive, got %vx%v", c.Platforms.Width, c.Platforms.Height))
	}
	if c.Platforms.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("platform spacing must be positive, got %v", c.Platforms.Spacing))
	}
	if c.Platforms.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("initial platform count must not be negative, got %d", c.Platforms.InitialCount))
	}
	if c.HalfWidth() < c.Player.Width {
		errs = append(errs, fmt.Errorf("half canvas width %v is narrower than the player", c.HalfWidth()))
	}
	if c.Viewport.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas height must be positive, got %v", c.Viewport.CanvasHeight))
	}
	if c.World.GoalHeight >= c.World.Height-c.Player.Height {
		errs = append(errs, fmt.Errorf("goal height %v is not above the spawn floor", c.World.GoalHeight))
	}
	if c.Combat.CooldownMS < 0 || c.Combat.FreezeMS < 0 {
		errs = append(errs, errors.New("combat durations must not be negative"))
	}
	if c.Timing.MaxElapsedMS <= 0 {
		errs = append(errs, fmt.Errorf("max elapsed must be positive, got %d", c.Timing.MaxElapsedMS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid climb config: %w", errors.Join(errs...))
	}
	return nil
}
