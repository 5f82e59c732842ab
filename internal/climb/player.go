package climb

import (
	"time"

	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
)

// Input is one player's sampled input for a single tick.
// Left and Right are held state; Jump and Attack are presses since the last tick.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// Player is the kinematic and combat state of one climber.
type Player struct {
	ID    core.PlayerID
	Name  string
	Label string
	Color core.Color

	X, Y      float64 // Top-left corner in world units
	W, H      float64
	VelocityY float64
	Speed     float64
	Jumping   bool

	AttackCooldown time.Duration // Time until the next attack is allowed
	Freeze         time.Duration // Horizontal input is ignored while > 0
	AttackPower    float64       // Max displacement applied to the opponent
}

// newPlayer spawns a player standing on the floor.
func newPlayer(id core.PlayerID, name string, seat config.SeatConfig, cfg config.ClimbConfig) *Player {
	color, ok := core.ParseColor(seat.Color)
	if !ok {
		color = core.ColorWhite
	}
	p := &Player{
		ID:          id,
		Name:        name,
		Label:       seat.Label,
		Color:       color,
		X:           seat.StartX,
		Y:           cfg.World.Height - cfg.Player.Height,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Speed:       cfg.Physics.PlayerSpeed,
		AttackPower: cfg.Combat.Displacement,
	}
	p.clampX(cfg.HalfWidth())
	return p
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Bottom returns the Y of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + p.H
}

// Altitude returns how far the player's feet are above the floor.
func (p *Player) Altitude(worldHeight float64) float64 {
	return worldHeight - p.Bottom()
}

// CanAttack reports whether the cooldown has fully elapsed.
func (p *Player) CanAttack() bool {
	return p.AttackCooldown == 0
}

// clampX keeps the player inside its half of the split screen.
func (p *Player) clampX(halfWidth float64) {
	p.X = core.ClampF(p.X, 0, halfWidth-p.W)
}

// decay subtracts elapsed from a timer, flooring at zero.
func decay(d, elapsed time.Duration) time.Duration {
	if d <= elapsed {
		return 0
	}
	return d - elapsed
}
