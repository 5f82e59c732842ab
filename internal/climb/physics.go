package climb

import (
	"time"

	"github.com/vovakirdan/tui-climb/internal/config"
)

// Physics integrates player movement one tick at a time.
// Velocities are per tick; only timers consume elapsed time.
type Physics struct {
	Gravity          float64
	JumpAcceleration float64
	HalfWidth        float64
}

// NewPhysics derives the physics constants from a config.
func NewPhysics(cfg config.ClimbConfig) Physics {
	return Physics{
		Gravity:          cfg.Physics.Gravity,
		JumpAcceleration: cfg.Physics.JumpAcceleration,
		HalfWidth:        cfg.HalfWidth(),
	}
}

// Update advances one player by one tick against the world.
func (ph Physics) Update(p *Player, world *World, elapsed time.Duration, in Input) {
	if in.Jump && !p.Jumping {
		p.VelocityY = ph.JumpAcceleration
		p.Jumping = true
	}

	if p.Freeze <= 0 {
		if in.Left {
			p.X -= p.Speed
		}
		if in.Right {
			p.X += p.Speed
		}
	} else {
		p.Freeze = decay(p.Freeze, elapsed)
	}

	p.VelocityY += ph.Gravity

	ph.resolvePlatforms(p, world.Platforms())

	p.Y += p.VelocityY

	if floor := world.Height() - p.H; p.Y >= floor {
		p.Y = floor
		p.VelocityY = 0
		p.Jumping = false
	}

	p.AttackCooldown = decay(p.AttackCooldown, elapsed)

	p.clampX(ph.HalfWidth)
}

// resolvePlatforms applies the first matching case per platform, in order.
// Landing ends the scan for this tick.
func (ph Physics) resolvePlatforms(p *Player, platforms []Platform) {
	for _, pl := range platforms {
		box := pl.Box()
		if !p.Box().OverlapsX(box) {
			continue
		}

		switch {
		case p.Bottom() <= box.Y && p.Bottom()+p.VelocityY > box.Y:
			p.Y = box.Y - p.H
			p.VelocityY = 0
			p.Jumping = false
			return

		case p.Y >= box.Bottom() && p.Y+p.VelocityY < box.Bottom():
			p.Y = box.Bottom()
			p.VelocityY = 0

		case p.Box().OverlapsY(box):
			if p.X < box.X {
				p.X = box.X - p.W
			} else {
				p.X = box.Right()
			}
		}
	}
}
