package climb

import (
	"time"

	"github.com/vovakirdan/tui-climb/internal/config"
)

// Rand is the random source used by combat and generation.
// *rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// Hit describes the outcome of one attack attempt.
type Hit struct {
	Landed       bool
	Displacement float64
}

// Combat resolves attacks between the two players.
type Combat struct {
	Cooldown  time.Duration
	Freeze    time.Duration // Applied to the defender on a hit; 0 disables
	HalfWidth float64
	rng       Rand
}

// NewCombat derives combat rules from a config.
func NewCombat(cfg config.ClimbConfig, rng Rand) *Combat {
	return &Combat{
		Cooldown:  cfg.Cooldown(),
		Freeze:    cfg.Freeze(),
		HalfWidth: cfg.HalfWidth(),
		rng:       rng,
	}
}

// Attack knocks the defender sideways by a random amount in
// [-AttackPower, +AttackPower] and starts the attacker's cooldown.
// Attempts before the cooldown reaches exactly zero are ignored.
func (c *Combat) Attack(attacker, defender *Player) Hit {
	if !attacker.CanAttack() {
		return Hit{}
	}

	power := attacker.AttackPower
	displacement := -power + c.rng.Float64()*2*power

	defender.X += displacement
	defender.clampX(c.HalfWidth)
	if c.Freeze > 0 {
		defender.Freeze = c.Freeze
	}

	attacker.AttackCooldown = c.Cooldown

	return Hit{Landed: true, Displacement: displacement}
}
