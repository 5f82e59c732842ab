package climb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-climb/internal/config"
)

func TestAttackDisplacement(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		defX     float64
		wantDisp float64
		wantX    float64
	}{
		{"midpoint roll", 0.5, 200, 0, 200},
		{"lowest roll", 0, 200, -50, 150},
		{"upper roll", 0.75, 200, 25, 225},
		{"clamped at left edge", 0, 10, -50, 0},
		{"clamped at right edge", 0.99, 360, 49, 370},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCombat(config.DefaultClimbConfig(), constRand(tc.roll))
			attacker := testPlayer(100, 2950)
			defender := testPlayer(tc.defX, 2950)

			hit := c.Attack(attacker, defender)

			assert.True(t, hit.Landed)
			assert.InDelta(t, tc.wantDisp, hit.Displacement, 1e-9)
			assert.InDelta(t, tc.wantX, defender.X, 1e-9)
			assert.Equal(t, time.Second, attacker.AttackCooldown)
		})
	}
}

func TestAttackGatedByCooldown(t *testing.T) {
	c := NewCombat(config.DefaultClimbConfig(), constRand(0))
	attacker := testPlayer(100, 2950)
	defender := testPlayer(200, 2950)

	attacker.AttackCooldown = time.Millisecond
	hit := c.Attack(attacker, defender)

	assert.False(t, hit.Landed)
	assert.Equal(t, 200.0, defender.X)
	assert.Equal(t, time.Millisecond, attacker.AttackCooldown, "a refused attack does not restart the cooldown")
}

func TestAttackAppliesFreeze(t *testing.T) {
	cfg := config.DefaultClimbConfig()
	cfg.Combat.FreezeMS = 300

	c := NewCombat(cfg, constRand(0.5))
	attacker := testPlayer(100, 2950)
	defender := testPlayer(200, 2950)

	c.Attack(attacker, defender)
	assert.Equal(t, 300*time.Millisecond, defender.Freeze)
	assert.Equal(t, time.Duration(0), attacker.Freeze)
}

func TestAttackNoFreezeByDefault(t *testing.T) {
	c := NewCombat(config.DefaultClimbConfig(), constRand(0.5))
	defender := testPlayer(200, 2950)

	c.Attack(testPlayer(100, 2950), defender)
	assert.Equal(t, time.Duration(0), defender.Freeze)
}

func TestAttackStaysInRange(t *testing.T) {
	c := NewCombat(config.DefaultClimbConfig(), testRNG())
	for i := 0; i < 500; i++ {
		attacker := testPlayer(100, 2950)
		defender := testPlayer(185, 2950)

		hit := c.Attack(attacker, defender)
		assert.GreaterOrEqual(t, hit.Displacement, -50.0)
		assert.Less(t, hit.Displacement, 50.0)
	}
}
