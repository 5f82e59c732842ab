package climb

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
)

func TestRenderMenu(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), testRNG())
	screen := core.NewScreen(60, 20)

	rs := s.Snapshot()
	assert.Empty(t, rs.Players)
	assert.Empty(t, rs.Platforms)

	Render(rs, screen)
	assert.Contains(t, screen.String(), "SPLIT CLIMB")
}

func TestRenderSplitScreen(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), testRNG())
	require.True(t, s.Start("", ""))

	screen := core.NewScreen(81, 24)
	Render(s.Snapshot(), screen)

	top := screen.Row(0)
	assert.True(t, strings.HasPrefix(top, "P1 Player 1  wins 0  alt 0"), "row 0 = %q", top)
	assert.Contains(t, top, "P2 Player 2  wins 0  alt 0")

	bottom := screen.Row(23)
	assert.Equal(t, 2, strings.Count(bottom, "Ready to attack"))

	for y := 0; y < screen.Height(); y++ {
		assert.Equal(t, DividerChar, screen.Get(40, y), "divider at row %d", y)
	}

	left, right := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != PlayerChar {
				continue
			}
			if x < 40 {
				left++
			} else {
				right++
			}
		}
	}
	assert.Positive(t, left, "player 1 is drawn in the left view")
	assert.Positive(t, right, "player 2 is drawn in the right view")

	assert.Contains(t, screen.String(), string(GroundChar))
	assert.Contains(t, screen.String(), string(PlatformChar))
}

func TestRenderPlayerColor(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), testRNG())
	require.True(t, s.Start("", ""))

	screen := core.NewScreen(81, 24)
	Render(s.Snapshot(), screen)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < 40; x++ {
			if c := screen.GetCell(x, y); c.Rune == PlayerChar {
				assert.Equal(t, core.ColorRed, c.Color)
			}
		}
	}
}

func TestRenderCooldownHUD(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), constRand(0.5))
	require.True(t, s.Start("", ""))
	s.Tick(Frame{P1: Input{Attack: true}}, frame)
	for range 5 {
		s.Tick(Frame{}, 100*time.Millisecond)
	}
	s.Tick(Frame{}, 80*time.Millisecond)

	screen := core.NewScreen(81, 24)
	Render(s.Snapshot(), screen)

	bottom := screen.Row(23)
	assert.True(t, strings.HasPrefix(bottom, "Cooldown: 0.42s"), "bottom = %q", bottom)
	assert.Contains(t, bottom, "Ready to attack")
}

func TestRenderOverlays(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), testRNG())
	require.True(t, s.Start("Alice", "Bob"))

	screen := core.NewScreen(81, 24)

	s.Tick(Frame{Pause: true}, frame)
	Render(s.Snapshot(), screen)
	assert.Contains(t, screen.String(), "PAUSED")

	s.Tick(Frame{Pause: true}, frame)
	s.Player(Player2).Y = -2100
	s.Tick(Frame{}, frame)

	Render(s.Snapshot(), screen)
	out := screen.String()
	assert.Contains(t, out, "Bob Wins!")
	assert.Contains(t, out, "Alice 0 - 1 Bob")
}

func TestRenderTinyScreen(t *testing.T) {
	s := NewSession(config.DefaultClimbConfig(), testRNG())
	require.True(t, s.Start("", ""))

	screen := core.NewScreen(2, 2)
	assert.NotPanics(t, func() { Render(s.Snapshot(), screen) })
}
