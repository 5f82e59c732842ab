package climb

import (
	"time"

	"github.com/vovakirdan/tui-climb/internal/core"
)

// PlayerView is the renderable state of one player.
type PlayerView struct {
	ID       core.PlayerID
	Name     string
	Label    string
	Color    core.Color
	X, Y     float64
	W, H     float64
	Altitude float64
	Cooldown time.Duration
	Frozen   bool
}

// RenderState is everything a renderer needs for one frame.
// Players and Platforms are empty in the menu.
type RenderState struct {
	State  State
	Paused bool
	Winner core.PlayerID
	Names  [2]string
	Wins   [2]int
	Tick   uint64

	Players   []PlayerView
	Platforms []Platform

	WorldHeight    float64
	GroundHeight   float64
	GoalHeight     float64
	HalfWidth      float64
	ViewportHeight float64
}

// Snapshot captures the current render state. Platforms are copied.
func (s *Session) Snapshot() RenderState {
	rs := RenderState{
		State:          s.state,
		Paused:         s.paused,
		Winner:         s.winner,
		Names:          s.names,
		Wins:           s.wins,
		Tick:           s.ticks,
		WorldHeight:    s.cfg.World.Height,
		GroundHeight:   s.cfg.World.GroundHeight,
		GoalHeight:     s.cfg.World.GoalHeight,
		HalfWidth:      s.cfg.HalfWidth(),
		ViewportHeight: s.cfg.Viewport.CanvasHeight,
	}
	if s.world == nil {
		return rs
	}

	rs.WorldHeight = s.world.Height()
	rs.GroundHeight = s.world.GroundHeight()
	rs.Platforms = append([]Platform(nil), s.world.Platforms()...)
	for _, p := range s.players {
		rs.Players = append(rs.Players, PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			Label:    p.Label,
			Color:    p.Color,
			X:        p.X,
			Y:        p.Y,
			W:        p.W,
			H:        p.H,
			Altitude: p.Altitude(s.world.Height()),
			Cooldown: p.AttackCooldown,
			Frozen:   p.Freeze > 0,
		})
	}
	return rs
}

// Player returns the view of the given seat.
func (rs RenderState) Player(id core.PlayerID) (PlayerView, bool) {
	for _, p := range rs.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerView{}, false
}

// WinnerName returns the display name of the winner, or "".
func (rs RenderState) WinnerName() string {
	if i := rs.Winner.Index(); i >= 0 {
		return rs.Names[i]
	}
	return ""
}
