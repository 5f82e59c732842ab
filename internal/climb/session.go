package climb

import (
	"strings"
	"time"

	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
)

// State is the coarse phase of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateEndgame
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateEndgame:
		return "Endgame"
	default:
		return "Unknown"
	}
}

// Default display names used when a start command carries empty names.
const (
	DefaultName1 = "Player 1"
	DefaultName2 = "Player 2"
)

// Frame is the complete input for one tick.
type Frame struct {
	P1, P2  Input
	Restart bool // Reset tallies and return to the menu
	Rematch bool // Return to the menu keeping tallies (Endgame only)
	Pause   bool // Toggle pause (Playing only)
}

// Player returns the input of the given seat.
func (f Frame) Player(id core.PlayerID) Input {
	if id == Player2 {
		return f.P2
	}
	return f.P1
}

// Seat aliases for callers that only import climb.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// TickResult reports what happened during one tick.
type TickResult struct {
	State  State
	Ended  bool          // The match ended during this tick
	Winner core.PlayerID // Set once the match has ended
	Hits   [2]Hit        // Attack outcomes, indexed by attacker seat
	Added  int           // Platforms generated
	Pruned int           // Platforms dropped by the pruning window
}

// Session owns the whole game: state machine, players, world and tallies.
// It is not safe for concurrent use; one driver calls Tick per frame.
type Session struct {
	cfg     config.ClimbConfig
	pending *config.ClimbConfig
	rng     Rand

	state   State
	players [2]*Player
	world   *World
	physics Physics
	combat  *Combat
	gen     *Generator

	names  [2]string
	wins   [2]int
	winner core.PlayerID
	paused bool

	ticks   uint64
	elapsed time.Duration
}

// NewSession creates a session in the menu state.
func NewSession(cfg config.ClimbConfig, rng Rand) *Session {
	return &Session{
		cfg:   cfg,
		rng:   rng,
		state: StateMenu,
		names: [2]string{DefaultName1, DefaultName2},
	}
}

// SetConfig stages a configuration for the next match.
// A running match keeps the rules it started with.
func (s *Session) SetConfig(cfg config.ClimbConfig) {
	if s.state == StateMenu {
		s.cfg = cfg
		s.pending = nil
		return
	}
	s.pending = &cfg
}

// Config returns the configuration of the current (or next) match.
func (s *Session) Config() config.ClimbConfig {
	return s.cfg
}

// Start transitions Menu -> Playing: spawns both players and the initial
// ladder. Empty names fall back to the defaults. Returns false outside Menu.
func (s *Session) Start(name1, name2 string) bool {
	if s.state != StateMenu {
		return false
	}
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
	}

	s.names = [2]string{nameOr(name1, DefaultName1), nameOr(name2, DefaultName2)}

	s.physics = NewPhysics(s.cfg)
	s.combat = NewCombat(s.cfg, s.rng)
	s.gen = NewGenerator(s.cfg, s.rng)

	s.world = NewWorld(s.cfg.World.Height, s.cfg.World.GroundHeight)
	s.gen.Initial(s.world)

	s.players = [2]*Player{
		newPlayer(Player1, s.names[0], s.cfg.Player.P1, s.cfg),
		newPlayer(Player2, s.names[1], s.cfg.Player.P2, s.cfg),
	}

	s.winner = core.PlayerNone
	s.paused = false
	s.ticks = 0
	s.elapsed = 0
	s.state = StatePlaying
	return true
}

// Tick advances the session by one frame.
func (s *Session) Tick(f Frame, elapsed time.Duration) TickResult {
	if f.Restart {
		s.Reset()
		return TickResult{State: s.state}
	}

	switch s.state {
	case StateEndgame:
		if f.Rematch {
			s.Rematch()
		}
		return TickResult{State: s.state, Winner: s.winner}
	case StatePlaying:
		// handled below
	default:
		return TickResult{State: s.state}
	}

	if f.Pause {
		s.paused = !s.paused
	}
	if s.paused {
		return TickResult{State: s.state}
	}

	elapsed = s.clampElapsed(elapsed)
	s.ticks++
	s.elapsed += elapsed

	var res TickResult

	for _, p := range s.players {
		s.physics.Update(p, s.world, elapsed, f.Player(p.ID))
	}

	for i, p := range s.players {
		if f.Player(p.ID).Attack {
			res.Hits[i] = s.combat.Attack(p, s.players[1-i])
		}
	}

	before := s.world.Len()
	if s.gen.Extend(s.world, s.players[:], s.cfg.Viewport.CanvasHeight) {
		res.Added = s.world.Len() - before
	}

	if window := s.cfg.Platforms.PruneBelow; window > 0 {
		res.Pruned = s.world.PruneBelow(s.lowestPlayerY() + window)
		// A player knocked below the pruned band needs the ladder back
		if s.gen.Backfill(s.world, s.players[:]) {
			res.Added++
		}
	}

	// Player 1 is checked first; a simultaneous crossing goes to Player 1.
	for i, p := range s.players {
		if p.Y < s.cfg.World.GoalHeight {
			s.winner = p.ID
			s.wins[i]++
			s.state = StateEndgame
			res.Ended = true
			break
		}
	}

	res.State = s.state
	res.Winner = s.winner
	return res
}

// Reset returns to the menu from any state, zeroing the tallies and
// discarding the players and the world.
func (s *Session) Reset() {
	s.wins = [2]int{}
	s.toMenu()
}

// Rematch returns from Endgame to the menu keeping the tallies.
func (s *Session) Rematch() bool {
	if s.state != StateEndgame {
		return false
	}
	s.toMenu()
	return true
}

func (s *Session) toMenu() {
	s.state = StateMenu
	s.players = [2]*Player{}
	s.world = nil
	s.winner = core.PlayerNone
	s.paused = false
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
	}
}

// clampElapsed bounds a frame delta to [0, MaxElapsed] so that a stalled
// frame clock cannot expire timers in a single step.
func (s *Session) clampElapsed(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if limit := s.cfg.MaxElapsed(); limit > 0 && elapsed > limit {
		return limit
	}
	return elapsed
}

// lowestPlayerY returns the largest Y among the players.
func (s *Session) lowestPlayerY() float64 {
	return max(s.players[0].Y, s.players[1].Y)
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether a running match is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Player returns the player in the given seat, or nil outside a match.
func (s *Session) Player(id core.PlayerID) *Player {
	i := id.Index()
	if i < 0 {
		return nil
	}
	return s.players[i]
}

// World returns the current world, or nil in the menu.
func (s *Session) World() *World {
	return s.world
}

// Names returns the display names of both seats.
func (s *Session) Names() [2]string {
	return s.names
}

// Wins returns the cumulative win counters.
func (s *Session) Wins() [2]int {
	return s.wins
}

// Winner returns the winner of the last match, or PlayerNone.
func (s *Session) Winner() core.PlayerID {
	return s.winner
}

// Ticks returns the number of simulated ticks in the current match.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Elapsed returns the simulated time of the current match.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

func nameOr(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallback
}
