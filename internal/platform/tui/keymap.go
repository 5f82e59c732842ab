package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climb/internal/core"
)

// SeatKeys are the bindings of one player at the shared keyboard.
type SeatKeys struct {
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Attack key.Binding
}

// KeyMap defines the fixed key bindings of a match.
type KeyMap struct {
	P1         SeatKeys
	P2         SeatKeys
	Pause      key.Binding
	Rematch    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// MenuKeyMap defines the key bindings of the name entry screen.
type MenuKeyMap struct {
	Start      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.P1.Left, k.P1.Jump, k.P1.Attack,
		k.P2.Left, k.P2.Jump, k.P2.Attack,
		k.Pause, k.Rematch, k.Restart, k.Quit,
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Left, k.P1.Right, k.P1.Jump, k.P1.Attack},
		{k.P2.Left, k.P2.Right, k.P2.Jump, k.P2.Attack},
		{k.Pause, k.Rematch, k.Restart, k.Screenshot, k.Quit},
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.NextField, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.NextField, k.PrevField, k.Screenshot, k.Quit}}
}

// DefaultKeyMap returns the match bindings: WASD-style keys plus Z for the
// left player and the arrow keys plus slash for the right player.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1: SeatKeys{
			Left:   key.NewBinding(key.WithKeys("a", "A"), key.WithHelp("a/d", "P1 move")),
			Right:  key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "P1 right")),
			Jump:   key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w", "P1 jump")),
			Attack: key.NewBinding(key.WithKeys("z", "Z"), key.WithHelp("z", "P1 attack")),
		},
		P2: SeatKeys{
			Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "P2 move")),
			Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
			Jump:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 jump")),
			Attack: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "P2 attack")),
		},
		Pause: key.NewBinding(
			key.WithKeys("p", "P", "esc"),
			key.WithHelp("p", "pause"),
		),
		Rematch: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rematch"),
		),
		Restart: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "reset tally"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultMenuKeyMap returns the name entry bindings.
// Letters are left to the text inputs.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next name"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev name"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Resolve translates a key message to the seat and action it controls.
// Global actions report PlayerNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.PlayerNone, core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.PlayerNone, core.ActionPause
	case key.Matches(msg, k.Rematch):
		return core.PlayerNone, core.ActionRematch
	case key.Matches(msg, k.Restart):
		return core.PlayerNone, core.ActionRestart
	}

	for _, seat := range []core.PlayerID{core.Player1, core.Player2} {
		keys := k.seat(seat)
		switch {
		case key.Matches(msg, keys.Left):
			return seat, core.ActionLeft
		case key.Matches(msg, keys.Right):
			return seat, core.ActionRight
		case key.Matches(msg, keys.Jump):
			return seat, core.ActionJump
		case key.Matches(msg, keys.Attack):
			return seat, core.ActionAttack
		}
	}

	return core.PlayerNone, core.ActionNone
}

func (k KeyMap) seat(id core.PlayerID) SeatKeys {
	if id == core.Player2 {
		return k.P2
	}
	return k.P1
}
