package core

// PlayerID identifies one of the two seats at the shared keyboard.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// String returns a short label for the seat.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "-"
	}
}

// Other returns the opposing seat.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// Index returns the zero-based slot for the seat, or -1.
func (p PlayerID) Index() int {
	switch p {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		return -1
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // held: move left
	ActionRight          // held: move right
	ActionJump           // pressed: jump if grounded
	ActionAttack         // pressed: knock the opponent
	ActionPause          // P - toggle pause
	ActionRematch        // R - back to the menu keeping the tally
	ActionRestart        // X - reset the tally and return to the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionPause:
		return "Pause"
	case ActionRematch:
		return "Rematch"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is sampled as continuous key state
// rather than as a discrete press.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight
}
