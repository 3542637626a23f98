package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, SSH and CLI front ends all translate their input into actions.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - shift tiles up
	ActionDown               // S, Down arrow - shift tiles down
	ActionLeft               // A, Left arrow - shift tiles left
	ActionRight              // D, Right arrow - shift tiles right
	ActionUndo               // U - revert the last move
	ActionNewGame            // N - discard the current game
	ActionLeaderboard        // L - show the leaderboard
	ActionConfirm            // Enter - submit a prompt
	ActionBack               // Esc - close an overlay
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionNewGame:
		return "NewGame"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action shifts the board.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
