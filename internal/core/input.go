package core

// Action represents a semantic game command, abstracted from physical key presses.
// Platforms translate keys (or window events) into actions; the engine never sees keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - shift piece left
	ActionRight            // Right arrow, l - shift piece right
	ActionSoftDrop         // Down arrow, j - advance one row
	ActionHardDrop         // Up arrow - drop to the floor and lock
	ActionRotate           // Space, x, k - rotate clockwise
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R key - reset the game
	ActionQuit             // Q, Ctrl+C - exit
	ActionHelp             // ? - toggle key help
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action is one of the commands the engine accepts.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionHardDrop,
		ActionRotate, ActionPause, ActionRestart:
		return true
	}
	return false
}
