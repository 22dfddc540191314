package core

// Action represents a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P, Escape - toggle pause
	ActionRestart        // R - reset to a fresh run
	ActionDismiss        // Enter, Space - close the mini-game overlay
	ActionRuns           // Tab - session runs board
	ActionQuit           // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionDismiss:
		return "Dismiss"
	case ActionRuns:
		return "Runs"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four direction keys.
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the input snapshot consumed by one simulation tick.
// DirX and DirY are each -1, 0 or +1.
type InputFrame struct {
	DirX int
	DirY int
}

// Dir returns the frame's direction as an arena vector.
func (f InputFrame) Dir() Vec2 {
	return Vec2{X: float64(f.DirX), Y: float64(f.DirY)}
}

// Moving reports whether any direction is held.
func (f InputFrame) Moving() bool {
	return f.DirX != 0 || f.DirY != 0
}

// Command is a discrete request from the presenter to the game session.
// Commands are the only way besides input frames to change simulation state.
type Command int

const (
	CommandStart Command = iota
	CommandTogglePause
	CommandReset
	CommandDismiss
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "pause"
	case CommandReset:
		return "reset"
	case CommandDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}
