package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - step left
	ActionRight          // D, Right arrow - step right
	ActionJump           // Space, W, Up - jump
	ActionConfirm        // Enter - next level after a win
	ActionRestart        // R - retry after a loss
	ActionBack           // Esc, B - back to menu
	ActionPause          // P - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Key presses arriving between ticks accumulate here; presses are counted so
// that key repeat moves the player one cell per press.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one press of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was pressed this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
