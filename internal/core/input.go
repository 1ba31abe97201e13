package core

// Action represents a semantic input event, abstracted from physical keys
// and mouse buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionPointerDown        // Space, Up, W, left click - global tap
	ActionConfirm            // Enter - activate on-screen buttons
	ActionPause              // P, Escape - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPointerDown:
		return "PointerDown"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the world position of the last pointer-down, if it came
	// from a mouse. Keyboard taps leave it nil.
	Pointer *Vec
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// PointerAt marks a pointer-down at the given world position.
func (f *InputFrame) PointerAt(x, y float64) {
	f.Set(ActionPointerDown)
	f.Pointer = &Vec{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}
