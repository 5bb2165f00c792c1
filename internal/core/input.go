package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionUp                 // W, Up arrow
	ActionDown               // S, Down arrow
	ActionFireNearest        // Space - shoot at the nearest enemy
	ActionFireAt             // Left mouse button - shoot at InputFrame.Aim
	ActionSelect1            // 1 - first upgrade option
	ActionSelect2            // 2
	ActionSelect3            // 3
	ActionRestart            // R - new run after game over
	ActionPause              // P
	ActionQuit               // Q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFireNearest:
		return "FireNearest"
	case ActionFireAt:
		return "FireAt"
	case ActionSelect1:
		return "Select1"
	case ActionSelect2:
		return "Select2"
	case ActionSelect3:
		return "Select3"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SelectIndex returns the zero-based menu option for a Select action, or -1.
func (a Action) SelectIndex() int {
	switch a {
	case ActionSelect1:
		return 0
	case ActionSelect2:
		return 1
	case ActionSelect3:
		return 2
	}
	return -1
}

// InputFrame is the polled input state for one simulation tick: held
// directions, one-shot triggers and the aim point in world units.
type InputFrame struct {
	Actions map[Action]bool
	// Aim is the world position targeted by ActionFireAt.
	Aim Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// FireAt marks ActionFireAt with the given aim point.
func (f *InputFrame) FireAt(p Vec2) {
	f.Set(ActionFireAt)
	f.Aim = p
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Aim = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Aim = f.Aim
	return clone
}
