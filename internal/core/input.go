package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games and the engine work with high-level intents rather than raw
// input events.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move/steer left
	ActionRight             // D, Right arrow - move/steer right
	ActionUp                // W, Up arrow - move up
	ActionDown              // S, Down arrow - move down
	ActionAccelerate        // W, Up - throttle (steering games)
	ActionBrake             // S, Down - brake (steering games)
	ActionFire              // Space - shoot / launch
	ActionConfirm           // Enter - confirm / start
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
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
	case ActionAccelerate:
		return "Accelerate"
	case ActionBrake:
		return "Brake"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick: the
// set of currently-held actions plus discrete edge events (pressed this
// frame). The engine never sees raw device events.
type InputFrame struct {
	// Held maps actions to whether they are currently held down.
	Held map[Action]bool

	// Pressed maps actions to whether they were newly triggered this frame.
	// Used for edge events like pause-toggle and fire-pressed.
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as a discrete edge event for this frame.
// A pressed action is also considered held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsHeld returns true if the given action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// WasPressed returns true if the given action was newly pressed this frame.
func (f InputFrame) WasPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// ClearPressed resets edge events, leaving held state intact.
// Called by the platform after each simulation tick so edge events fire once.
func (f *InputFrame) ClearPressed() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
