package core

// Action represents a semantic game action, abstracted from physical keys.
// Backends translate their own key codes into actions.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow - move paddle left
	ActionRight           // Right arrow - move paddle right
	ActionBoost           // Shift - double paddle speed while held
	ActionClose           // Escape - pause, or quit when already paused
	ActionContinue        // Enter - resume from pause
	ActionUp              // Up arrow - reserved for menu navigation
	ActionDown            // Down arrow - reserved for menu navigation
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
	case ActionBoost:
		return "Boost"
	case ActionClose:
		return "Close"
	case ActionContinue:
		return "Continue"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputFrame is the keyboard state for one frame.
// Held lists actions whose key is currently down; Hit lists actions whose
// key went down since the previous frame.
type InputFrame struct {
	Held map[Action]bool
	Hit  map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
		Hit:  make(map[Action]bool),
	}
}

// Press marks an action as both hit and held for this frame.
func (f *InputFrame) Press(a Action) {
	f.SetHit(a)
	f.SetHeld(a)
}

// SetHeld marks an action as held.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetHit marks an action as pressed this frame.
func (f *InputFrame) SetHit(a Action) {
	if f.Hit == nil {
		f.Hit = make(map[Action]bool)
	}
	f.Hit[a] = true
}

// IsHeld returns true if the action's key is down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// IsHit returns true if the action's key was pressed this frame.
func (f InputFrame) IsHit(a Action) bool {
	return f.Hit[a]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Hit {
		clone.Hit[k] = v
	}
	return clone
}
