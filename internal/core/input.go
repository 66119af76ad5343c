package core

// Action represents a semantic simulator action, abstracted from physical key
// presses. Frontends translate keys into actions and actions into virtual
// joystick deflection, so key bindings never reach the game core.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - push the stick up
	ActionDown          // S, Down arrow - push the stick down
	ActionLeft          // A, Left arrow - push the stick left
	ActionRight         // D, Right arrow - push the stick right
	ActionButton        // R, Enter - press the reset button
	ActionQuit          // Q, Ctrl+C - leave the simulator
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
	case ActionButton:
		return "Button"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Deflection returns the unit stick direction for a movement action.
// Non-movement actions return the zero vector.
func (a Action) Deflection() Vec2 {
	switch a {
	case ActionUp:
		return V(0, -1)
	case ActionDown:
		return V(0, 1)
	case ActionLeft:
		return V(-1, 0)
	case ActionRight:
		return V(1, 0)
	default:
		return Vec2{}
	}
}
