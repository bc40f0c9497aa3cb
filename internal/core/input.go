package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows game logic to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // k, Up arrow - menu cursor up / row velocity -1
	ActionDown           // j, Down arrow - menu cursor down / row velocity +1
	ActionLeft           // h, Left arrow - column velocity -1
	ActionRight          // l, Right arrow - column velocity +1
	ActionConfirm        // Enter - confirm selection or custom speed
	ActionQuit           // q, Ctrl+C - exit from any input point
	ActionDelete         // x, Backspace - delete last entered digit
	ActionDigit          // 0-9 - custom speed entry
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
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionDelete:
		return "Delete"
	case ActionDigit:
		return "Digit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one translated key press.
// Rune carries the character for ActionDigit and is zero otherwise.
type KeyEvent struct {
	Action Action
	Rune   rune
}

// Key returns a KeyEvent for a non-digit action.
func Key(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// Digit returns a KeyEvent for the digit character r.
func Digit(r rune) KeyEvent {
	return KeyEvent{Action: ActionDigit, Rune: r}
}

// KeyMap translates key names ("k", "up", "enter", "ctrl+c") to actions.
// Names follow Bubble Tea's KeyMsg.String() spelling; other backends
// normalize their key events to the same names.
type KeyMap map[string]Action

// Lookup translates a key name. Bound names win; otherwise a single digit
// character maps to ActionDigit. Unknown names return ActionNone.
func (km KeyMap) Lookup(name string) KeyEvent {
	if a, ok := km[name]; ok {
		return Key(a)
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Digit(rune(name[0]))
	}
	return Key(ActionNone)
}

// Names returns every key name bound to the given action.
func (km KeyMap) Names(a Action) []string {
	var names []string
	for name, bound := range km {
		if bound == a {
			names = append(names, name)
		}
	}
	return names
}
