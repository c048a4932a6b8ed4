package core

// Action represents a semantic input signal, abstracted from physical keys,
// buttons and pointer clicks.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W, or a click in the play area
	ActionStart        // Enter, S, R - start or restart a round
	ActionQuit         // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
