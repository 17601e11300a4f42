package input

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Navigation actions
type MoveUpAction struct{}

func (a MoveUpAction) Type() string { return "move_up" }

type MoveDownAction struct{}

func (a MoveDownAction) Type() string { return "move_down" }

// Selection actions
type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

// Session actions
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// Text input actions
type PatternChangedAction struct {
	Pattern string
}

func (a PatternChangedAction) Type() string { return "pattern_changed" }
