package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler translates key messages into actions. It owns the pattern
// text field and forwards only plain edit keys to it, so the caret
// stays pinned to the end of the pattern.
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

// New creates a new input handler with a focused pattern field
func New(prompt string) *Handler {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// HandleKey processes a key message and returns the resulting actions.
// Keys outside the bindings and the pattern-edit set are dropped.
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Confirm):
		return []Action{ConfirmAction{}}, nil
	case key.Matches(msg, h.keys.Up):
		return []Action{MoveUpAction{}}, nil
	case key.Matches(msg, h.keys.Down):
		return []Action{MoveDownAction{}}, nil
	case key.Matches(msg, h.keys.Toggle):
		return []Action{ToggleAction{}}, nil
	}

	if !isPatternEdit(msg) {
		return nil, nil
	}

	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)

	// Every edit key reports a pattern change, including a backspace
	// on an already-empty pattern
	return []Action{PatternChangedAction{Pattern: h.textInput.Value()}}, cmd
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Pattern returns the current pattern text
func (h *Handler) Pattern() string {
	return h.textInput.Value()
}

// SetPattern replaces the pattern text, placing the caret at the end
func (h *Handler) SetPattern(pattern string) {
	h.textInput.SetValue(pattern)
}

// View renders the pattern input line
func (h *Handler) View() string {
	return h.textInput.View()
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	return h.textInput
}

// isPatternEdit reports whether a key edits the pattern: backspace or
// a printable with at most a shift modifier. Shifted printables arrive
// already uppercased, control chords arrive as distinct key types, so
// only the alt flag needs checking.
func isPatternEdit(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyRunes, tea.KeySpace:
		return true
	default:
		return false
	}
}
