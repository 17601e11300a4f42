package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fuzzpick/internal/config"
	"fuzzpick/internal/domain"
	"fuzzpick/internal/eventbus"
	"fuzzpick/internal/matcher"
	"fuzzpick/internal/ui/input"
	"fuzzpick/internal/ui/services/selection"
	"fuzzpick/internal/ui/services/viewport"
	"fuzzpick/internal/ui/views"
)

// pollInterval bounds how long the loop sleeps without input
const pollInterval = 2 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	candidates []string
	matches    []domain.Match

	width  int
	height int

	engine       *matcher.Engine
	viewport     *viewport.Service
	selection    *selection.Service
	renderer     *views.Renderer
	inputHandler *input.Handler

	confirmed bool
	result    []string
}

// NewModel creates a new UI model. The candidate list is fixed for the
// whole session; initialPattern pre-fills the pattern field and ranks
// immediately.
func NewModel(bus eventbus.EventBus, cfg *config.Config, engine *matcher.Engine, candidates []string, initialPattern string) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		candidates:   candidates,
		engine:       engine,
		viewport:     viewport.NewService(bus),
		selection:    selection.NewService(bus),
		renderer:     views.NewRenderer(cfg.UI),
		inputHandler: input.New(cfg.UI.Prompt),
	}

	m.inputHandler.GetTextInput().PromptStyle = m.renderer.Styles().Prompt
	if initialPattern != "" {
		m.inputHandler.SetPattern(initialPattern)
	}
	m.rank(initialPattern)

	return m
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputHandler.Init(), tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Resize(msg.Height)
		m.bus.Publish(domain.ResizedEvent{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		// Poll timeout with no pending input; just re-arm the timer
		return m, tick()

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Height:       m.height,
		VisibleRows:  m.viewport.GetVisibleRows(),
		Matches:      m.matches,
		Offset:       m.viewport.GetOffset(),
		Index:        m.viewport.GetIndex(),
		Selected:     m.selection.GetSelectedSet(),
		PatternInput: m.inputHandler.View(),
	})
}

// Confirmed reports whether the session ended with a confirm
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Result returns the confirmed selection
func (m *Model) Result() []string {
	return m.result
}

// processAction applies one input action to the session state
func (m *Model) processAction(action input.Action) tea.Cmd {
	switch a := action.(type) {
	case input.MoveUpAction:
		m.viewport.MoveUp(len(m.matches))

	case input.MoveDownAction:
		m.viewport.MoveDown()

	case input.ToggleAction:
		if len(m.matches) == 0 {
			return nil
		}
		m.selection.Toggle(m.matches[m.viewport.GetPosition()].Value)

	case input.PatternChangedAction:
		m.bus.Publish(domain.PatternChangedEvent{Pattern: a.Pattern})
		m.rank(a.Pattern)

	case input.ConfirmAction:
		m.confirmed = true
		m.result = m.assembleResult()
		m.bus.Publish(domain.ConfirmedEvent{Result: m.result})
		return tea.Quit
	}

	return nil
}

// rank rebuilds the match list for a pattern and re-clamps the
// viewport, in that order
func (m *Model) rank(pattern string) {
	m.matches = m.engine.Rank(m.candidates, []rune(pattern))
	m.viewport.Reset(len(m.matches))
	m.bus.Publish(domain.MatchesUpdatedEvent{Pattern: pattern, Count: len(m.matches)})
}

// assembleResult builds the final output: the explicit selections in
// toggle order, or the candidate under the cursor, or nothing
func (m *Model) assembleResult() []string {
	if m.selection.HasSelection() {
		return m.selection.GetSelected()
	}
	if len(m.matches) > 0 {
		return []string{m.matches[m.viewport.GetPosition()].Value}
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
