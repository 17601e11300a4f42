package fuzzpick

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fuzzpick/internal/eventbus"
	"fuzzpick/internal/matcher"
	"fuzzpick/internal/ui"
)

// Select runs an interactive fuzzy-selection session over candidates,
// drawing the UI on w in the terminal's alternate screen. It returns
// once the user confirms: the toggled candidates in toggle order, or
// the candidate under the cursor when nothing was toggled, or nothing
// when the match list was empty.
//
// The candidate slice is never mutated; returned values share its
// backing strings.
func Select(w io.Writer, candidates []string, opts ...Option) ([]string, error) {
	o := newOptions(opts)

	bus := eventbus.New()
	if o.hook != nil {
		bus.SubscribeAll(o.hook)
	}

	engine := matcher.NewEngine(o.scorer)
	model := ui.NewModel(bus, o.cfg, engine, candidates, o.initialPattern)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(w),
	}
	if o.input != nil {
		progOpts = append(progOpts, tea.WithInput(o.input))
	}

	p := tea.NewProgram(model, progOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, fmt.Errorf("%w: %v", ErrTerminal, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	if !model.Confirmed() {
		return nil, nil
	}
	return model.Result(), nil
}

// OpenTTY opens the controlling terminal, for sessions whose standard
// input already carries the candidate list
func OpenTTY() (*os.File, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminal, err)
	}
	return tty, nil
}
