package views

import (
	"strings"

	"fuzzpick/internal/config"
	"fuzzpick/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	VisibleRows  int
	Matches      []domain.Match
	Offset       int
	Index        int
	Selected     map[string]bool
	PatternInput string
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(ui config.UISettings) *Renderer {
	styles := NewStyles(ui)
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles, ui.Pointer, ui.Marker),
	}
}

// Styles exposes the style set for callers that decorate the input line
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete frame. Match rows fill the screen from
// the line above the pattern input upward, best match at the bottom:
// row r shows Matches[Offset+r], so climbing rows walks down the
// ranking.
func (r *Renderer) Render(state ViewState) string {
	if state.Height <= 0 {
		return ""
	}

	lines := make([]string, state.Height)

	maxRow := len(state.Matches) - state.Offset - 1
	if state.VisibleRows < maxRow {
		maxRow = state.VisibleRows
	}
	for row := 0; row <= maxRow; row++ {
		line := state.Height - 2 - row
		if line < 0 {
			break
		}
		match := state.Matches[state.Offset+row]
		lines[line] = r.rowRender.RenderRow(match, row == state.Index, state.Selected[match.Value], state.Width)
	}

	// Pattern input always occupies the bottom line
	lines[state.Height-1] = state.PatternInput

	return strings.Join(lines, "\n")
}
