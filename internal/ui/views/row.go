package views

import (
	"github.com/mattn/go-runewidth"

	"fuzzpick/internal/domain"
)

// RowRenderer handles rendering of single match rows
type RowRenderer struct {
	styles  *Styles
	pointer string
	marker  string
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles, pointer, marker string) *RowRenderer {
	return &RowRenderer{
		styles:  styles,
		pointer: clampGlyph(pointer, ">"),
		marker:  clampGlyph(marker, "*"),
	}
}

// RenderRow renders one match line: pointer cell, selection marker
// cell, then the candidate text
func (r *RowRenderer) RenderRow(match domain.Match, isCurrent, isSelected bool, width int) string {
	pointer := " "
	if isCurrent {
		pointer = r.styles.Pointer.Render(r.pointer)
	}

	marker := " "
	if isSelected {
		marker = r.styles.Marker.Render(r.marker)
	}

	text := r.fitText(match.Value, width-2)
	if isCurrent {
		text = r.styles.Current.Render(text)
	}

	return pointer + marker + text
}

// fitText truncates overflowing text, ending the row in a 2-cell mark
func (r *RowRenderer) fitText(text string, available int) string {
	if available < 1 {
		return ""
	}
	if runewidth.StringWidth(text) <= available {
		return text
	}
	return runewidth.Truncate(text, available, "..")
}

// clampGlyph keeps configured glyphs to a single terminal cell
func clampGlyph(glyph, fallback string) string {
	g := runewidth.Truncate(glyph, 1, "")
	if runewidth.StringWidth(g) == 0 {
		return fallback
	}
	return g
}
