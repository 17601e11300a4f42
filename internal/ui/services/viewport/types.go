package viewport

// State holds all viewport-related state
type State struct {
	Offset      int
	Index       int
	VisibleRows int
}

// reservedLines is subtracted from the terminal height: one line for
// the pattern prompt at the bottom plus one spare line above the list.
const reservedLines = 2
