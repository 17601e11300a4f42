package ui

import "time"

// tickMsg is sent on the poll timer; it carries no work of its own and
// exists to keep the event loop waking up between key presses
type tickMsg time.Time
