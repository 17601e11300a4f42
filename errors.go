package fuzzpick

import "errors"

// Error kinds surfaced by a selection session. Terminal modes are
// restored on a best-effort basis before either is returned.
var (
	// ErrIO reports a failed read or write during the session
	ErrIO = errors.New("fuzzpick: terminal i/o failed")

	// ErrTerminal reports a failure acquiring or negotiating the
	// controlling terminal
	ErrTerminal = errors.New("fuzzpick: terminal setup failed")
)
