package selection

// State holds selection state. Selected answers membership queries;
// Order remembers the sequence of first toggles for result assembly.
type State struct {
	Selected map[string]bool
	Order    []string
}
