package domain

// Match represents one ranked candidate in the current match list
type Match struct {
	Value string
	Score int // 0 in full-list browse mode (empty pattern)
}

// Values extracts the candidate strings from a match list in order
func Values(matches []Match) []string {
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}
