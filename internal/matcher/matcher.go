package matcher

import (
	"sort"

	"fuzzpick/internal/domain"
)

// Engine ranks candidates against the current pattern. It owns the
// ordering rules; the scoring itself is delegated to the Scorer.
type Engine struct {
	scorer Scorer
}

// NewEngine creates a match engine backed by the given scorer
func NewEngine(scorer Scorer) *Engine {
	return &Engine{scorer: scorer}
}

// Rank produces the match list for a pattern.
//
// An empty pattern yields every candidate in ascending lexicographic
// order, independent of the scorer. A non-empty pattern keeps only
// candidates the scorer matches, ordered by descending score with
// lexicographic ascent breaking ties, so the result is deterministic
// regardless of scorer internals and of input order.
func (e *Engine) Rank(candidates []string, pattern []rune) []domain.Match {
	if len(pattern) == 0 {
		matches := make([]domain.Match, len(candidates))
		for i, c := range candidates {
			matches[i] = domain.Match{Value: c}
		}
		sort.Slice(matches, func(i, j int) bool {
			return matches[i].Value < matches[j].Value
		})
		return matches
	}

	matches := make([]domain.Match, 0, len(candidates))
	for _, c := range candidates {
		score, ok := e.scorer.Score(c, pattern)
		if !ok {
			continue
		}
		matches = append(matches, domain.Match{Value: c, Score: score})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Value < matches[j].Value
	})
	return matches
}
