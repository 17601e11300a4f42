package matcher

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for fzf's reusable scoring buffers, matching fzf's own
// defaults.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// Scorer is the scoring oracle consulted once per candidate. It
// returns the match quality (higher is better) and whether the
// candidate matches at all. Matching is case-sensitive and the oracle
// is never asked for match positions.
type Scorer interface {
	Score(text string, pattern []rune) (int, bool)
}

// FzfScorer scores candidates with fzf's FuzzyMatchV2 algorithm. The
// slab is reused across calls, so a FzfScorer is not safe for
// concurrent use; each session owns its own.
type FzfScorer struct {
	slab *util.Slab
}

// NewFzfScorer creates the default fuzzy scoring oracle
func NewFzfScorer() *FzfScorer {
	return &FzfScorer{
		slab: util.MakeSlab(slab16Size, slab32Size),
	}
}

// Score implements Scorer
func (s *FzfScorer) Score(text string, pattern []rune) (int, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(
		true,  // caseSensitive
		false, // normalize: candidates match on their raw values
		true,  // forward
		&chars,
		pattern,
		false, // withPos
		s.slab,
	)
	if result.Score <= 0 {
		return 0, false
	}
	return result.Score, true
}

// ExactScorer scores candidates with fzf's exact-substring algorithm,
// for callers that want plain substring filtering instead of fuzzy
// matching.
type ExactScorer struct {
	slab *util.Slab
}

// NewExactScorer creates an exact-substring scoring oracle
func NewExactScorer() *ExactScorer {
	return &ExactScorer{
		slab: util.MakeSlab(slab16Size, slab32Size),
	}
}

// Score implements Scorer
func (s *ExactScorer) Score(text string, pattern []rune) (int, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	chars := util.ToChars([]byte(text))
	result, _ := algo.ExactMatchNaive(
		true,  // caseSensitive
		false, // normalize
		true,  // forward
		&chars,
		pattern,
		false, // withPos
		s.slab,
	)
	if result.Score <= 0 {
		return 0, false
	}
	return result.Score, true
}
