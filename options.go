package fuzzpick

import (
	"io"

	"fuzzpick/internal/config"
	"fuzzpick/internal/matcher"
)

// Scorer is the scoring oracle consulted for every candidate while the
// pattern is non-empty
type Scorer = matcher.Scorer

// Option configures a selection session
type Option func(*options)

type options struct {
	cfg            *config.Config
	scorer         Scorer
	input          io.Reader
	initialPattern string
	hook           func(Event)
}

func newOptions(opts []Option) *options {
	o := &options{
		cfg: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.scorer == nil {
		if o.cfg.Matching.Exact {
			o.scorer = matcher.NewExactScorer()
		} else {
			o.scorer = matcher.NewFzfScorer()
		}
	}
	return o
}

// WithConfig supplies a loaded configuration instead of the defaults
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg != nil {
			o.cfg = cfg
		}
	}
}

// WithScorer replaces the scoring oracle
func WithScorer(scorer Scorer) Option {
	return func(o *options) {
		o.scorer = scorer
	}
}

// WithExactMatch scores by contiguous substring instead of fuzzy
// subsequence
func WithExactMatch() Option {
	return func(o *options) {
		o.scorer = matcher.NewExactScorer()
	}
}

// WithPrompt sets the text drawn before the pattern on the input line
func WithPrompt(prompt string) Option {
	return func(o *options) {
		o.cfg.UI.Prompt = prompt
	}
}

// WithPointer sets the glyph marking the row under the cursor
func WithPointer(pointer string) Option {
	return func(o *options) {
		o.cfg.UI.Pointer = pointer
	}
}

// WithMarker sets the glyph marking toggled rows
func WithMarker(marker string) Option {
	return func(o *options) {
		o.cfg.UI.Marker = marker
	}
}

// WithInitialPattern seeds the pattern, ranked before the first frame
func WithInitialPattern(pattern string) Option {
	return func(o *options) {
		o.initialPattern = pattern
	}
}

// WithInput reads key events from r instead of standard input. Needed
// when candidates arrive on a pipe and the keyboard is the controlling
// terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithEventHook observes every session event as it is published
func WithEventHook(hook func(Event)) Option {
	return func(o *options) {
		o.hook = hook
	}
}
