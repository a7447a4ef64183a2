package align

import (
	"errors"
	"strings"
)

// Defaults for Options fields left at zero. The thresholds are carried over
// from tuning against real recognition output rather than derived from
// first principles; override them in configuration when they misbehave.
const (
	DefaultMinTokenDuration = 0.1
	DefaultTrailingRate     = 0.5
	DefaultMinMatchRun      = 2
	DefaultMinMatchTokenLen = 2
	DefaultRoundDecimals    = 2
)

var (
	// ErrEmptyScript reports a reference token sequence that is empty
	// after normalization. Nothing can be aligned.
	ErrEmptyScript = errors.New("align: reference script has no tokens")

	// ErrNoTimeSource reports that reference tokens exist but the
	// hypothesis carries no fragments at all. Callers choose the fallback
	// policy, typically UniformTimeline, instead of receiving silently
	// invented timestamps.
	ErrNoTimeSource = errors.New("align: no time source for reference tokens")
)

// Word is one unit of the final caption timeline.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Options tune the alignment heuristics. The zero value selects the
// package defaults.
type Options struct {
	// MinTokenDuration is the floor, in seconds, applied when monotonic
	// clamping would leave a word with a zero or negative duration.
	MinTokenDuration float64

	// TrailingRate is the assumed seconds per token used to extrapolate a
	// trailing run of unresolved tokens.
	TrailingRate float64

	// MinMatchRun is the smallest matched character run accepted for
	// tokens longer than MinMatchTokenLen. Shorter runs are treated as
	// coincidental and contribute no timing.
	MinMatchRun int

	// MinMatchTokenLen is the token length above which MinMatchRun
	// applies.
	MinMatchTokenLen int

	// RoundDecimals is the decimal precision of the output timeline.
	RoundDecimals int
}

func (o Options) withDefaults() Options {
	if o.MinTokenDuration <= 0 {
		o.MinTokenDuration = DefaultMinTokenDuration
	}
	if o.TrailingRate <= 0 {
		o.TrailingRate = DefaultTrailingRate
	}
	if o.MinMatchRun <= 0 {
		o.MinMatchRun = DefaultMinMatchRun
	}
	if o.MinMatchTokenLen <= 0 {
		o.MinMatchTokenLen = DefaultMinMatchTokenLen
	}
	if o.RoundDecimals <= 0 {
		o.RoundDecimals = DefaultRoundDecimals
	}
	return o
}

// Engine aligns reference tokens against hypothesis fragments. It holds no
// state beyond its options, so a single engine may serve concurrent
// callers.
type Engine struct {
	opts Options
}

// NewEngine returns an engine with the given options, filling zero fields
// with defaults.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Options returns the effective options after default filling.
func (e *Engine) Options() Options {
	return e.opts
}

// AlignChars aligns at character granularity: the reference tokens are
// joined into one rune stream and matched against the flattened hypothesis
// stream. Use this mode when fragments are recognition chunks rather than
// clean words. The result covers every token, in order, with a strictly
// monotonic timeline.
func (e *Engine) AlignChars(tokens []string, fragments []Fragment) ([]Word, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyScript
	}
	frags, err := normalizeFragments(fragments)
	if err != nil {
		return nil, err
	}
	if len(frags) == 0 {
		return nil, ErrNoTimeSource
	}

	refRunes := []rune(strings.Join(tokens, ""))
	hypRunes, times := flattenFragments(frags)
	ops := Diff(refRunes, hypRunes)
	spans := projectChars(tokens, ops, times, e.opts)
	return repairTimeline(tokens, spans, e.opts), nil
}

// AlignTokens aligns at token granularity: the hypothesis fragments are
// treated as discrete words and matched against the reference tokens
// directly. Use this mode for forced-aligner output, where fragment
// boundaries are trustworthy but individual tokens may be unrecognized
// placeholders.
func (e *Engine) AlignTokens(tokens []string, fragments []Fragment) ([]Word, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyScript
	}
	frags, err := normalizeFragments(fragments)
	if err != nil {
		return nil, err
	}
	if len(frags) == 0 {
		return nil, ErrNoTimeSource
	}

	spans := projectTokens(tokens, frags)
	return repairTimeline(tokens, spans, e.opts), nil
}

// Resolution reports how much of a timeline was derived from hypothesis
// timing rather than interpolation. It re-projects with the same inputs,
// so it is intended for diagnostics, not hot paths.
func (e *Engine) Resolution(tokens []string, fragments []Fragment, charMode bool) (resolved, total int) {
	total = len(tokens)
	frags, err := normalizeFragments(fragments)
	if err != nil || len(frags) == 0 || total == 0 {
		return 0, total
	}
	var spans []span
	if charMode {
		refRunes := []rune(strings.Join(tokens, ""))
		hypRunes, times := flattenFragments(frags)
		spans = projectChars(tokens, Diff(refRunes, hypRunes), times, e.opts)
	} else {
		spans = projectTokens(tokens, frags)
	}
	for _, s := range spans {
		if s.resolved {
			resolved++
		}
	}
	return resolved, total
}

// UniformTimeline spreads tokens evenly across [0, totalDuration]. It is
// the degraded fallback for callers that catch ErrNoTimeSource and still
// need a timeline. A non-positive duration falls back to TrailingRate per
// token.
func UniformTimeline(tokens []string, totalDuration float64, opts Options) ([]Word, error) {
	opts = opts.withDefaults()
	if len(tokens) == 0 {
		return nil, ErrEmptyScript
	}
	if totalDuration <= 0 {
		totalDuration = opts.TrailingRate * float64(len(tokens))
	}
	spans := make([]span, len(tokens))
	distribute(spans, 0, len(spans), 0, totalDuration)
	return repairTimeline(tokens, spans, opts), nil
}
