package align

import (
	"errors"
	"fmt"
	"strings"
)

// Fragment is a timestamped span of hypothesis text as emitted by a
// transcription or forced-alignment tool. Fragments arrive in playback
// order and are treated as immutable input.
type Fragment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ErrMalformedFragment reports a hypothesis fragment that cannot contribute
// to the character time map, such as one with no text.
var ErrMalformedFragment = errors.New("malformed fragment")

// interval is the time span shared by every rune a fragment contributes to
// the flattened hypothesis stream.
type interval struct {
	start float64
	end   float64
}

// normalizeFragments applies ingestion rules: fragments without text are
// rejected, reversed intervals are clamped to zero duration, and text is
// trimmed so recognition-engine padding does not pollute the rune stream.
func normalizeFragments(fragments []Fragment) ([]Fragment, error) {
	out := make([]Fragment, 0, len(fragments))
	for i, frag := range fragments {
		frag.Text = strings.TrimSpace(frag.Text)
		if frag.Text == "" {
			return nil, fmt.Errorf("%w: fragment %d has no text", ErrMalformedFragment, i)
		}
		if frag.End < frag.Start {
			frag.End = frag.Start
		}
		out = append(out, frag)
	}
	return out, nil
}

// flattenFragments expands fragments into a rune stream paired with a
// per-rune time map. Every rune of a fragment shares the fragment's
// interval; no intra-fragment interpolation happens here. Empty input
// yields empty outputs, which callers must treat as "no information".
func flattenFragments(fragments []Fragment) ([]rune, []interval) {
	var stream []rune
	var times []interval
	for _, frag := range fragments {
		iv := interval{start: frag.Start, end: frag.End}
		for _, r := range frag.Text {
			stream = append(stream, r)
			times = append(times, iv)
		}
	}
	return stream, times
}
