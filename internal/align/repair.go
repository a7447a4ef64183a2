package align

import "math"

// repairTimeline turns raw per-token estimates into a fully resolved,
// strictly ordered timeline. Rules run in order: clamp resolved spans to a
// monotonic sequence, interpolate interior gaps between anchors,
// extrapolate a trailing gap at the configured per-token rate, round, and
// finish with an ordering sweep so rounding artifacts cannot reintroduce a
// zero-length or overlapping word.
func repairTimeline(tokens []string, spans []span, opts Options) []Word {
	repaired := clampResolved(spans, opts)
	repaired = fillGaps(repaired, opts)

	words := make([]Word, len(tokens))
	lastEnd := 0.0
	for i, tok := range tokens {
		start := roundTo(repaired[i].start, opts.RoundDecimals)
		end := roundTo(repaired[i].end, opts.RoundDecimals)
		if start < lastEnd {
			start = lastEnd
		}
		if end <= start {
			end = roundTo(start+opts.MinTokenDuration, opts.RoundDecimals)
		}
		lastEnd = end
		words[i] = Word{Word: tok, Start: start, End: end}
	}
	return words
}

// clampResolved walks resolved spans left to right, carrying the last end
// time so no word can start before its predecessor finished. A clamp that
// empties a word's interval re-opens it at the minimum duration.
func clampResolved(spans []span, opts Options) []span {
	out := make([]span, len(spans))
	copy(out, spans)

	lastEnd := 0.0
	for i := range out {
		if !out[i].resolved {
			continue
		}
		if out[i].start < lastEnd {
			out[i].start = lastEnd
		}
		if out[i].end <= out[i].start {
			out[i].end = out[i].start + opts.MinTokenDuration
		}
		lastEnd = out[i].end
	}
	return out
}

// fillGaps resolves runs of unresolved tokens. Interior runs split the time
// between the surrounding anchors into equal slots; the sequence start
// counts as a zero-time anchor. A trailing run has no closing anchor and is
// extrapolated at TrailingRate seconds per token.
func fillGaps(spans []span, opts Options) []span {
	out := make([]span, len(spans))
	copy(out, spans)

	anchor := 0.0
	gapStart := -1
	for i := range out {
		if !out[i].resolved {
			if gapStart < 0 {
				gapStart = i
			}
			continue
		}
		if gapStart >= 0 {
			distribute(out, gapStart, i, anchor, out[i].start)
			gapStart = -1
		}
		anchor = out[i].end
	}
	if gapStart >= 0 {
		projected := anchor + opts.TrailingRate*float64(len(out)-gapStart)
		distribute(out, gapStart, len(out), anchor, projected)
	}
	return out
}

// distribute assigns equal-duration slots across spans[lo:hi] covering
// [t0, t1). Arithmetic stays unrounded here; rounding is applied once after
// all interpolation completes.
func distribute(spans []span, lo, hi int, t0, t1 float64) {
	count := hi - lo
	if count <= 0 {
		return
	}
	if t1 < t0 {
		t1 = t0
	}
	step := (t1 - t0) / float64(count)
	for k := 0; k < count; k++ {
		spans[lo+k] = span{
			start:    t0 + float64(k)*step,
			end:      t0 + float64(k+1)*step,
			resolved: true,
		}
	}
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
