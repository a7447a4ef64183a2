package align

// span is a raw per-token timing estimate prior to repair. Unresolved spans
// are expected; the repairer interpolates them.
type span struct {
	start    float64
	end      float64
	resolved bool
}

// projectChars assigns raw timing to each reference token from an opcode
// list computed over rune streams. For every equal opcode overlapping the
// token's rune range, the corresponding hypothesis runes contribute their
// fragment intervals; the token start is the earliest contributing start
// and the token end the latest contributing end. Overlaps shorter than
// MinMatchRun are ignored for tokens longer than MinMatchTokenLen so a
// stray matched character cannot pin a long word to the wrong moment.
func projectChars(tokens []string, ops []Opcode, times []interval, opts Options) []span {
	spans := make([]span, len(tokens))

	offset := 0
	for ti, tok := range tokens {
		tokLen := len([]rune(tok))
		tokStart := offset
		tokEnd := offset + tokLen
		offset = tokEnd

		found := false
		var start, end float64
		for _, op := range ops {
			if op.Tag != OpEqual {
				continue
			}
			overlapStart := max(tokStart, op.I1)
			overlapEnd := min(tokEnd, op.I2)
			if overlapStart >= overlapEnd {
				continue
			}
			if tokLen > opts.MinMatchTokenLen && overlapEnd-overlapStart < opts.MinMatchRun {
				continue
			}
			for k := overlapStart; k < overlapEnd; k++ {
				j := op.J1 + (k - op.I1)
				if j < 0 || j >= len(times) {
					continue
				}
				iv := times[j]
				if !found || iv.start < start {
					start = iv.start
				}
				if !found || iv.end > end {
					end = iv.end
				}
				found = true
			}
		}
		if found {
			spans[ti] = span{start: start, end: end, resolved: true}
		}
	}
	return spans
}

// projectTokens assigns raw timing when the hypothesis is already segmented
// into discrete tokens (forced-aligner output). Equal opcodes copy
// hypothesis timing verbatim. Replacements with matching counts map one to
// one; otherwise the hypothesis span's duration is distributed evenly
// across the reference tokens, which is how unrecognized-token
// placeholders regain usable timing. Insertions are dropped and deletions
// stay unresolved for the repairer.
func projectTokens(tokens []string, fragments []Fragment) []span {
	hyp := make([]string, len(fragments))
	for i, frag := range fragments {
		hyp[i] = frag.Text
	}

	spans := make([]span, len(tokens))
	for _, op := range Diff(tokens, hyp) {
		switch op.Tag {
		case OpEqual:
			for k := 0; k < op.I2-op.I1; k++ {
				frag := fragments[op.J1+k]
				spans[op.I1+k] = span{start: frag.Start, end: frag.End, resolved: true}
			}
		case OpReplace:
			refCount := op.I2 - op.I1
			hypCount := op.J2 - op.J1
			if refCount == 0 || hypCount == 0 {
				continue
			}
			if refCount == hypCount {
				for k := 0; k < refCount; k++ {
					frag := fragments[op.J1+k]
					spans[op.I1+k] = span{start: frag.Start, end: frag.End, resolved: true}
				}
				continue
			}
			start := fragments[op.J1].Start
			total := fragments[op.J2-1].End - start
			if total < 0 {
				total = 0
			}
			step := total / float64(refCount)
			for k := 0; k < refCount; k++ {
				spans[op.I1+k] = span{
					start:    start + float64(k)*step,
					end:      start + float64(k+1)*step,
					resolved: true,
				}
			}
		}
	}
	return spans
}
