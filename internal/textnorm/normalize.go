package textnorm

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Zero-width characters and BOMs that upstream text generators leak into
// scripts and that break segmentation.
var stripInvisible = runes.Remove(runes.Predicate(func(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\u2060', '\uFEFF':
		return true
	}
	return false
}))

var normalizer = transform.Chain(norm.NFC, stripInvisible)

// Normalize applies NFC composition, removes zero-width characters, and
// trims surrounding whitespace. Malformed input is returned trimmed but
// otherwise untouched rather than rejected.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}
