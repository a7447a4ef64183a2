package textnorm

import (
	"strings"
	"unicode"
)

// Tokenize splits a script into caption tokens. The text is normalized,
// split on whitespace, and each field is further segmented when a
// segmenter is supplied (scripts without word boundaries arrive as one
// field). Punctuation-only tokens are dropped and edge punctuation is
// trimmed so the token stream matches what a recognition engine hears.
func Tokenize(text string, seg *Segmenter) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	var raw []string
	for _, field := range strings.Fields(text) {
		if seg != nil {
			raw = append(raw, seg.Segment(field)...)
		} else {
			raw = append(raw, field)
		}
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = trimPunctuation(tok)
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// trimPunctuation removes leading and trailing punctuation and symbol
// runes. Interior punctuation (apostrophes, hyphens) survives.
func trimPunctuation(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
