package captions

import (
	"encoding/json"
	"fmt"
	"os"

	"capsync/internal/align"
)

// ApplyDisplayFloor extends words shorter than floor seconds so they stay
// on screen long enough to read. Extension pushes the end time forward;
// following words are not re-clamped, so brief overlaps between adjacent
// words are possible and acceptable for display purposes. The input slice
// is not modified.
func ApplyDisplayFloor(words []align.Word, floor float64) []align.Word {
	out := make([]align.Word, len(words))
	copy(out, words)
	if floor <= 0 {
		return out
	}
	for i := range out {
		if out[i].End-out[i].Start < floor {
			out[i].End = out[i].Start + floor
		}
	}
	return out
}

// WriteWordsJSON writes the word timeline to path as indented JSON.
func WriteWordsJSON(path string, words []align.Word) error {
	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal word timeline: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write word timeline: %w", err)
	}
	return nil
}
