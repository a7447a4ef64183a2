package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"capsync/internal/align"
)

// whisperWord mirrors one entry of Whisper's word_timestamps output.
type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type whisperSegment struct {
	Words []whisperWord `json:"words"`
}

type whisperResult struct {
	Segments []whisperSegment `json:"segments"`
}

// ParseWhisperJSON reads Whisper word-timestamp output and flattens it
// into hypothesis fragments. Both the full transcription result
// ({"segments": [{"words": [...]}]}) and an already-flattened word array
// are accepted; Whisper pads words with spaces, so texts are trimmed and
// empty entries dropped.
func ParseWhisperJSON(r io.Reader) ([]align.Fragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read whisper json: %w", err)
	}

	var words []whisperWord
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return nil, fmt.Errorf("parse whisper word list: %w", err)
		}
	} else {
		var result whisperResult
		if err := json.Unmarshal(trimmed, &result); err != nil {
			return nil, fmt.Errorf("parse whisper result: %w", err)
		}
		for _, seg := range result.Segments {
			words = append(words, seg.Words...)
		}
	}

	fragments := make([]align.Fragment, 0, len(words))
	for _, w := range words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		fragments = append(fragments, align.Fragment{Text: text, Start: w.Start, End: w.End})
	}
	return fragments, nil
}
