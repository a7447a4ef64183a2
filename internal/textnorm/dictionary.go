package textnorm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadSegmenter builds a Segmenter from a dictionary file holding one word
// per line, merged with any custom words. Blank lines and lines starting
// with '#' are skipped. When path is empty and no custom words are given it
// returns nil, which Tokenize treats as whitespace-only splitting.
func LoadSegmenter(path string, custom []string) (*Segmenter, error) {
	if path == "" && len(custom) == 0 {
		return nil, nil
	}

	seg := NewSegmenter(nil)
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dictionary: %w", err)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" || strings.HasPrefix(word, "#") {
				continue
			}
			seg.Add(word)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read dictionary: %w", err)
		}
	}

	for _, word := range custom {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			seg.Add(trimmed)
		}
	}
	return seg, nil
}
