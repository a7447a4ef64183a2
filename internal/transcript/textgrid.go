package transcript

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"capsync/internal/align"
)

// Stats summarizes a parsed TextGrid word tier.
type Stats struct {
	// Intervals is the number of non-empty, non-silence intervals kept.
	Intervals int
	// Unknown counts intervals whose label is the aligner's <unk>
	// placeholder. They are kept in the fragment list because their
	// timing is still usable.
	Unknown int
}

type textGridTier struct {
	name      string
	fragments []align.Fragment
	unknown   int
}

// ParseTextGrid reads a long-format Praat TextGrid and returns the word
// intervals of its word tier as hypothesis fragments. Empty intervals and
// "<eps>" silence markers are dropped; "<unk>" placeholders are kept and
// counted in Stats. The tier named "words" is preferred; otherwise the
// first interval tier with any kept intervals is used.
func ParseTextGrid(r io.Reader) ([]align.Fragment, Stats, error) {
	var (
		tiers      []textGridTier
		current    *textGridTier
		inInterval bool
		isInterval bool
		xmin, xmax float64
	)

	flushInterval := func(text string) {
		if current == nil || !isInterval {
			return
		}
		switch text {
		case "", "<eps>":
			return
		case "<unk>":
			current.unknown++
		}
		current.fragments = append(current.fragments, align.Fragment{
			Text:  text,
			Start: round3(xmin),
			End:   round3(xmax),
		})
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "class ="):
			tiers = append(tiers, textGridTier{})
			current = &tiers[len(tiers)-1]
			isInterval = unquote(fieldValue(line)) == "IntervalTier"
			inInterval = false
		case strings.HasPrefix(line, "name =") && current != nil:
			current.name = unquote(fieldValue(line))
		case strings.HasPrefix(line, "intervals ["):
			inInterval = true
			xmin, xmax = 0, 0
		case inInterval && strings.HasPrefix(line, "xmin ="):
			v, err := parseFloatField(line)
			if err != nil {
				return nil, Stats{}, err
			}
			xmin = v
		case inInterval && strings.HasPrefix(line, "xmax ="):
			v, err := parseFloatField(line)
			if err != nil {
				return nil, Stats{}, err
			}
			xmax = v
		case inInterval && strings.HasPrefix(line, "text ="):
			flushInterval(strings.TrimSpace(unquote(fieldValue(line))))
			inInterval = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("read textgrid: %w", err)
	}

	tier := pickWordTier(tiers)
	if tier == nil {
		return nil, Stats{}, fmt.Errorf("textgrid has no word intervals")
	}
	return tier.fragments, Stats{Intervals: len(tier.fragments), Unknown: tier.unknown}, nil
}

func pickWordTier(tiers []textGridTier) *textGridTier {
	for i := range tiers {
		if tiers[i].name == "words" && len(tiers[i].fragments) > 0 {
			return &tiers[i]
		}
	}
	for i := range tiers {
		if len(tiers[i].fragments) > 0 {
			return &tiers[i]
		}
	}
	return nil
}

func fieldValue(line string) string {
	_, value, _ := strings.Cut(line, "=")
	return strings.TrimSpace(value)
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

func parseFloatField(line string) (float64, error) {
	value := fieldValue(line)
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("textgrid: bad time value %q: %w", value, err)
	}
	return v, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
