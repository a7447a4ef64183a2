package transcript

import (
	"strings"
	"testing"
)

const sampleTextGrid = `File type = "ooTextFile"
Object class = "TextGrid"

xmin = 0
xmax = 3.5
tiers? <exists>
size = 2
item []:
    item [1]:
        class = "IntervalTier"
        name = "words"
        xmin = 0
        xmax = 3.5
        intervals: size = 5
        intervals [1]:
            xmin = 0
            xmax = 0.25
            text = ""
        intervals [2]:
            xmin = 0.25
            xmax = 1.0
            text = "hello"
        intervals [3]:
            xmin = 1.0
            xmax = 1.5
            text = "<eps>"
        intervals [4]:
            xmin = 1.5
            xmax = 2.25
            text = "<unk>"
        intervals [5]:
            xmin = 2.25
            xmax = 3.4999
            text = "world"
    item [2]:
        class = "IntervalTier"
        name = "phones"
        xmin = 0
        xmax = 3.5
        intervals: size = 1
        intervals [1]:
            xmin = 0.25
            xmax = 0.5
            text = "HH"
`

func TestParseTextGrid(t *testing.T) {
	fragments, stats, err := ParseTextGrid(strings.NewReader(sampleTextGrid))
	if err != nil {
		t.Fatalf("ParseTextGrid failed: %v", err)
	}
	if len(fragments) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %+v", len(fragments), fragments)
	}
	if stats.Intervals != 3 {
		t.Errorf("expected 3 counted intervals, got %d", stats.Intervals)
	}
	if stats.Unknown != 1 {
		t.Errorf("expected 1 unknown interval, got %d", stats.Unknown)
	}

	if fragments[0].Text != "hello" || fragments[0].Start != 0.25 || fragments[0].End != 1.0 {
		t.Errorf("unexpected first fragment: %+v", fragments[0])
	}
	if fragments[1].Text != "<unk>" {
		t.Errorf("expected <unk> placeholder kept, got %q", fragments[1].Text)
	}
	if fragments[2].End != 3.5 {
		t.Errorf("expected end rounded to 3.5, got %v", fragments[2].End)
	}
}

func TestParseTextGridFallsBackToFirstTier(t *testing.T) {
	grid := `item [1]:
        class = "IntervalTier"
        name = "speech"
        intervals [1]:
            xmin = 0
            xmax = 1.0
            text = "only"
`
	fragments, _, err := ParseTextGrid(strings.NewReader(grid))
	if err != nil {
		t.Fatalf("ParseTextGrid failed: %v", err)
	}
	if len(fragments) != 1 || fragments[0].Text != "only" {
		t.Fatalf("expected fallback tier fragment, got %+v", fragments)
	}
}

func TestParseTextGridNoWords(t *testing.T) {
	grid := `item [1]:
        class = "IntervalTier"
        name = "words"
        intervals [1]:
            xmin = 0
            xmax = 1.0
            text = ""
`
	if _, _, err := ParseTextGrid(strings.NewReader(grid)); err == nil {
		t.Fatal("expected error when no intervals survive")
	}
}

func TestParseTextGridBadTime(t *testing.T) {
	grid := `item [1]:
        class = "IntervalTier"
        name = "words"
        intervals [1]:
            xmin = oops
            xmax = 1.0
            text = "x"
`
	if _, _, err := ParseTextGrid(strings.NewReader(grid)); err == nil {
		t.Fatal("expected error for unparseable time")
	}
}
