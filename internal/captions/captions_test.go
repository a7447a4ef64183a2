package captions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"capsync/internal/align"
)

func TestApplyDisplayFloor(t *testing.T) {
	words := []align.Word{
		{Word: "a", Start: 0.0, End: 0.05},
		{Word: "b", Start: 0.05, End: 1.0},
	}

	out := ApplyDisplayFloor(words, 0.15)
	if out[0].End != 0.15 {
		t.Errorf("expected short word extended to 0.15, got %v", out[0].End)
	}
	if out[1].Start != 0.05 || out[1].End != 1.0 {
		t.Errorf("expected long word untouched, got %+v", out[1])
	}
	if words[0].End != 0.05 {
		t.Error("input slice was modified")
	}
}

func TestApplyDisplayFloorDisabled(t *testing.T) {
	words := []align.Word{{Word: "a", Start: 0.0, End: 0.05}}
	out := ApplyDisplayFloor(words, 0)
	if out[0].End != 0.05 {
		t.Errorf("expected no change with zero floor, got %v", out[0].End)
	}
}

func TestWriteWordsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	words := []align.Word{
		{Word: "hello", Start: 0.0, End: 0.5},
		{Word: "world", Start: 0.5, End: 1.0},
	}

	if err := WriteWordsJSON(path, words); err != nil {
		t.Fatalf("WriteWordsJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if data[len(data)-1] != '\n' {
		t.Error("expected trailing newline")
	}

	var decoded []align.Word
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Word != "world" {
		t.Fatalf("unexpected round-trip result: %+v", decoded)
	}
}
