package workspace

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ws")

	ws, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if ws.Dir() != dir {
		t.Errorf("unexpected dir: %q", ws.Dir())
	}
	if ws.RunsDBPath() != filepath.Join(dir, "runs.db") {
		t.Errorf("unexpected runs db path: %q", ws.RunsDBPath())
	}

	if _, err := Acquire(dir); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked on second acquire, got %v", err)
	}

	if err := ws.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	ws2, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	if err := ws2.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestAcquireEmptyDir(t *testing.T) {
	if _, err := Acquire(""); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
