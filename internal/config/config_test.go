package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"capsync/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantWorkspace := filepath.Join(tempHome, ".local", "share", "capsync")
	if cfg.Paths.WorkspaceDir != wantWorkspace {
		t.Fatalf("unexpected workspace dir: got %q want %q", cfg.Paths.WorkspaceDir, wantWorkspace)
	}
	if cfg.Align.MinTokenDuration != 0.1 {
		t.Fatalf("unexpected min token duration: %v", cfg.Align.MinTokenDuration)
	}
	if cfg.Align.TrailingRate != 0.5 {
		t.Fatalf("unexpected trailing rate: %v", cfg.Align.TrailingRate)
	}
	if cfg.Align.UniformFallback {
		t.Fatal("expected uniform fallback disabled by default")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.WorkspaceDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "capsync.toml")

	type payload struct {
		Align struct {
			TrailingRate  float64 `toml:"trailing_rate"`
			RoundDecimals int     `toml:"round_decimals"`
		} `toml:"align"`
		Segmenter struct {
			CustomWords []string `toml:"custom_words"`
		} `toml:"segmenter"`
	}
	custom := payload{}
	custom.Align.TrailingRate = 0.75
	custom.Align.RoundDecimals = 3
	custom.Segmenter.CustomWords = []string{"capsync", " capsync ", ""}

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Align.TrailingRate != 0.75 {
		t.Fatalf("expected trailing rate override, got %v", cfg.Align.TrailingRate)
	}
	if cfg.Align.RoundDecimals != 3 {
		t.Fatalf("expected round decimals override, got %d", cfg.Align.RoundDecimals)
	}
	if cfg.Align.MinTokenDuration != 0.1 {
		t.Fatalf("expected default min token duration, got %v", cfg.Align.MinTokenDuration)
	}
	if len(cfg.Segmenter.CustomWords) != 1 || cfg.Segmenter.CustomWords[0] != "capsync" {
		t.Fatalf("expected deduplicated trimmed custom words, got %v", cfg.Segmenter.CustomWords)
	}
}

func TestAlignOptions(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts := cfg.AlignOptions()
	if opts.MinTokenDuration != cfg.Align.MinTokenDuration {
		t.Fatalf("unexpected min token duration: %v", opts.MinTokenDuration)
	}
	if opts.MinMatchRun != cfg.Align.MinMatchRun {
		t.Fatalf("unexpected min match run: %d", opts.MinMatchRun)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "min_token_duration") {
		t.Fatalf("sample config missing align settings: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Align.TrailingRate != 0.5 {
		t.Fatalf("unexpected sample trailing rate: %v", cfg.Align.TrailingRate)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Align.RoundDecimals = 9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for round_decimals out of range")
	}

	cfg = config.Default()
	cfg.Align.DisplayFloor = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative display floor")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
