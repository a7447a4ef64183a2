package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSegmenter(); err != nil {
		return err
	}
	c.normalizeAlign()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkspaceDir) == "" {
		c.Paths.WorkspaceDir = defaultWorkspaceDir
	}
	if c.Paths.WorkspaceDir, err = expandPath(c.Paths.WorkspaceDir); err != nil {
		return fmt.Errorf("paths.workspace_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSegmenter() error {
	c.Segmenter.DictionaryPath = strings.TrimSpace(c.Segmenter.DictionaryPath)
	if c.Segmenter.DictionaryPath != "" {
		var err error
		if c.Segmenter.DictionaryPath, err = expandPath(c.Segmenter.DictionaryPath); err != nil {
			return fmt.Errorf("segmenter.dictionary_path: %w", err)
		}
	}
	words := make([]string, 0, len(c.Segmenter.CustomWords))
	seen := make(map[string]struct{}, len(c.Segmenter.CustomWords))
	for _, word := range c.Segmenter.CustomWords {
		trimmed := strings.TrimSpace(word)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		words = append(words, trimmed)
	}
	c.Segmenter.CustomWords = words
	return nil
}

func (c *Config) normalizeAlign() {
	if c.Align.MinTokenDuration <= 0 {
		c.Align.MinTokenDuration = defaultMinTokenDuration
	}
	if c.Align.TrailingRate <= 0 {
		c.Align.TrailingRate = defaultTrailingRate
	}
	if c.Align.MinMatchRun <= 0 {
		c.Align.MinMatchRun = defaultMinMatchRun
	}
	if c.Align.MinMatchTokenLen <= 0 {
		c.Align.MinMatchTokenLen = defaultMinMatchTokenLen
	}
	if c.Align.RoundDecimals <= 0 {
		c.Align.RoundDecimals = defaultRoundDecimals
	}
	if c.Align.DisplayFloor < 0 {
		c.Align.DisplayFloor = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
