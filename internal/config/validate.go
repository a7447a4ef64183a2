package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlign(); err != nil {
		return err
	}
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlign() error {
	if c.Align.MinTokenDuration <= 0 {
		return errors.New("align.min_token_duration must be positive")
	}
	if c.Align.TrailingRate <= 0 {
		return errors.New("align.trailing_rate must be positive")
	}
	if c.Align.MinMatchRun < 1 {
		return errors.New("align.min_match_run must be >= 1")
	}
	if c.Align.MinMatchTokenLen < 1 {
		return errors.New("align.min_match_token_len must be >= 1")
	}
	if c.Align.RoundDecimals < 0 || c.Align.RoundDecimals > 6 {
		return errors.New("align.round_decimals must be between 0 and 6")
	}
	if c.Align.DisplayFloor < 0 {
		return errors.New("align.display_floor must be >= 0")
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	if c.Segmenter.DictionaryPath == "" {
		return nil
	}
	info, err := os.Stat(c.Segmenter.DictionaryPath)
	if err != nil {
		return fmt.Errorf("segmenter.dictionary_path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("segmenter.dictionary_path %q is a directory", c.Segmenter.DictionaryPath)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}
