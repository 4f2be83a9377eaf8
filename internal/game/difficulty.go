package game

import (
	"fmt"
	"strings"
)

// Difficulty is a named code length / repeat policy preset.
type Difficulty string

const (
	Easy   Difficulty = "easy"   // 3 digits, no repeats
	Medium Difficulty = "medium" // 4 digits, no repeats
	Hard   Difficulty = "hard"   // 5 digits, repeats allowed
)

// ParseDifficulty accepts a preset name or its menu number (1–3).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", string(Easy):
		return Easy, nil
	case "2", string(Medium):
		return Medium, nil
	case "3", string(Hard):
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Config expands the preset into a session configuration.
func (d Difficulty) Config(maxAttempts int, mode Mode) Config {
	cfg := Config{MaxAttempts: maxAttempts, Mode: mode}
	switch d {
	case Easy:
		cfg.CodeLength, cfg.Repeats = 3, NoRepeats
	case Medium:
		cfg.CodeLength, cfg.Repeats = 4, NoRepeats
	default:
		cfg.CodeLength, cfg.Repeats = 5, AllowRepeats
	}
	return cfg
}

// DifficultyName returns a stable label key for a configuration:
// "easy", "medium", "hard", "hard_repeats" or "custom".
func DifficultyName(cfg Config) string {
	switch cfg.CodeLength {
	case 3:
		return "easy"
	case 4:
		return "medium"
	case 5:
		if cfg.Repeats == AllowRepeats {
			return "hard_repeats"
		}
		return "hard"
	}
	return "custom"
}
