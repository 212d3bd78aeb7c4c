package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset. An empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the game settings for a difficulty preset.
// Presets only shorten the undo history; tile spawning never changes.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.HistoryDepth = engine.DefaultHistoryDepth
	case DifficultyNormal:
		cfg.Game.HistoryDepth = 5
	case DifficultyHard:
		cfg.Game.HistoryDepth = 3
	}
}
