// Package config provides YAML-based configuration loading for the game,
// its storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig tunes the board engine. The tile rules themselves are fixed.
type GameConfig struct {
	HistoryDepth int `yaml:"history_depth"` // undo steps kept, at most engine.DefaultHistoryDepth
}

// InputConfig defines the mouse swipe threshold.
type InputConfig struct {
	MouseSwipeThreshold int `yaml:"mouse_swipe_threshold"` // terminal cells
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.Game.HistoryDepth < 1 || c.Game.HistoryDepth > engine.DefaultHistoryDepth:
		return fmt.Errorf("%w: game.history_depth must be between 1 and %d, got %d",
			ErrInvalid, engine.DefaultHistoryDepth, c.Game.HistoryDepth)
	case c.Input.MouseSwipeThreshold < 1:
		return fmt.Errorf("%w: input.mouse_swipe_threshold must be at least 1, got %d", ErrInvalid, c.Input.MouseSwipeThreshold)
	case c.Storage.DBPath == "":
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	case c.Server.IdleTimeout < 0:
		return fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalid)
	}
	return nil
}

// EngineOptions returns the engine options this configuration implies.
func (c Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithHistoryDepth(c.Game.HistoryDepth),
	}
}
