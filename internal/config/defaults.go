package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			HistoryDepth: engine.DefaultHistoryDepth,
		},
		Input: InputConfig{
			MouseSwipeThreshold: 3,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/t2048.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKeyPath: ".ssh/t2048_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
