package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// isolate points the search path at empty temporary directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("embedded YAML differs from Default() (-want +got):\n%s", diff)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", FileName), "game:\n  history_depth: 4\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.HistoryDepth != 4 {
		t.Errorf("local config not used: history_depth = %d", cfg.Game.HistoryDepth)
	}
	if cfg.Input.MouseSwipeThreshold != 3 {
		t.Errorf("missing field lost its default: mouse_swipe_threshold = %d", cfg.Input.MouseSwipeThreshold)
	}

	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game:\n  history_depth: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.HistoryDepth != 6 {
		t.Errorf("user config should win over local: history_depth = %d", cfg.Game.HistoryDepth)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "server:\n  idle_timeout: 90s\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Game.HistoryDepth != 10 || cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("custom config not used alone: %+v", cfg)
	}
}

func TestLoadSkipsMalformedOptionalFiles(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", FileName), "game: [not, a, map")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.HistoryDepth != 10 {
		t.Errorf("history_depth = %d, want default", cfg.Game.HistoryDepth)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "game: [")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "game:\n  history_depth: 20\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero history", func(c *Config) { c.Game.HistoryDepth = 0 }},
		{"history deeper than the engine keeps", func(c *Config) { c.Game.HistoryDepth = 11 }},
		{"huge history", func(c *Config) { c.Game.HistoryDepth = 500 }},
		{"zero mouse threshold", func(c *Config) { c.Input.MouseSwipeThreshold = 0 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	for _, s := range []string{"easy", "Normal", " hard ", ""} {
		p, err := ParseDifficulty(s)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) failed: %v", s, err)
		}
		cfg := Default()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q produced invalid config: %v", p, err)
		}
		if cfg.Game.HistoryDepth > engine.DefaultHistoryDepth {
			t.Errorf("preset %q history_depth = %d, want at most %d", p, cfg.Game.HistoryDepth, engine.DefaultHistoryDepth)
		}
	}

	if _, err := ParseDifficulty("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseDifficulty(nightmare) = %v, want ErrInvalid", err)
	}

	easy, hard := Default(), Default()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)
	if easy.Game.HistoryDepth <= hard.Game.HistoryDepth {
		t.Error("easy should allow more undo than hard")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	if n := len(cfg.EngineOptions()); n != 1 {
		t.Errorf("EngineOptions() returned %d options, want 1", n)
	}
}

func TestPresetsKeepHistoryWithinEngineLimit(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		t.Run(string(p), func(t *testing.T) {
			home, _ := isolate(t)
			writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game:\n  history_depth: 10\n")

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			ApplyPreset(&cfg, p)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}

			s := engine.NewGame(append(cfg.EngineOptions(), engine.WithSeed(3))...)
			for i := 0; i < 100 && !s.IsGameOver(); i++ {
				s.ApplyMove(engine.Directions[i%len(engine.Directions)])
			}
			if got := s.HistoryLen(); got > cfg.Game.HistoryDepth || got > engine.DefaultHistoryDepth {
				t.Errorf("history len = %d, want at most %d", got, cfg.Game.HistoryDepth)
			}
		})
	}
}
