// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play, resuming the last unfinished game
//	t2048 menu               - Start menu with game, scores and statistics
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show high scores
//	t2048 stats              - Show lifetime statistics and achievements
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default from config: ~/.t2048/t2048.db)
//	--config <path>       - Use a custom YAML config file
//	--difficulty <preset> - easy, normal or hard
//	--verbose             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal. Slide the board, merge equal
tiles and try to reach 2048 and beyond.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu with scores and statistics
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View lifetime statistics and achievements
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --new --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 scores --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides storage.db_path)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from files, the difficulty preset
// and the --db flag, in that order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, cfg.Validate()
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger writing to w at the level selected by --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// dataDir returns the directory holding the database, the log file and
// screenshots.
func dataDir(dbPath string) string {
	expanded, err := storage.ExpandPath(dbPath)
	if err != nil {
		expanded = dbPath
	}
	return filepath.Dir(expanded)
}

// fileLogger logs to t2048.log next to the database so the alternate screen
// stays clean. Falls back to discarding output.
func fileLogger(dbPath string) (*log.Logger, func()) {
	dir := dataDir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "t2048"), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "t2048.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "t2048"), func() {}
	}
	return newLogger(f, "t2048"), func() { f.Close() }
}

// terminalSize returns the terminal dimensions, or 80x24 when unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the database, returning nil with a warning on failure so
// the game still works.
func openStore(dbPath string) *storage.Store {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}
