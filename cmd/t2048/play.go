package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagNew bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start playing 2048. An unfinished game from the last session is resumed
unless --new is given.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Slide tiles
  Z/U              - Undo
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit (the game is saved)

Difficulty options:
  easy   - 10 undo steps
  normal - 5 undo steps
  hard   - 3 undo steps

Examples:
  t2048 play
  t2048 play --new
  t2048 play --difficulty hard
  t2048 play --seed 42 --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard any saved game and start fresh")
}

// localSession is the session for a player on this machine: progress is
// tracked and unfinished games are kept.
func localSession(cfg config.Config) (tui.Session, func()) {
	logger, closeLog := fileLogger(cfg.Storage.DBPath)
	store := openStore(cfg.Storage.DBPath)

	session := tui.Session{
		Store:               store,
		Logger:              logger,
		TrackProgress:       true,
		Resume:              true,
		MouseSwipeThreshold: cfg.Input.MouseSwipeThreshold,
		ScreenshotDir:       filepath.Join(dataDir(cfg.Storage.DBPath), "screenshots"),
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return session, cleanup
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	width, height := terminalSize()

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	session, cleanup := localSession(cfg)
	session.Logger.Debug("starting game", "difficulty", flagDifficulty, "new", flagNew)

	game := t2048.New(cfg.EngineOptions()...)
	runErr := tui.Run(game, session, rt, flagNew)

	// Close store before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
