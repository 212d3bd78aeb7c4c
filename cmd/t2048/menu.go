package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with a menu",
	Long: `Start 2048 in interactive menu mode.

Pick New Game to play (an unfinished game is resumed), or High Scores to
browse scores, statistics and achievements. Esc in a game returns to the
menu and keeps the game for later.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Switch tabs on the scores screen
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./t2048.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	width, height := terminalSize()

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	session, cleanup := localSession(cfg)
	runErr := tui.RunMenu(session, rt, cfg.EngineOptions())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
