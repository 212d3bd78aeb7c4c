package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/progress"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagStatsTUI bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics and achievements",
	Long: `Display lifetime statistics and the achievement list.

Examples:
  t2048 stats
  t2048 stats --tui`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse scores, statistics and achievements interactively")
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsTUI {
		width, height := terminalSize()
		if err := tui.RunStats(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tracker := progress.NewTracker(store)
	stats, err := tracker.Stats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading statistics: %v\n", err)
		os.Exit(1)
	}
	unlocked, err := tracker.Achievements()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading achievements: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()
	for _, line := range stats.Lines() {
		fmt.Printf("  %-14s  %s\n", line.Label, line.Value)
	}

	fmt.Println()
	fmt.Printf("Achievements (%d/%d)\n", unlocked.Count(), len(progress.Catalogue))
	fmt.Println()
	for _, a := range progress.Catalogue {
		mark := " "
		if unlocked.Unlocked(a.ID) {
			mark = "x"
		}
		fmt.Printf("  [%s] %-16s  %s\n", mark, a.Title, a.Description)
	}
}
