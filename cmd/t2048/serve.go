package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that allows users to connect and play 2048.

Each SSH connection gets its own session with a menu. Scores are stored
per-server (all users share the same leaderboard). Remote games are not
saved for resuming and do not count towards local statistics.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise server.host_key_path from the config is used

Examples:
  t2048 serve                           # Listen on :23234
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (overrides server.address)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides server.host_key_path)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides server.idle_timeout)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(os.Stderr, "t2048-ssh")

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	hostKey := cfg.Server.HostKeyPath
	if hostKey != "" {
		expanded, err := storage.ExpandPath(hostKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving host key path: %v\n", err)
			os.Exit(1)
		}
		hostKey = expanded
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database, scores will not be kept", "error", err)
		store = nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:             cfg.Server.Address,
		HostKeyPath:         hostKey,
		IdleTimeout:         cfg.Server.IdleTimeout,
		MouseSwipeThreshold: cfg.Input.MouseSwipeThreshold,
		EngineOptions:       cfg.EngineOptions(),
	}, store, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
