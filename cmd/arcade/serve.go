package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkarpov/arcadium/internal/platform/tui"
	"github.com/dkarpov/arcadium/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagServeGame   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH",
	Long: `Start an SSH server that lets anyone play over the network.

Each connection gets its own session with the game menu. Pass --game
to pin every session to a single game instead.

Examples:
  arcade serve
  arcade serve --addr :2222
  arcade serve --game drift
  arcade serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh -p 23234 localhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", ":23234", "address to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.arcade/scores.db", "path to scores database")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "", "pin all sessions to one game (empty shows the menu)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "disconnect idle sessions after this duration")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeGame != "" && !registry.Exists(flagServeGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n\n", flagServeGame)
		fmt.Fprintln(os.Stderr, "Use 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		GameID:      flagServeGame,
		IdleTimeout: flagIdleTimeout,
	}

	srv, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
