package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/games/numquest"
	"github.com/vovakirdan/number-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Number Quest SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the operator menu.
Rounds are journaled in memory and shared by all sessions for the
leaderboard; nothing is kept after the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.numquest/host_key

Examples:
  numquest serve                           # Listen on localhost:2222
  numquest serve --ssh :2222               # Listen on all interfaces
  numquest serve --host-key ./my_host_key  # Use specific host key
  numquest serve --difficulty hard         # Every session starts on hard

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envDefaults.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", envDefaults.HostKey, "Path to host key file (auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", envDefaults.Difficulty, "Default difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) {
	if _, err := config.LoadNumQuest(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	numquest.SetConfigPath(flagConfig)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	if preset := config.ParseDifficultyPreset(flagDifficulty); preset != "" {
		cfg.Params = map[string]string{"difficulty": string(preset)}
	}

	server, err := tui.NewSSHServer(numquest.GameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Number Quest SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
