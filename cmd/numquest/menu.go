package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/games/numquest"
	"github.com/vovakirdan/number-quest/internal/platform/tui"
	"github.com/vovakirdan/number-quest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick the operator and difficulty from a menu",
	Long: `Start Number Quest in interactive menu mode.

Choose the comparison to start with and a difficulty, then play.
Leaving a finished or paused round returns to the menu. Tab opens
the history of this session and the leaderboard.

Controls:
  Up/Down/j/k     - Choose operator
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - Session history
  Q               - Quit

Examples:
  numquest menu
  numquest menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if _, err := config.LoadNumQuest(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	numquest.SetConfigPath(flagConfig)

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round journal: %v\n", err)
		store = nil
	}

	session := newLocalSession()
	cfg := runtimeConfig()
	if envDefaults.Operator != "" {
		cfg = cfg.WithParam("operator", envDefaults.Operator)
	}
	if envDefaults.Difficulty != "" {
		cfg = cfg.WithParam("difficulty", envDefaults.Difficulty)
	}

	runErr := tui.RunSession(store, session, logger, cfg)
	printSummary(store, session)

	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
