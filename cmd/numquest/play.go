package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-quest/internal/config"
	"github.com/vovakirdan/number-quest/internal/games/numquest"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
	"github.com/vovakirdan/number-quest/internal/platform/tui"
	"github.com/vovakirdan/number-quest/internal/registry"
	"github.com/vovakirdan/number-quest/internal/storage"
)

var (
	flagOperator   string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Number Quest",
	Long: `Start playing right away from the given operator.

Controls:
  A/D, Left/Right  - Walk
  Space/W/Up       - Jump
  P/Esc            - Pause
  R                - Retry (after losing)
  Enter            - Next level (after winning)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Operators (see 'numquest operators'):
  less     - Land on the smallest number
  greater  - Land on the largest number
  equal    - Land on both equal numbers

Difficulty options:
  easy    - One bomb, higher jump, slower walk
  normal  - Two bombs
  hard    - Three bombs, one on the goal step, faster walk

Examples:
  numquest play
  numquest play --operator equal
  numquest play --operator mayor --difficulty hard
  numquest play --config ./my-numquest.yaml --log-file ./numquest.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagOperator, "operator", envDefaults.Operator, "Starting operator: less, greater, equal")
	playCmd.Flags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", envDefaults.Difficulty, "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Surface config errors before the terminal is taken over
	if _, err := config.LoadNumQuest(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using the config file values\n", flagDifficulty)
	}
	op, ok := round.ParseOperator(flagOperator)
	if !ok && flagOperator != "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown operator %q, starting with %s\n", flagOperator, op.ID())
	}

	numquest.SetConfigPath(flagConfig)
	numquest.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(numquest.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// The journal lives only as long as this process
	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	session := newLocalSession()
	cfg := runtimeConfig().WithParam("operator", op.ID())

	runErr := tui.Run(game, store, session, logger, cfg)
	printSummary(store, session)

	// Close store before potential exit
	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
