// numquest is a terminal number-comparison platformer: land on the tiles that
// satisfy the round's comparison, clear the wall and reach the flag.
//
// Usage:
//
//	numquest play            - Play starting from one operator
//	numquest menu            - Pick the operator and difficulty interactively
//	numquest operators       - List operators and their launch identifiers
//	numquest serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible rounds
//	--log-file <path>  - Write a debug log while playing
//
// Every flag falls back to its NUMQUEST_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-quest/internal/config"

	// Import the game to register it
	_ "github.com/vovakirdan/number-quest/internal/games/numquest"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagVerbose bool
)

// envDefaults seed the flag defaults of every command.
var envDefaults, envErr = config.ParseEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numquest",
	Short: "Number Quest - compare numbers, jump and reach the flag",
	Long: `Number Quest is a small terminal platformer about comparing numbers.

Each round shows five numbered tiles and a comparison: less than,
greater than or equal to. Land on every tile that satisfies it to
remove the wall, then climb the steps to the flag. Three mistakes
lose the round; winning moves on to the next comparison.

Available commands:
  play       - Play directly, starting from a given operator
  menu       - Interactive operator and difficulty picker
  operators  - Show the operators and their identifiers
  serve      - Start SSH server for remote play

Examples:
  numquest play
  numquest play --operator greater --difficulty easy
  numquest menu
  numquest serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return envErr
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", envDefaults.LogFile, "Write a log to this file while playing")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Include debug messages in the log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(operatorsCmd)
	rootCmd.AddCommand(serveCmd)
}
