package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List the comparison operators",
	Long:  `Shows every operator with the identifiers accepted by --operator.`,
	Args:  cobra.NoArgs,
	Run:   runOperators,
}

func runOperators(_ *cobra.Command, _ []string) {
	fmt.Println("Operators:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-6s  %-16s  %s\n", "ID", "Symbol", "Label", "Also accepted")
	fmt.Printf("  %-8s  %-6s  %-16s  %s\n", "--", "------", "-----", "-------------")

	for _, op := range round.Operators {
		aliases := round.Aliases(op)
		sort.Strings(aliases)
		fmt.Printf("  %-8s  %-6s  %-16s  %s\n", op.ID(), op.Symbol(), op.Label(), strings.Join(aliases, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'numquest play --operator <id>' to start with an operator.")
}
