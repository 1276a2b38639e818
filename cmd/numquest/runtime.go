package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/games/numquest"
	"github.com/vovakirdan/number-quest/internal/games/numquest/round"
	"github.com/vovakirdan/number-quest/internal/storage"
)

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger returns a logger writing to --log-file. Without a log file the
// logger discards everything, since the terminal belongs to the game.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "numquest",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil //nolint:errcheck
}

// newLocalSession starts a journal session for the local user.
func newLocalSession() storage.Session {
	player := "player"
	if u, err := user.Current(); err == nil && u.Username != "" {
		player = u.Username
	}
	return storage.NewSession(numquest.GameID, player)
}

// printSummary prints the session totals once the terminal is released.
func printSummary(store *storage.Store, session storage.Session) {
	if store == nil {
		return
	}

	stats, err := store.SessionSummary(session.ID)
	if err != nil || stats.Rounds == 0 {
		return
	}

	fmt.Printf("Session summary for %s\n", session.Player)
	fmt.Printf("  Rounds:     %d\n", stats.Rounds)
	fmt.Printf("  Won/Lost:   %d/%d\n", stats.Wins, stats.Losses)
	fmt.Printf("  Mistakes:   %d\n", stats.Mistakes)
	fmt.Printf("  Best score: %d\n", stats.BestScore)

	records, err := store.OperatorRecords(session.ID)
	if err != nil {
		return
	}
	for _, op := range round.Operators {
		if rec, ok := records[op.ID()]; ok {
			fmt.Printf("  %-8s    %d won, %d lost\n", op.ID()+":", rec.Wins, rec.Losses)
		}
	}
}
