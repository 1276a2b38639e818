package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-quest/internal/core"
	"github.com/vovakirdan/number-quest/internal/storage"
)

func seedJournal(t *testing.T, store *storage.Store, sess storage.Session, results ...core.RoundResult) {
	t.Helper()
	for _, r := range results {
		if _, err := store.SaveRound(sess, r); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}
}

func TestHistoryShowsSessionRounds(t *testing.T) {
	store := newTestStore(t)
	sess := storage.NewSession("numquest", "ana")
	seedJournal(t, store, sess,
		core.RoundResult{Round: 1, Operator: "less", Won: true, LivesLeft: 3, Score: 110},
		core.RoundResult{Round: 2, Operator: "greater", Won: false, Mistakes: 3, Score: 110},
	)

	m := NewHistoryModel(store, sess, 100, 30)
	view := m.View()

	for _, want := range []string{"SESSION HISTORY", "less <", "greater >", "won", "lost", "Rounds:   2"} {
		if !strings.Contains(view, want) {
			t.Errorf("history view missing %q", want)
		}
	}
}

func TestHistoryToggleLeaderboard(t *testing.T) {
	store := newTestStore(t)
	mine := storage.NewSession("numquest", "ana")
	other := storage.NewSession("numquest", "bruno")
	seedJournal(t, store, mine, core.RoundResult{Round: 1, Operator: "less", Won: true, Score: 60})
	seedJournal(t, store, other, core.RoundResult{Round: 1, Operator: "less", Won: true, Score: 240})

	var model tea.Model = NewHistoryModel(store, mine, 100, 30)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := model.View()

	if !strings.Contains(view, "LEADERBOARD") {
		t.Fatal("tab should switch to the leaderboard")
	}
	if !strings.Contains(view, "bruno") || !strings.Contains(view, "ana *") {
		t.Error("leaderboard should list both sessions and mark the current one")
	}
	if strings.Index(view, "bruno") > strings.Index(view, "ana *") {
		t.Error("leaderboard should rank the higher score first")
	}
}

func TestHistoryEmptyAndNavigation(t *testing.T) {
	var model tea.Model = NewHistoryModel(nil, storage.NewSession("numquest", "ana"), 60, 20)
	if !strings.Contains(model.View(), "No rounds played yet") {
		t.Error("empty journal should show a placeholder")
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !model.(HistoryModel).IsGoingBack() || cmd == nil {
		t.Error("esc should close the board")
	}

	model = NewHistoryModel(nil, storage.Session{}, 60, 20)
	model, _ = model.Update(runeKey('q'))
	if !model.(HistoryModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	store := newTestStore(t)
	sess := storage.NewSession("numquest", "ana")
	seedJournal(t, store, sess, core.RoundResult{Round: 1, Operator: "equal", Won: true, Score: 80})

	var model tea.Model = NewSessionModel(store, sess, nil, testConfig())

	// Menu -> history -> menu.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(model.View(), "SESSION HISTORY") {
		t.Fatal("tab in the menu should open the history")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !strings.Contains(model.View(), "N U M B E R") {
		t.Fatal("esc in the history should return to the menu")
	}

	model, cmd := model.Update(runeKey('q'))
	if !model.(SessionModel).IsQuitting() || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionUnknownGameQuits(t *testing.T) {
	sess := storage.NewSession("no-such-game", "ana")
	var model tea.Model = NewSessionModel(nil, sess, nil, testConfig())
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !model.(SessionModel).IsQuitting() {
		t.Error("a session for an unregistered game should end")
	}
}
