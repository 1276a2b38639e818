package storage

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/number-quest/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSession(t *testing.T) {
	a := NewSession("numquest", "ana")
	b := NewSession("numquest", "ana")

	if a.ID == b.ID {
		t.Error("session IDs should be unique")
	}
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("session ID %q is not a UUID: %v", a.ID, err)
	}
	if a.Player != "ana" || a.GameID != "numquest" {
		t.Errorf("NewSession() = %+v", a)
	}
}

func TestStoreOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRound(NewSession("numquest", "x"), core.RoundResult{Round: 1, Operator: "less"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
}

func TestSaveAndSessionRounds(t *testing.T) {
	store := openTestStore(t)
	sess := NewSession("numquest", "ana")
	other := NewSession("numquest", "bo")

	results := []core.RoundResult{
		{Round: 1, Operator: "less", Won: false, LivesLeft: 0, Mistakes: 3, Score: 10},
		{Round: 2, Operator: "less", Won: true, LivesLeft: 2, Mistakes: 1, Score: 70},
		{Round: 3, Operator: "greater", Won: true, LivesLeft: 3, Mistakes: 0, Score: 130},
	}
	for _, r := range results {
		if _, err := store.SaveRound(sess, r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(other, core.RoundResult{Round: 1, Operator: "equal", Won: true, Score: 500}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	entries, err := store.SessionRounds(sess.ID, 10)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d rounds, want 3", len(entries))
	}

	// Newest first
	if entries[0].Round != 3 || entries[2].Round != 1 {
		t.Errorf("rounds out of order: %d, %d", entries[0].Round, entries[2].Round)
	}
	if entries[0].RoundResult != results[2] {
		t.Errorf("entry = %+v, want %+v", entries[0].RoundResult, results[2])
	}
	if entries[1].Player != "ana" || entries[1].GameID != "numquest" {
		t.Errorf("entry metadata = %+v", entries[1])
	}

	limited, err := store.SessionRounds(sess.ID, 2)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d", len(limited))
	}
}

func TestSessionSummary(t *testing.T) {
	store := openTestStore(t)
	sess := NewSession("numquest", "ana")

	empty, err := store.SessionSummary(sess.ID)
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.BestScore != 0 {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveRound(sess, core.RoundResult{Round: 1, Operator: "less", Won: false, Mistakes: 3, Score: 20})
	store.SaveRound(sess, core.RoundResult{Round: 2, Operator: "less", Won: true, Mistakes: 1, Score: 80})

	stats, err := store.SessionSummary(sess.ID)
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Rounds", stats.Rounds, 2},
		{"Wins", stats.Wins, 1},
		{"Losses", stats.Losses, 1},
		{"Mistakes", stats.Mistakes, 4},
		{"BestScore", stats.BestScore, 80},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if stats.Player != "ana" {
		t.Errorf("Player = %q, want ana", stats.Player)
	}
}

func TestLeaderboard(t *testing.T) {
	store := openTestStore(t)

	scores := map[string]int{"ana": 120, "bo": 300, "cy": 50}
	for player, score := range scores {
		sess := NewSession("numquest", player)
		store.SaveRound(sess, core.RoundResult{Round: 1, Operator: "less", Won: true, Score: score / 2})
		store.SaveRound(sess, core.RoundResult{Round: 2, Operator: "greater", Won: true, Score: score})
	}
	store.SaveRound(NewSession("other", "zed"), core.RoundResult{Round: 1, Score: 9999})

	board, err := store.Leaderboard("numquest", 2)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("got %d entries, want 2", len(board))
	}
	if board[0].Player != "bo" || board[0].BestScore != 300 {
		t.Errorf("first = %+v, want bo with 300", board[0])
	}
	if board[1].Player != "ana" || board[1].Rounds != 2 || board[1].Wins != 2 {
		t.Errorf("second = %+v, want ana with 2 wins", board[1])
	}
}

func TestOperatorRecords(t *testing.T) {
	store := openTestStore(t)
	sess := NewSession("numquest", "ana")

	store.SaveRound(sess, core.RoundResult{Round: 1, Operator: "less", Won: false})
	store.SaveRound(sess, core.RoundResult{Round: 2, Operator: "less", Won: true})
	store.SaveRound(sess, core.RoundResult{Round: 3, Operator: "greater", Won: true})

	records, err := store.OperatorRecords(sess.ID)
	if err != nil {
		t.Fatalf("OperatorRecords() failed: %v", err)
	}

	want := map[string]OperatorRecord{
		"less":    {Operator: "less", Wins: 1, Losses: 1},
		"greater": {Operator: "greater", Wins: 1, Losses: 0},
	}
	if len(records) != len(want) {
		t.Fatalf("records = %v", records)
	}
	for op, w := range want {
		if records[op] != w {
			t.Errorf("records[%s] = %+v, want %+v", op, records[op], w)
		}
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := NewSession("numquest", "remote")
			for r := 1; r <= 5; r++ {
				if _, err := store.SaveRound(sess, core.RoundResult{Round: r, Operator: "equal", Score: r}); err != nil {
					t.Errorf("SaveRound() failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	board, err := store.Leaderboard("numquest", 100)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(board) != 8 {
		t.Errorf("got %d sessions, want 8", len(board))
	}
}
