package storage

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedgerOpenIsEmpty(t *testing.T) {
	l := openTestLedger(t)

	records, err := l.Recent("", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty ledger, got %d records", len(records))
	}

	// Two ledgers never share state
	other := openTestLedger(t)
	if _, err := l.RecordMatch(MatchRecord{SessionID: "a", Winner: 1}); err != nil {
		t.Fatalf("RecordMatch() failed: %v", err)
	}
	records, _ = other.Recent("", 10)
	if len(records) != 0 {
		t.Errorf("Expected separate ledger to stay empty, got %d records", len(records))
	}
}

func TestLedgerRecordAndRecent(t *testing.T) {
	l := openTestLedger(t)
	base := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	matches := []MatchRecord{
		{SessionID: "s1", Winner: 1, WinnerName: "Alice", LoserName: "Bob", Ticks: 600, Duration: 10 * time.Second, CreatedAt: base},
		{SessionID: "s1", Winner: 2, WinnerName: "Bob", LoserName: "Alice", Ticks: 900, Duration: 15 * time.Second, CreatedAt: base.Add(time.Minute)},
		{SessionID: "s2", Winner: 1, WinnerName: "Carol", LoserName: "Dan", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, m := range matches {
		id, err := l.RecordMatch(m)
		if err != nil {
			t.Fatalf("RecordMatch() failed: %v", err)
		}
		if id == "" {
			t.Error("Expected generated ID")
		}
	}

	records, err := l.Recent("s1", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	// Newest first
	got := records[0]
	if got.WinnerName != "Bob" || got.Winner != 2 {
		t.Errorf("Expected Bob (seat 2) first, got %s (seat %d)", got.WinnerName, got.Winner)
	}
	if got.Ticks != 900 {
		t.Errorf("Expected 900 ticks, got %d", got.Ticks)
	}
	if got.Duration != 15*time.Second {
		t.Errorf("Expected 15s duration, got %v", got.Duration)
	}
	if !got.CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("Expected CreatedAt %v, got %v", base.Add(time.Minute), got.CreatedAt)
	}

	all, err := l.Recent("", 10)
	if err != nil {
		t.Fatalf("Recent(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 records across sessions, got %d", len(all))
	}

	limited, _ := l.Recent("", 1)
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("Expected only the newest s2 match, got %+v", limited)
	}
}

func TestLedgerKeepsGivenID(t *testing.T) {
	l := openTestLedger(t)

	id, err := l.RecordMatch(MatchRecord{ID: "fixed", SessionID: "s", Winner: 1})
	if err != nil {
		t.Fatalf("RecordMatch() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("Expected ID 'fixed', got %q", id)
	}

	if _, err := l.RecordMatch(MatchRecord{ID: "fixed", SessionID: "s", Winner: 1}); err == nil {
		t.Error("Expected duplicate ID to fail")
	}
}

func TestLedgerRejectsInvalidWinner(t *testing.T) {
	l := openTestLedger(t)

	for _, winner := range []int{0, 3, -1} {
		_, err := l.RecordMatch(MatchRecord{SessionID: "s", Winner: winner})
		if !errors.Is(err, ErrInvalidWinner) {
			t.Errorf("Winner %d: expected ErrInvalidWinner, got %v", winner, err)
		}
	}
}

func TestLedgerTally(t *testing.T) {
	l := openTestLedger(t)

	tally, err := l.Tally("s1")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally != (Tally{}) {
		t.Errorf("Expected zero tally, got %+v", tally)
	}

	for _, winner := range []int{1, 2, 2, 1, 2} {
		if _, err := l.RecordMatch(MatchRecord{SessionID: "s1", Winner: winner}); err != nil {
			t.Fatalf("RecordMatch() failed: %v", err)
		}
	}
	l.RecordMatch(MatchRecord{SessionID: "s2", Winner: 1})

	tally, err = l.Tally("s1")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	want := Tally{P1: 2, P2: 3, Matches: 5}
	if tally != want {
		t.Errorf("Tally() = %+v, expected %+v", tally, want)
	}
}

func TestLedgerClearSession(t *testing.T) {
	l := openTestLedger(t)

	l.RecordMatch(MatchRecord{SessionID: "s1", Winner: 1})
	l.RecordMatch(MatchRecord{SessionID: "s2", Winner: 2})

	if err := l.ClearSession("s1"); err != nil {
		t.Fatalf("ClearSession() failed: %v", err)
	}

	if records, _ := l.Recent("s1", 10); len(records) != 0 {
		t.Errorf("Expected s1 to be cleared, got %d records", len(records))
	}
	if records, _ := l.Recent("s2", 10); len(records) != 1 {
		t.Errorf("Expected s2 to be kept, got %d records", len(records))
	}
}

func TestLedgerConcurrentWrites(t *testing.T) {
	l := openTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := l.RecordMatch(MatchRecord{SessionID: "shared", Winner: seat}); err != nil {
					t.Errorf("RecordMatch() failed: %v", err)
				}
			}
		}(i%2 + 1)
	}
	wg.Wait()

	tally, err := l.Tally("shared")
	if err != nil {
		t.Fatalf("Tally() failed: %v", err)
	}
	if tally.Matches != 80 || tally.P1 != 40 || tally.P2 != 40 {
		t.Errorf("Tally() = %+v, expected 80 matches split evenly", tally)
	}
}
