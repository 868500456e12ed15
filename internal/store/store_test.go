package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadSaveClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Nothing stored yet.
	raw, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil document, got %s", raw)
	}

	doc := json.RawMessage(`{"points": 55, "coins": 30}`)
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal loaded: %v", err)
	}
	if got["points"] != float64(55) {
		t.Errorf("points = %v", got["points"])
	}

	// Save again replaces wholesale, no second row.
	if err := repo.Save(ctx, json.RawMessage(`{"points": 100}`)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	raw, _ = repo.Load(ctx)
	got = nil
	json.Unmarshal(raw, &got)
	if got["points"] != float64(100) {
		t.Errorf("points after replace = %v", got["points"])
	}
	if _, stale := got["coins"]; stale {
		t.Error("old fields survived replacement")
	}

	n, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("progress records = %d, want 1", n)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	raw, err = repo.Load(ctx)
	if err != nil || raw != nil {
		t.Errorf("after clear: raw=%s err=%v", raw, err)
	}
}

func TestEventTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty log yields no rows.
	totals, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals (empty): %v", err)
	}
	if len(totals) != 0 {
		t.Fatalf("totals = %+v", totals)
	}

	rounds := []PracticeEventData{
		{SessionID: "s1", Skill: "addition", Correct: 8, Total: 10, DurationSecs: 60},
		{SessionID: "s2", Skill: "addition", Correct: 10, Total: 10, DurationSecs: 50},
		{SessionID: "s3", Skill: "division", Table: 0, Correct: 6, Total: 10, DurationSecs: 90},
	}
	for _, ev := range rounds {
		if err := repo.AppendPractice(ctx, ev); err != nil {
			t.Fatalf("append %s: %v", ev.SessionID, err)
		}
	}

	totals, err = repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d skills: %+v", len(totals), totals)
	}

	// Ordered by skill name: addition, division.
	add := totals[0]
	if add.Skill != "addition" || add.Rounds != 2 || add.Correct != 18 || add.Total != 20 {
		t.Errorf("addition totals = %+v", add)
	}
	div := totals[1]
	if div.Skill != "division" || div.Rounds != 1 || div.Correct != 6 {
		t.Errorf("division totals = %+v", div)
	}
}
