package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-skydive/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(Session{Player: "ann", Score: 4, TriesLeft: 0, Outcome: OutcomeGameOver, Ticks: 9000})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("id %q is not a uuid", id)
	}

	if _, err := store.SaveSession(Session{ID: "not-a-uuid", Outcome: OutcomeWin}); err == nil {
		t.Error("expected error for malformed id")
	}
	if _, err := store.SaveSession(Session{Outcome: "draw"}); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestTopSessionsOrder(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	store.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}

	sessions := []Session{
		{Player: "slow", Score: 10, TriesLeft: 1, Outcome: OutcomeWin, Ticks: 50000},
		{Player: "low", Score: 3, Outcome: OutcomeGameOver, Ticks: 4000},
		{Player: "fast", Score: 10, TriesLeft: 3, Outcome: OutcomeWin, Ticks: 30000},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d sessions, want 3", len(top))
	}
	want := []string{"fast", "slow", "low"}
	for i, w := range want {
		if top[i].Player != w {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Player, w)
		}
	}
	if top[0].Ticks != 30000 || top[0].TriesLeft != 3 || top[0].Outcome != OutcomeWin {
		t.Errorf("fields not round-tripped: %+v", top[0])
	}
	if !top[2].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created_at = %v", top[2].CreatedAt)
	}

	limited, err := store.TopSessions(1)
	if err != nil || len(limited) != 1 {
		t.Errorf("TopSessions(1) = %d rows, %v", len(limited), err)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil || score != 0 {
		t.Fatalf("empty HighScore() = %d, %v", score, err)
	}

	for _, s := range []int{2, 7, 5} {
		if _, err := store.SaveSession(Session{Score: s, Outcome: OutcomeGameOver}); err != nil {
			t.Fatal(err)
		}
	}
	if score, _ := store.HighScore(); score != 7 {
		t.Errorf("HighScore() = %d, want 7", score)
	}
}

func TestJumpsAndStats(t *testing.T) {
	store := openTestStore(t)
	sid := NewSessionID()

	reports := []core.JumpReport{
		{Outcome: "landed", LandingX: 50, TargetLeft: 40, TargetRight: 72, ChuteOpen: true, OpenAt: 60, TouchdownDY: 0.25},
		{Outcome: "landed", LandingX: 60, TargetLeft: 40, TargetRight: 72, ChuteOpen: true, OpenAt: 80, TouchdownDY: 0.25},
		{Outcome: "crashed", LandingX: 10, TargetLeft: 40, TargetRight: 72, TouchdownDY: 0.2},
		{Outcome: "too_fast", LandingX: 45, TargetLeft: 40, TargetRight: 72, ChuteOpen: true, OpenAt: 130, TouchdownDY: 0.4, WindDX: -0.05},
	}
	for _, r := range reports {
		if _, err := store.SaveJump(JumpFromReport(sid, "bob", r)); err != nil {
			t.Fatalf("SaveJump() failed: %v", err)
		}
	}
	if _, err := store.SaveSession(Session{ID: sid, Player: "bob", Score: 2, Outcome: OutcomeGameOver}); err != nil {
		t.Fatal(err)
	}

	recent, err := store.RecentJumps(2)
	if err != nil {
		t.Fatalf("RecentJumps() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Outcome != "too_fast" || recent[1].Outcome != "crashed" {
		t.Fatalf("recent = %+v", recent)
	}
	if !recent[0].ChuteOpen || recent[0].WindDX != -0.05 || recent[0].SessionID != sid {
		t.Errorf("fields not round-tripped: %+v", recent[0])
	}
	if recent[1].ChuteOpen {
		t.Error("crashed jump should have a closed chute")
	}

	stats, err := store.JumpStats()
	if err != nil {
		t.Fatalf("JumpStats() failed: %v", err)
	}
	if stats.Total != 4 || stats.ByOutcome["landed"] != 2 || stats.ByOutcome["crashed"] != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if math.Abs(stats.AvgOpenAt-90) > 1e-9 {
		t.Errorf("AvgOpenAt = %v, want 90", stats.AvgOpenAt)
	}
	// Offsets from center 56: |50-56| = 6, |60-56| = 4
	if math.Abs(stats.AvgLandedOffset-5) > 1e-9 {
		t.Errorf("AvgLandedOffset = %v, want 5", stats.AvgLandedOffset)
	}
	if stats.Sessions != 1 || stats.Wins != 0 {
		t.Errorf("sessions = %d wins = %d", stats.Sessions, stats.Wins)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)
	sid := NewSessionID()
	if _, err := store.SaveJump(Jump{SessionID: sid, Outcome: "landed"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveSession(Session{ID: sid, Score: 1, Outcome: OutcomeWin}); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	top, _ := store.TopSessions(10)
	jumps, _ := store.RecentJumps(10)
	if len(top) != 0 || len(jumps) != 0 {
		t.Errorf("rows left: %d sessions, %d jumps", len(top), len(jumps))
	}
}

func TestEmptyStats(t *testing.T) {
	store := openTestStore(t)
	stats, err := store.JumpStats()
	if err != nil {
		t.Fatalf("JumpStats() failed: %v", err)
	}
	if stats.Total != 0 || stats.AvgOpenAt != 0 || stats.Sessions != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
