package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/core"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("neonpulse", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("neonpulse_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("neonpulse", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	classic, err := store.TopScores("neonpulse_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("neonpulse")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("neonpulse", 100)
	store.SaveScore("neonpulse", 300)
	store.SaveScore("neonpulse", 200)

	high, err = store.HighScore("neonpulse")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	stats := core.RunStats{
		Score:     17,
		Level:     2,
		Pulses:    4,
		PowerUps:  3,
		Passed:    12,
		Ticks:     3600,
		Seed:      99,
		EndReason: "hazard",
	}
	runID, err := store.SaveRun("neonpulse", "session-1", stats)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if runID == "" {
		t.Fatal("SaveRun() returned an empty run ID")
	}

	run, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("saved run not found")
	}
	if run.Stats != stats || run.SessionID != "session-1" || run.GameID != "neonpulse" {
		t.Errorf("run = %+v, expected stats %+v", run, stats)
	}

	// The run also counts as a score
	if high, _ := store.HighScore("neonpulse"); high != 17 {
		t.Errorf("high score after run = %d, expected 17", high)
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)
	run, err := store.RunByID("does-not-exist")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("expected nil for a missing run, got %+v", run)
	}
}

func TestStoreRecentRunsAndTotals(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		_, err := store.SaveRun("neonpulse", "", core.RunStats{Score: i, Level: i, Pulses: 1, PowerUps: 2, Ticks: 60})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("neonpulse_classic", "", core.RunStats{Score: 100, Level: 9})

	runs, err := store.RecentRuns("neonpulse", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Stats.Score != 5 || runs[2].Stats.Score != 3 {
		t.Errorf("runs not newest first: %d, %d", runs[0].Stats.Score, runs[2].Stats.Score)
	}

	totals, err := store.GetRunTotals("neonpulse")
	if err != nil {
		t.Fatalf("GetRunTotals() failed: %v", err)
	}
	want := RunTotals{Runs: 5, BestLevel: 5, Pulses: 5, PowerUps: 10, Ticks: 300}
	if totals != want {
		t.Errorf("totals = %+v, expected %+v", totals, want)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("neonpulse", 100)
	store.SaveRun("neonpulse", "", core.RunStats{Score: 200})
	store.SaveScore("neonpulse_classic", 300)

	if err := store.ClearScores("neonpulse"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("neonpulse", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("neonpulse", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("neonpulse_classic", 10); len(scores) != 1 {
		t.Errorf("Classic scores should not be affected by clearing neonpulse")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("neonpulse", 10)
	store.SaveScore("neonpulse", 30)

	stats, err := store.GetGameStats("neonpulse")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["neonpulse"] == nil {
		t.Errorf("all stats = %v", all)
	}
}
