package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func saveRounds(t *testing.T, store *Store, runID string, scores ...int) {
	t.Helper()
	for i, score := range scores {
		_, err := store.SaveRound(RoundResult{
			RunID:  runID,
			GameID: "frogger",
			Player: "tester",
			Round:  i + 1,
			Score:  score,
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer store.Close()

	saveRounds(t, store, "run-1", 500, 450)

	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("Expected in-memory high score 500, got %d", high)
	}

	// A second in-memory store shares nothing with the first.
	other, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open(MemoryPath) failed: %v", err)
	}
	defer other.Close()

	high, err = other.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected fresh in-memory store to be empty, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRounds(t, store, "run-a", 100, 50, 200)
	if _, err := store.SaveRound(RoundResult{RunID: "run-b", GameID: "other", Round: 1, Score: 500}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Round != 3 || scores[0].RunID != "run-a" || scores[0].Player != "tester" {
		t.Errorf("Unexpected top entry: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreSaveRoundValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(RoundResult{GameID: "frogger", Round: 1, Score: 10}); err == nil {
		t.Error("Expected error for missing run id")
	}
	if _, err := store.SaveRound(RoundResult{RunID: "run", Round: 1, Score: 10}); err == nil {
		t.Error("Expected error for missing game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	saveRounds(t, store, "run", 100, 200, 300, 400, 500)

	// Request only top 3
	scores, err := store.TopScores("frogger", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRunScores(t *testing.T) {
	store := openTestStore(t)

	saveRounds(t, store, "run-a", 500, 420, 380)
	saveRounds(t, store, "run-b", 300)

	rounds, err := store.RunScores("run-a")
	if err != nil {
		t.Fatalf("RunScores() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}
	for i, r := range rounds {
		if r.Round != i+1 {
			t.Errorf("Round %d out of order: %+v", i+1, r)
		}
	}

	missing, err := store.RunScores("run-z")
	if err != nil {
		t.Fatalf("RunScores() failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("Expected no rounds for unknown run, got %d", len(missing))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveRounds(t, store, "run", 100, 300, 200)

	high, err = store.HighScore("frogger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRounds(t, store, "run", 100, 200)
	if _, err := store.SaveRound(RoundResult{RunID: "run-x", GameID: "other", Round: 1, Score: 300}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	// Clear only frogger scores
	if err := store.ClearScores("frogger"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	froggerScores, _ := store.TopScores("frogger", 10)
	if len(froggerScores) != 0 {
		t.Errorf("Expected 0 frogger scores after clear, got %d", len(froggerScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing frogger")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	saveRounds(t, store, "run-a", 500, 400)
	saveRounds(t, store, "run-b", 300, 200, 100)

	stats, err := store.GetGameStats("frogger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.Rounds != 5 {
		t.Errorf("Expected 5 rounds, got %d", stats.Rounds)
	}
	if stats.BestRound != 3 {
		t.Errorf("Expected best round 3, got %d", stats.BestRound)
	}
	if stats.HighScore != 500 {
		t.Errorf("Expected high score 500, got %d", stats.HighScore)
	}
	if stats.AvgScore != 300 {
		t.Errorf("Expected average 300, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
