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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("2048", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("rps", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	rpsScores, err := store.TopScores("rps", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rpsScores) != 1 {
		t.Errorf("Expected 1 rps score, got %d", len(rpsScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048", (i+1)*100)
	}

	scores, err := store.TopScores("2048", 3)
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

	// No scores yet
	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)
	store.SaveScore("2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 200)
	store.SaveScore("rps", 3)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	rpsScores, _ := store.TopScores("rps", 10)
	if len(rpsScores) != 1 {
		t.Error("Other games should not be affected by a clear")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("2048", i*10)
	}

	scores, err := store.AllScores("2048")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreResults(t *testing.T) {
	store := openTestStore(t)

	// Empty game has zero counts
	stats, err := store.Results("tictactoe")
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if stats.Wins != 0 || stats.Losses != 0 || stats.Draws != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	outcomes := []string{"win", "win", "loss", "draw", "draw", "draw"}
	for _, o := range outcomes {
		if err := store.RecordResult("tictactoe", o); err != nil {
			t.Fatalf("RecordResult(%q) failed: %v", o, err)
		}
	}
	// Different game
	if err := store.RecordResult("rps", "win"); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	stats, err = store.Results("tictactoe")
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if stats.Wins != 2 || stats.Losses != 1 || stats.Draws != 3 {
		t.Errorf("stats = %+v, want 2 wins / 1 loss / 3 draws", stats)
	}

	rpsStats, err := store.Results("rps")
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if rpsStats.Wins != 1 || rpsStats.Losses != 0 || rpsStats.Draws != 0 {
		t.Errorf("rps stats = %+v, want 1 win only", rpsStats)
	}
}

func TestStoreRecordResultRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordResult("tictactoe", "stalemate"); err == nil {
		t.Error("unknown outcome should be rejected by the schema")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	// Stats for a game with no scores
	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 300)

	stats, err = store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048", 100)
	store.SaveScore("2048", 200)
	store.SaveScore("rps", 3)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["2048"].GamesCount != 2 || all["2048"].HighScore != 200 {
		t.Errorf("2048 stats = %+v", all["2048"])
	}
	if all["rps"].GamesCount != 1 {
		t.Errorf("rps stats = %+v", all["rps"])
	}
}
