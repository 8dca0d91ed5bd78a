package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore("bricks", score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	scores, err := store.TopScores("bricks", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	want := []int{300, 200, 100}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("invaders", i*10); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 5)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d scores, want 5", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("top score = %d, want 190", scores[0].Score)
	}
}

func TestScoresAreScopedByGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("bricks", 500); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore("drift", 700); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores("bricks", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 500 {
		t.Errorf("bricks scores = %v, want single 500 entry", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("drift")
	if err != nil {
		t.Fatal(err)
	}
	if high != 0 {
		t.Errorf("high score = %d for empty table, want 0", high)
	}

	store.SaveScore("drift", 150)
	store.SaveScore("drift", 80)

	high, err = store.HighScore("drift")
	if err != nil {
		t.Fatal(err)
	}
	if high != 150 {
		t.Errorf("high score = %d, want 150", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bricks", 100)
	store.SaveScore("drift", 200)

	if err := store.ClearScores("bricks"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	scores, err := store.TopScores("bricks", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("bricks still has %d scores after clear", len(scores))
	}

	// Other games are untouched.
	scores, err = store.TopScores("drift", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Errorf("drift scores gone after clearing bricks")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		store.SaveScore("invaders", score)
	}

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("high score = %d, want 30", stats.HighScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("total score = %d, want 60", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats failed: %v", err)
	}
	if _, ok := all["invaders"]; !ok {
		t.Error("aggregate stats missing invaders")
	}
}

func TestReopenKeepsScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveScore("bricks", 42)
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	high, err := store.HighScore("bricks")
	if err != nil {
		t.Fatal(err)
	}
	if high != 42 {
		t.Errorf("high score = %d after reopen, want 42", high)
	}
}
