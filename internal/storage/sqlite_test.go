package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{40, 120, 80} {
		if _, err := store.SaveScore("invaders", "session-a", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("pong", "session-b", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, expected 2", len(scores))
	}
	if scores[0].Score != 120 || scores[1].Score != 80 {
		t.Errorf("scores = %d, %d; expected 120, 80", scores[0].Score, scores[1].Score)
	}
	if scores[0].SessionID != "session-a" || scores[0].GameID != "invaders" {
		t.Errorf("entry = %+v", scores[0])
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("pong")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("HighScore() = %d, expected 0", hs)
	}
}

func TestStoreGamesAndClear(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("pong", "", 3)
	store.SaveScore("invaders", "", 30)

	games, err := store.Games()
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}
	if len(games) != 2 || games[0] != "invaders" || games[1] != "pong" {
		t.Errorf("Games() = %v", games)
	}

	if err := store.ClearScores("pong"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if hs, _ := store.HighScore("pong"); hs != 0 {
		t.Errorf("HighScore after clear = %d", hs)
	}
	if hs, _ := store.HighScore("invaders"); hs != 30 {
		t.Errorf("other game affected: HighScore = %d", hs)
	}
}

func TestCounterGetSet(t *testing.T) {
	store := openTestStore(t)
	c := store.Counter("3f2a")

	if v, err := c.Get("invaders"); err != nil || v != 0 {
		t.Fatalf("Get() = %d, %v; expected 0, nil", v, err)
	}
	if err := c.Set("invaders", 250); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, _ := c.Get("invaders"); v != 250 {
		t.Errorf("Get() = %d, expected 250", v)
	}

	top, _ := store.TopScores("invaders", 1)
	if len(top) != 1 || top[0].SessionID != "3f2a" {
		t.Errorf("history row = %+v", top)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.ledarcade-test/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".ledarcade-test", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestClearAllScores(t *testing.T) {
	store := openTestStore(t)
	for _, id := range []string{"pong", "invaders"} {
		if _, err := store.SaveScore(id, "s1", 10); err != nil {
			t.Fatalf("SaveScore(%s) failed: %v", id, err)
		}
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	games, err := store.Games()
	if err != nil {
		t.Fatalf("Games() failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("Games() after clearing all = %v", games)
	}
}
